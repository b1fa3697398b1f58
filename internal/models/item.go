package models

type Item struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Title string  `gorm:"not null" json:"title"`
	Image string  `json:"image"`
	Price float64 `gorm:"not null" json:"price"`

	// Relationships
	Orders []Order `gorm:"foreignKey:ItemID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"orders,omitempty"`
}
