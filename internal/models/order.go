package models

type Order struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;index" json:"userId"`
	ItemID   uint `gorm:"not null;index" json:"itemId"`
	Quantity int  `gorm:"not null" json:"quantity"`

	// Relationships
	Item *Item `gorm:"foreignKey:ItemID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"item,omitempty"`
}
