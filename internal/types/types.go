package types

const ContextUserKey = "user"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderSummary is the trimmed order shape nested under a signed-in user:
// which item and how many, nothing else.
type OrderSummary struct {
	ItemID   uint `json:"itemId"`
	Quantity int  `json:"quantity"`
}

// ItemOrderSummary is the trimmed order shape nested under a catalog item:
// who ordered and how many.
type ItemOrderSummary struct {
	UserID   uint `json:"userId"`
	Quantity int  `json:"quantity"`
}
