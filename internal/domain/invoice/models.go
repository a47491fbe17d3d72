package invoice

import "time"

// Invoice represents the outstanding bill for a card. A card has at
// most one invoice.
type Invoice struct {
	CardID   string    `json:"cardId"`
	DueDate  time.Time `json:"dueDate"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	IsPaid   bool      `json:"isPaid"`
}
