package transaction

import "time"

// DefaultLimit is the page size applied when the caller does not
// provide one.
const DefaultLimit = 10

// MaxLimit caps a single page of transactions.
const MaxLimit = 100

// Transaction represents a single card transaction
type Transaction struct {
	ID          string    `json:"id"`
	CardID      string    `json:"cardId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	DataPoints  string    `json:"dataPoints"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Page is a contiguous window over a card's transactions, ordered by
// date descending. Total is always the unsliced count.
type Page struct {
	Items  []*Transaction `json:"transactions"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
