package card

import (
	"errors"
	"time"
)

// Card statuses. Suspended is a terminal state with no transition in
// this system; activation is the only implemented status change.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Domain errors
var (
	ErrCardNotFound      = errors.New("card not found")
	ErrCardAlreadyActive = errors.New("card already activated")
)

// Card represents a company credit card
type Card struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	CardNumber   string    `json:"cardNumber"`
	Status       string    `json:"status"`
	Limit        float64   `json:"limit"`
	CurrentSpend float64   `json:"currentSpend"`
	Currency     string    `json:"currency"`
	CardImageURL string    `json:"cardImageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Detail is a Card with its derived remaining spend, computed at read
// time and never stored.
type Detail struct {
	Card
	RemainingSpend float64 `json:"remainingSpend"`
}

// NewDetail computes the read-time view of a card.
func NewDetail(c *Card) *Detail {
	return &Detail{
		Card:           *c,
		RemainingSpend: c.Limit - c.CurrentSpend,
	}
}

// IsValidStatus checks if the provided status is one of the known card states.
func IsValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}
