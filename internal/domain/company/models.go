package company

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrCompanyNotFound = errors.New("company not found")
)

// Company represents a business customer that owns credit cards
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
