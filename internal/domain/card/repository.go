package card

import "context"

// Repository defines the interface for card data access.
// Implemented by the persistent store and by the in-memory mock provider.
type Repository interface {
	// ListByCompany retrieves all cards owned by a company, newest first.
	// Returns company.ErrCompanyNotFound when the company is absent; a
	// company with no cards yields an empty slice.
	ListByCompany(ctx context.Context, companyID string) ([]*Card, error)

	// GetByID retrieves a card by its ID, searching across all companies.
	// Returns ErrCardNotFound when absent.
	GetByID(ctx context.Context, id string) (*Card, error)

	// Activate transitions a card to the active status and returns the
	// updated record. Returns ErrCardNotFound when the card is absent and
	// ErrCardAlreadyActive when its status is already active.
	Activate(ctx context.Context, id string) (*Card, error)
}
