package company

import "context"

// Repository defines the interface for company data access.
// It is implemented both by the persistent store (infrastructure/postgres)
// and by the in-memory mock provider (internal/mock), so the service can
// run the same operation against either source.
type Repository interface {
	// List retrieves all companies, newest first
	List(ctx context.Context) ([]*Company, error)

	// GetByID retrieves a company by its ID.
	// Returns ErrCompanyNotFound when no company with that ID exists.
	GetByID(ctx context.Context, id string) (*Company, error)
}
