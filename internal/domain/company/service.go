package company

import (
	"context"

	"kort/internal/dual"
)

// Service contains the business logic for company operations. Each read
// supplies a mock closure and a store closure to the dual executor.
type Service struct {
	exec  *dual.Executor
	mock  Repository
	store Repository
}

// NewService creates a new company service backed by the given mock and
// persistent repositories.
func NewService(exec *dual.Executor, mock, store Repository) *Service {
	return &Service{exec: exec, mock: mock, store: store}
}

// ListCompanies retrieves all companies.
func (s *Service) ListCompanies(ctx context.Context) ([]*Company, error) {
	return dual.Execute(ctx, s.exec, dual.StrategyAuto,
		func(ctx context.Context) ([]*Company, error) { return s.mock.List(ctx) },
		func(ctx context.Context) ([]*Company, error) { return s.store.List(ctx) },
	)
}

// GetCompany retrieves a company by ID.
// Returns ErrCompanyNotFound when the ID is absent.
func (s *Service) GetCompany(ctx context.Context, id string) (*Company, error) {
	return dual.Execute(ctx, s.exec, dual.StrategyAuto,
		func(ctx context.Context) (*Company, error) { return s.mock.GetByID(ctx, id) },
		func(ctx context.Context) (*Company, error) { return s.store.GetByID(ctx, id) },
	)
}
