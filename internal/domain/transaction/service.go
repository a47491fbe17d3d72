package transaction

import (
	"context"
	"errors"

	"kort/internal/dual"
)

// ErrInvalidPagination is returned for out-of-range limit or offset values.
var ErrInvalidPagination = errors.New("invalid pagination parameters")

// Service contains the business logic for transaction listing.
type Service struct {
	exec  *dual.Executor
	mock  Repository
	store Repository
}

// NewService creates a new transaction service.
func NewService(exec *dual.Executor, mock, store Repository) *Service {
	return &Service{exec: exec, mock: mock, store: store}
}

// ListByCard retrieves a page of a card's transactions, newest first.
// A zero limit falls back to DefaultLimit. Returns card.ErrCardNotFound
// when the card is absent.
func (s *Service) ListByCard(ctx context.Context, cardID string, limit, offset int) (*Page, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 || limit > MaxLimit || offset < 0 {
		return nil, ErrInvalidPagination
	}

	return dual.Execute(ctx, s.exec, dual.StrategyAuto,
		func(ctx context.Context) (*Page, error) { return s.mock.ListByCard(ctx, cardID, limit, offset) },
		func(ctx context.Context) (*Page, error) { return s.store.ListByCard(ctx, cardID, limit, offset) },
	)
}
