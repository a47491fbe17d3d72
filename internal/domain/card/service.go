package card

import (
	"context"

	"kort/internal/domain/invoice"
	"kort/internal/dual"
)

// Service contains the business logic for card operations. Every
// operation supplies one mock closure and one store closure to the dual
// executor; reads run under the auto strategy, activation goes through
// the mutation path and never falls back.
type Service struct {
	exec         *dual.Executor
	mock         Repository
	store        Repository
	mockInvoices invoice.Repository
	invoices     invoice.Repository
}

// NewService creates a new card service.
func NewService(exec *dual.Executor, mock, store Repository, mockInvoices, invoices invoice.Repository) *Service {
	return &Service{
		exec:         exec,
		mock:         mock,
		store:        store,
		mockInvoices: mockInvoices,
		invoices:     invoices,
	}
}

// ListCardsByCompany retrieves all cards for a company, newest first.
// Returns company.ErrCompanyNotFound when the company is absent.
func (s *Service) ListCardsByCompany(ctx context.Context, companyID string) ([]*Card, error) {
	return dual.Execute(ctx, s.exec, dual.StrategyAuto,
		func(ctx context.Context) ([]*Card, error) { return s.mock.ListByCompany(ctx, companyID) },
		func(ctx context.Context) ([]*Card, error) { return s.store.ListByCompany(ctx, companyID) },
	)
}

// GetCard retrieves a card with its derived remaining spend.
// Returns ErrCardNotFound when the ID is absent.
func (s *Service) GetCard(ctx context.Context, id string) (*Detail, error) {
	return dual.Execute(ctx, s.exec, dual.StrategyAuto,
		func(ctx context.Context) (*Detail, error) {
			c, err := s.mock.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return NewDetail(c), nil
		},
		func(ctx context.Context) (*Detail, error) {
			c, err := s.store.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return NewDetail(c), nil
		},
	)
}

// ActivateCard transitions a card to the active status and returns the
// updated record. Fails with ErrCardAlreadyActive when the card is
// already active; the rule is enforced identically by both sources. A
// failed store mutation surfaces to the caller unchanged.
func (s *Service) ActivateCard(ctx context.Context, id string) (*Card, error) {
	return dual.ExecuteMutation(ctx, s.exec,
		func(ctx context.Context) (*Card, error) { return s.mock.Activate(ctx, id) },
		func(ctx context.Context) (*Card, error) { return s.store.Activate(ctx, id) },
	)
}

// GetInvoice retrieves the invoice for a card, or nil when the card has
// none.
func (s *Service) GetInvoice(ctx context.Context, cardID string) (*invoice.Invoice, error) {
	return dual.Execute(ctx, s.exec, dual.StrategyAuto,
		func(ctx context.Context) (*invoice.Invoice, error) { return s.mockInvoices.GetByCard(ctx, cardID) },
		func(ctx context.Context) (*invoice.Invoice, error) { return s.invoices.GetByCard(ctx, cardID) },
	)
}
