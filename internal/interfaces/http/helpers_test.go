package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
	"kort/internal/domain/invoice"
	"kort/internal/domain/transaction"
	"kort/internal/dual"
)

// Fixed version-4 identifiers for request fixtures.
const (
	testCompanyID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	testCardID    = "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"
)

type companyRepoMock struct {
	ListFunc    func(ctx context.Context) ([]*company.Company, error)
	GetByIDFunc func(ctx context.Context, id string) (*company.Company, error)
}

func (m *companyRepoMock) List(ctx context.Context) ([]*company.Company, error) {
	return m.ListFunc(ctx)
}

func (m *companyRepoMock) GetByID(ctx context.Context, id string) (*company.Company, error) {
	return m.GetByIDFunc(ctx, id)
}

type cardRepoMock struct {
	ListByCompanyFunc func(ctx context.Context, companyID string) ([]*card.Card, error)
	GetByIDFunc       func(ctx context.Context, id string) (*card.Card, error)
	ActivateFunc      func(ctx context.Context, id string) (*card.Card, error)
}

func (m *cardRepoMock) ListByCompany(ctx context.Context, companyID string) ([]*card.Card, error) {
	return m.ListByCompanyFunc(ctx, companyID)
}

func (m *cardRepoMock) GetByID(ctx context.Context, id string) (*card.Card, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *cardRepoMock) Activate(ctx context.Context, id string) (*card.Card, error) {
	return m.ActivateFunc(ctx, id)
}

type invoiceRepoMock struct {
	GetByCardFunc func(ctx context.Context, cardID string) (*invoice.Invoice, error)
}

func (m *invoiceRepoMock) GetByCard(ctx context.Context, cardID string) (*invoice.Invoice, error) {
	return m.GetByCardFunc(ctx, cardID)
}

type transactionRepoMock struct {
	ListByCardFunc func(ctx context.Context, cardID string, limit, offset int) (*transaction.Page, error)
}

func (m *transactionRepoMock) ListByCard(ctx context.Context, cardID string, limit, offset int) (*transaction.Page, error) {
	return m.ListByCardFunc(ctx, cardID, limit, offset)
}

// newCompanyService wires a service where both sources are the same
// repository, so tests exercise handler behavior rather than fallback.
func newCompanyService(repo company.Repository) *company.Service {
	return company.NewService(dual.NewExecutor(false), repo, repo)
}

func newCardService(repo card.Repository, invoices invoice.Repository) *card.Service {
	return card.NewService(dual.NewExecutor(false), repo, repo, invoices, invoices)
}

func newTransactionService(repo transaction.Repository) *transaction.Service {
	return transaction.NewService(dual.NewExecutor(false), repo, repo)
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body
}
