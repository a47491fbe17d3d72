package mock

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
	"kort/internal/domain/invoice"
	"kort/internal/domain/transaction"
)

// Provider serves reads and the single card mutation from the generated
// graph. Each entity gets its own view implementing the corresponding
// domain repository interface, so services can hand the mock source to
// the dual executor interchangeably with the persistent store.
//
// All graph access happens under the store mutex, and card records are
// copied on the way out: activation mutates the cached record, so a
// pointer into the graph must never escape to a caller that might read
// it concurrently.
type Provider struct {
	Companies    *CompanyProvider
	Cards        *CardProvider
	Invoices     *InvoiceProvider
	Transactions *TransactionProvider
}

// NewProvider creates a provider over the given store.
func NewProvider(store *Store) *Provider {
	cards := &CardProvider{store: store}
	return &Provider{
		Companies:    &CompanyProvider{store: store},
		Cards:        cards,
		Invoices:     &InvoiceProvider{cards: cards},
		Transactions: &TransactionProvider{store: store, cards: cards},
	}
}

// CompanyProvider implements company.Repository over the mock graph.
type CompanyProvider struct {
	store *Store
}

// List returns all companies, newest first. It never fails.
func (p *CompanyProvider) List(ctx context.Context) ([]*company.Company, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	g := p.store.graphLocked()

	companies := make([]*company.Company, 0, len(g.Companies))
	for _, c := range g.Companies {
		cc := *c
		companies = append(companies, &cc)
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].CreatedAt.After(companies[j].CreatedAt)
	})
	return companies, nil
}

// GetByID returns the company with the given ID.
func (p *CompanyProvider) GetByID(ctx context.Context, id string) (*company.Company, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	g := p.store.graphLocked()

	for _, c := range g.Companies {
		if c.ID == id {
			cc := *c
			return &cc, nil
		}
	}
	return nil, company.ErrCompanyNotFound
}

// CardProvider implements card.Repository over the mock graph.
type CardProvider struct {
	store *Store
}

// ListByCompany returns copies of a company's cards, newest first. The
// company is validated first; a company without cards yields an empty
// slice.
func (p *CardProvider) ListByCompany(ctx context.Context, companyID string) ([]*card.Card, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()
	g := p.store.graphLocked()

	found := false
	for _, c := range g.Companies {
		if c.ID == companyID {
			found = true
			break
		}
	}
	if !found {
		return nil, company.ErrCompanyNotFound
	}

	cards := make([]*card.Card, 0, len(g.Cards[companyID]))
	for _, c := range g.Cards[companyID] {
		cc := *c
		cards = append(cards, &cc)
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

// GetByID scans all companies' card sets and returns a copy of the
// matching card.
func (p *CardProvider) GetByID(ctx context.Context, id string) (*card.Card, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	c := p.findLocked(id)
	if c == nil {
		return nil, card.ErrCardNotFound
	}
	cc := *c
	return &cc, nil
}

// findLocked returns the cached card record itself. Callers must hold
// the store mutex and must not let the pointer escape it.
func (p *CardProvider) findLocked(id string) *card.Card {
	g := p.store.graphLocked()
	for _, cards := range g.Cards {
		for _, c := range cards {
			if c.ID == id {
				return c
			}
		}
	}
	return nil
}

// Activate transitions a card to active in the cached graph. The effect
// is in-memory only: subsequent mock reads observe the new status, and
// an immediate second activation conflicts.
func (p *CardProvider) Activate(ctx context.Context, id string) (*card.Card, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	c := p.findLocked(id)
	if c == nil {
		return nil, card.ErrCardNotFound
	}
	if c.Status == card.StatusActive {
		return nil, card.ErrCardAlreadyActive
	}
	c.Status = card.StatusActive
	c.UpdatedAt = time.Now()

	updated := *c
	return &updated, nil
}

// InvoiceProvider implements invoice.Repository over the mock graph.
type InvoiceProvider struct {
	cards *CardProvider
}

// GetByCard synthesizes an invoice for the card on every read. Invoices
// are deliberately ephemeral in mock mode: nothing is cached, and two
// consecutive reads return different amounts.
func (p *InvoiceProvider) GetByCard(ctx context.Context, cardID string) (*invoice.Invoice, error) {
	if _, err := p.cards.GetByID(ctx, cardID); err != nil {
		return nil, err
	}

	return &invoice.Invoice{
		CardID:   cardID,
		DueDate:  time.Now().Add(30 * 24 * time.Hour),
		Amount:   float64(rand.Intn(5000) + 100),
		Currency: "USD",
		IsPaid:   false,
	}, nil
}

// TransactionProvider implements transaction.Repository over the mock graph.
type TransactionProvider struct {
	store *Store
	cards *CardProvider
}

// ListByCard returns the [offset, offset+limit) window over a card's
// transactions ordered by date descending, clamped to the available
// length. Total is always the unsliced count.
func (p *TransactionProvider) ListByCard(ctx context.Context, cardID string, limit, offset int) (*transaction.Page, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	if p.cards.findLocked(cardID) == nil {
		return nil, card.ErrCardNotFound
	}

	g := p.store.graphLocked()
	all := make([]*transaction.Transaction, len(g.Transactions[cardID]))
	copy(all, g.Transactions[cardID])

	// The generator emits oldest-to-newest; serve newest first to match
	// the store's ordering.
	sort.Slice(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	start := offset
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	return &transaction.Page{
		Items:  all[start:end],
		Total:  len(all),
		Limit:  limit,
		Offset: offset,
	}, nil
}
