package mock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
)

func TestCompanyProvider_List(t *testing.T) {
	p := NewProvider(NewStore())

	companies, err := p.Companies.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(companies) != DefaultCompanyCount {
		t.Fatalf("expected %d companies, got %d", DefaultCompanyCount, len(companies))
	}
	for i := 1; i < len(companies); i++ {
		if companies[i].CreatedAt.After(companies[i-1].CreatedAt) {
			t.Fatal("companies must be ordered newest first")
		}
	}
}

func TestCompanyProvider_GetByID(t *testing.T) {
	store := NewStore()
	p := NewProvider(store)
	want := store.Graph().Companies[1]

	got, err := p.Companies.GetByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name {
		t.Errorf("GetByID() = %+v, want %+v", got, want)
	}

	_, err = p.Companies.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCardProvider_ListByCompany(t *testing.T) {
	store := NewStore()
	p := NewProvider(store)
	companyID := store.Graph().Companies[0].ID

	cards, err := p.Cards.ListByCompany(context.Background(), companyID)
	if err != nil {
		t.Fatalf("ListByCompany() error = %v", err)
	}
	if len(cards) != DefaultCardsPerCompany {
		t.Fatalf("expected %d cards, got %d", DefaultCardsPerCompany, len(cards))
	}
	for _, c := range cards {
		if c.CompanyID != companyID {
			t.Errorf("card %s belongs to %s, expected %s", c.ID, c.CompanyID, companyID)
		}
	}

	_, err = p.Cards.ListByCompany(context.Background(), "missing-id")
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCardProvider_Activate(t *testing.T) {
	store := NewStore()
	p := NewProvider(store)

	var target *card.Card
	for _, cards := range store.Graph().Cards {
		for _, c := range cards {
			if c.Status == card.StatusInactive {
				target = c
				break
			}
		}
		if target != nil {
			break
		}
	}
	if target == nil {
		t.Fatal("generated graph has no inactive card")
	}

	activated, err := p.Cards.Activate(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if activated.Status != card.StatusActive {
		t.Errorf("Activate() status = %q, want %q", activated.Status, card.StatusActive)
	}

	// The graph must observe the transition, so a repeat conflicts.
	_, err = p.Cards.Activate(context.Background(), target.ID)
	if !errors.Is(err, card.ErrCardAlreadyActive) {
		t.Errorf("expected ErrCardAlreadyActive on repeat, got %v", err)
	}

	got, err := p.Cards.GetByID(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != card.StatusActive {
		t.Errorf("graph status = %q after activation, want %q", got.Status, card.StatusActive)
	}
}

// Read paths must never hand out a pointer into the cached graph:
// activation mutates the cached record, so concurrent card reads in
// mock mode would otherwise race the write. Run with -race.
func TestCardProvider_ConcurrentReadAndActivate(t *testing.T) {
	store := NewStore()
	p := NewProvider(store)

	var target *card.Card
	for _, cards := range store.Graph().Cards {
		for _, c := range cards {
			if c.Status != card.StatusActive {
				target = c
				break
			}
		}
		if target != nil {
			break
		}
	}
	if target == nil {
		t.Fatal("generated graph has no non-active card")
	}
	id := target.ID

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				c, err := p.Cards.GetByID(context.Background(), id)
				if err != nil {
					t.Errorf("GetByID() error = %v", err)
					return
				}
				_ = c.Status
			}
		}()
	}

	if _, err := p.Cards.Activate(context.Background(), id); err != nil {
		t.Errorf("Activate() error = %v", err)
	}
	close(stop)
	wg.Wait()

	got, err := p.Cards.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != card.StatusActive {
		t.Errorf("status = %q after activation, want %q", got.Status, card.StatusActive)
	}
}

func TestCardProvider_GetByID_ReturnsCopy(t *testing.T) {
	p := NewProvider(NewStore())

	first, err := p.Cards.GetByID(context.Background(), firstCardID(t, p))
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	first.Status = "scribbled"

	second, err := p.Cards.GetByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if second.Status == "scribbled" {
		t.Error("mutating a returned card must not affect the cached graph")
	}
}

func firstCardID(t *testing.T, p *Provider) string {
	t.Helper()
	companies, err := p.Companies.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	cards, err := p.Cards.ListByCompany(context.Background(), companies[0].ID)
	if err != nil {
		t.Fatalf("ListByCompany() error = %v", err)
	}
	return cards[0].ID
}

func TestCardProvider_Activate_NotFound(t *testing.T) {
	p := NewProvider(NewStore())

	_, err := p.Cards.Activate(context.Background(), "missing-id")
	if !errors.Is(err, card.ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

func TestInvoiceProvider_GetByCard(t *testing.T) {
	store := NewStore()
	p := NewProvider(store)
	companyID := store.Graph().Companies[0].ID
	cardID := store.Graph().Cards[companyID][0].ID

	inv, err := p.Invoices.GetByCard(context.Background(), cardID)
	if err != nil {
		t.Fatalf("GetByCard() error = %v", err)
	}
	if inv.CardID != cardID {
		t.Errorf("invoice CardID = %s, want %s", inv.CardID, cardID)
	}
	if inv.Amount < 100 {
		t.Errorf("invoice amount %v below synthesized minimum", inv.Amount)
	}
	if inv.IsPaid {
		t.Error("synthesized invoices are always unpaid")
	}

	_, err = p.Invoices.GetByCard(context.Background(), "missing-id")
	if !errors.Is(err, card.ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

func TestTransactionProvider_ListByCard(t *testing.T) {
	store := NewStore()
	p := NewProvider(store)
	companyID := store.Graph().Companies[0].ID
	cardID := store.Graph().Cards[companyID][0].ID

	tests := []struct {
		name      string
		limit     int
		offset    int
		wantItems int
	}{
		{name: "first page", limit: 3, offset: 0, wantItems: 3},
		{name: "middle page", limit: 3, offset: 3, wantItems: 3},
		{name: "clamped tail", limit: 5, offset: 6, wantItems: 2},
		{name: "offset past end", limit: 5, offset: 50, wantItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := p.Transactions.ListByCard(context.Background(), cardID, tt.limit, tt.offset)
			if err != nil {
				t.Fatalf("ListByCard() error = %v", err)
			}
			if len(page.Items) != tt.wantItems {
				t.Errorf("got %d items, want %d", len(page.Items), tt.wantItems)
			}
			if page.Total != DefaultTransactionsPerCard {
				t.Errorf("Total = %d, want %d", page.Total, DefaultTransactionsPerCard)
			}
			if page.Limit != tt.limit || page.Offset != tt.offset {
				t.Errorf("echoed window = (%d, %d), want (%d, %d)", page.Limit, page.Offset, tt.limit, tt.offset)
			}
			for i := 1; i < len(page.Items); i++ {
				if page.Items[i].Date.After(page.Items[i-1].Date) {
					t.Fatal("items must be ordered by date descending")
				}
			}
		})
	}
}

func TestTransactionProvider_ListByCard_NotFound(t *testing.T) {
	p := NewProvider(NewStore())

	_, err := p.Transactions.ListByCard(context.Background(), "missing-id", 10, 0)
	if !errors.Is(err, card.ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}
