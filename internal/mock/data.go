// Package mock generates and serves the in-memory data graph used when
// the API runs without a backing store, and whenever a live read falls
// back after a store failure.
package mock

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
	"kort/internal/domain/transaction"
)

// Default graph dimensions.
const (
	DefaultCompanyCount        = 3
	DefaultCardsPerCompany     = 4
	DefaultTransactionsPerCard = 8
)

var cardStatuses = []string{card.StatusActive, card.StatusInactive, card.StatusSuspended}

var transactionDescriptions = []string{
	"Office Supplies",
	"Travel Booking",
	"Software Subscription",
	"Hotel Stay",
	"Flight Ticket",
	"Restaurant",
	"Gas Station",
	"Internet Service",
	"Equipment Purchase",
	"Training Course",
}

// Graph is the full set of interlinked generated records. Cards are
// keyed by owning company ID, transactions by owning card ID.
type Graph struct {
	Companies    []*company.Company
	Cards        map[string][]*card.Card
	Transactions map[string][]*transaction.Transaction
}

// Store holds the process-wide mock graph. Initialization is lazy and
// guarded by the mutex so concurrent first access cannot generate two
// identifier sets.
type Store struct {
	mu    sync.Mutex
	graph *Graph
}

// NewStore creates an empty store; the graph is generated on first access.
func NewStore() *Store {
	return &Store{}
}

// Graph returns the cached graph, generating it on first call. Repeated
// calls before Reset return the same object graph with the same
// identifiers. Providers read through graphLocked instead so record
// access stays under the store mutex.
func (s *Store) Graph() *Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graphLocked()
}

// graphLocked is Graph without locking. Callers must hold s.mu.
func (s *Store) graphLocked() *Graph {
	if s.graph == nil {
		s.graph = generateGraph(DefaultCompanyCount, DefaultCardsPerCompany, DefaultTransactionsPerCard)
	}
	return s.graph
}

// Reset clears the cache and regenerates a fresh graph.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph = generateGraph(DefaultCompanyCount, DefaultCardsPerCompany, DefaultTransactionsPerCard)
}

func generateGraph(companies, cardsPerCompany, transactionsPerCard int) *Graph {
	g := &Graph{
		Companies:    generateCompanies(companies),
		Cards:        make(map[string][]*card.Card),
		Transactions: make(map[string][]*transaction.Transaction),
	}

	for _, c := range g.Companies {
		cards := generateCards(c.ID, cardsPerCompany)
		g.Cards[c.ID] = cards

		for _, cc := range cards {
			g.Transactions[cc.ID] = generateTransactions(cc.ID, transactionsPerCard)
		}
	}

	return g
}

// generateCompanies produces count companies with staggered timestamps,
// oldest first.
func generateCompanies(count int) []*company.Company {
	now := time.Now()
	companies := make([]*company.Company, 0, count)
	for i := 0; i < count; i++ {
		companies = append(companies, &company.Company{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Company %d", i+1),
			CreatedAt: now.Add(-time.Duration(count-i) * 24 * time.Hour),
			UpdatedAt: now.Add(-time.Duration(count-i-1) * 12 * time.Hour),
		})
	}
	return companies
}

// generateCards produces count cards for a company. Statuses cycle
// through the fixed enum, limits grow with the index, spend is drawn
// from a bounded random range independent of the limit.
func generateCards(companyID string, count int) []*card.Card {
	now := time.Now()
	cards := make([]*card.Card, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, &card.Card{
			ID:           uuid.NewString(),
			CompanyID:    companyID,
			CardNumber:   fmt.Sprintf("4532%08d%d", rand.Intn(100000000), i),
			Status:       cardStatuses[i%len(cardStatuses)],
			Limit:        float64(i+1) * 5000,
			CurrentSpend: float64(rand.Intn(5000)),
			Currency:     "USD",
			CardImageURL: fmt.Sprintf("https://via.placeholder.com/400x250?text=Card+%d", i+1),
			CreatedAt:    now.Add(-time.Duration(count-i) * 7 * 24 * time.Hour),
			UpdatedAt:    now.Add(-time.Duration(count-i-1) * 24 * time.Hour),
		})
	}
	return cards
}

// generateTransactions produces count transactions for a card, oldest
// to newest by index; the provider reverses to date-descending before
// serving.
func generateTransactions(cardID string, count int) []*transaction.Transaction {
	now := time.Now()
	transactions := make([]*transaction.Transaction, 0, count)
	for i := 0; i < count; i++ {
		date := now.Add(-time.Duration(count-i) * 24 * time.Hour)
		transactions = append(transactions, &transaction.Transaction{
			ID:          uuid.NewString(),
			CardID:      cardID,
			Description: transactionDescriptions[i%len(transactionDescriptions)],
			Amount:      float64(rand.Intn(2000) + 50),
			DataPoints:  fmt.Sprintf("transaction-%d", i+1),
			Date:        date,
			CreatedAt:   date,
		})
	}
	return transactions
}
