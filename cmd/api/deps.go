package main

import (
	"log"
	"time"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
	"kort/internal/domain/invoice"
	"kort/internal/domain/transaction"
	"kort/internal/dual"
	"kort/internal/infrastructure/postgres"
	"kort/internal/infrastructure/redis"
	httphandlers "kort/internal/interfaces/http"
	"kort/internal/mock"
	"kort/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB    *postgres.DB
	Redis *redis.Client

	// Handlers
	CompanyHandler     *httphandlers.CompanyHandler
	CardHandler        *httphandlers.CardHandler
	TransactionHandler *httphandlers.TransactionHandler

	// Mock graph, exposed so the process can be reset in development.
	MockStore *mock.Store
}

// NewDependencies initializes all application dependencies.
//
// With USE_MOCK enabled the database connection is skipped entirely and
// every operation runs against the generated graph. Otherwise Postgres
// is required and the mock graph only serves as the fallback source for
// failed live reads.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	executor := dual.NewExecutor(cfg.Mock.Enabled)

	mockStore := mock.NewStore()
	provider := mock.NewProvider(mockStore)

	var (
		db           *postgres.DB
		redisClient  *redis.Client
		companyStore company.Repository     = provider.Companies
		cardStore    card.Repository        = provider.Cards
		invoiceStore invoice.Repository     = provider.Invoices
		txStore      transaction.Repository = provider.Transactions
	)

	if !cfg.Mock.Enabled {
		var err error
		db, err = postgres.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, err
		}
		log.Println("Connected to database")

		var cardCache *redis.ViewCache[card.Card]
		if cfg.Redis.Addr != "" {
			redisClient, err = redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				// The cache is an optimization; run without it.
				log.Printf("Warning: redis unavailable, running uncached: %v", err)
			} else {
				cardCache = redis.NewViewCache[card.Card](redisClient, 5*time.Minute)
				log.Println("Connected to redis")
			}
		}

		companyStore = postgres.NewCompanyRepository(db)
		cardStore = postgres.NewCardRepository(db, cardCache)
		invoiceStore = postgres.NewInvoiceRepository(db)
		txStore = postgres.NewTransactionRepository(db)
	} else {
		log.Println("Mock mode enabled: serving generated data, no database connection")
	}

	// Initialize domain services; each carries one mock source and one
	// store source for the executor.
	companyService := company.NewService(executor, provider.Companies, companyStore)
	cardService := card.NewService(executor, provider.Cards, cardStore, provider.Invoices, invoiceStore)
	transactionService := transaction.NewService(executor, provider.Transactions, txStore)

	return &Dependencies{
		DB:                 db,
		Redis:              redisClient,
		CompanyHandler:     httphandlers.NewCompanyHandler(companyService, cardService),
		CardHandler:        httphandlers.NewCardHandler(cardService),
		TransactionHandler: httphandlers.NewTransactionHandler(transactionService),
		MockStore:          mockStore,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.Redis != nil {
		d.Redis.Close()
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
