package main

import (
	"net/http"

	httphandlers "kort/internal/interfaces/http"
	"kort/internal/shared/config"
	"kort/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Status page and health check
	mux.HandleFunc("/", httphandlers.HandleIndex)
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Companies
	mux.HandleFunc("/api/companies", deps.CompanyHandler.HandleListCompanies)
	mux.HandleFunc("/api/companies/{id}", deps.CompanyHandler.HandleCompanyByID)
	mux.HandleFunc("/api/companies/{id}/cards", deps.CompanyHandler.HandleCompanyCards)

	// Cards
	mux.HandleFunc("/api/cards/{id}", deps.CardHandler.HandleCardByID)
	mux.HandleFunc("/api/cards/{id}/activate", deps.CardHandler.HandleActivate)
	mux.HandleFunc("/api/cards/{id}/invoice", deps.CardHandler.HandleInvoice)

	// Transactions
	mux.HandleFunc("/api/transactions", deps.TransactionHandler.HandleListTransactions)

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(cfg.Server.AllowedHosts)(mux))
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(middleware.Tracing(handler))
	}

	return handler
}
