package http

import (
	"net/http"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
)

// CompanyHandler exposes the company read operations.
type CompanyHandler struct {
	companyService *company.Service
	cardService    *card.Service
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService *company.Service, cardService *card.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, cardService: cardService}
}

// companyIDParams validates the path parameter shared by the by-ID routes.
type companyIDParams struct {
	ID string `validate:"required,uuid4"`
}

// HandleListCompanies returns all companies.
func (h *CompanyHandler) HandleListCompanies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, CodeInvalidInput, "Method not allowed")
		return
	}

	companies, err := h.companyService.ListCompanies(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if companies == nil {
		companies = []*company.Company{}
	}

	respondJSON(w, http.StatusOK, companies)
}

// HandleCompanyByID returns a specific company.
func (h *CompanyHandler) HandleCompanyByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, CodeInvalidInput, "Method not allowed")
		return
	}

	params := companyIDParams{ID: r.PathValue("id")}
	if details := validateRequest(params); details != nil {
		respondValidationError(w, details)
		return
	}

	c, err := h.companyService.GetCompany(r.Context(), params.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// HandleCompanyCards returns all cards owned by a company.
func (h *CompanyHandler) HandleCompanyCards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, CodeInvalidInput, "Method not allowed")
		return
	}

	params := companyIDParams{ID: r.PathValue("id")}
	if details := validateRequest(params); details != nil {
		respondValidationError(w, details)
		return
	}

	cards, err := h.cardService.ListCardsByCompany(r.Context(), params.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if cards == nil {
		cards = []*card.Card{}
	}

	respondJSON(w, http.StatusOK, cards)
}
