package http

import (
	"net/http"

	"kort/internal/domain/card"
)

// CardHandler exposes card reads, invoice lookup and activation.
type CardHandler struct {
	cardService *card.Service
}

// NewCardHandler creates a new card handler.
func NewCardHandler(cardService *card.Service) *CardHandler {
	return &CardHandler{cardService: cardService}
}

type cardIDParams struct {
	ID string `validate:"required,uuid4"`
}

// HandleCardByID returns card details including the derived remaining spend.
func (h *CardHandler) HandleCardByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, CodeInvalidInput, "Method not allowed")
		return
	}

	params := cardIDParams{ID: r.PathValue("id")}
	if details := validateRequest(params); details != nil {
		respondValidationError(w, details)
		return
	}

	detail, err := h.cardService.GetCard(r.Context(), params.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// HandleActivate transitions a card to the active status. Activating an
// already-active card is a conflict; a backing store failure surfaces
// as an error and is never silently retried against mock data.
func (h *CardHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, CodeInvalidInput, "Method not allowed")
		return
	}

	params := cardIDParams{ID: r.PathValue("id")}
	if details := validateRequest(params); details != nil {
		respondValidationError(w, details)
		return
	}

	updated, err := h.cardService.ActivateCard(r.Context(), params.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// HandleInvoice returns the card's invoice, or null when it has none.
func (h *CardHandler) HandleInvoice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, CodeInvalidInput, "Method not allowed")
		return
	}

	params := cardIDParams{ID: r.PathValue("id")}
	if details := validateRequest(params); details != nil {
		respondValidationError(w, details)
		return
	}

	inv, err := h.cardService.GetInvoice(r.Context(), params.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inv)
}
