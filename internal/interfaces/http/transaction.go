package http

import (
	"net/http"
	"strconv"

	"kort/internal/domain/transaction"
)

// TransactionHandler exposes the paginated transaction listing.
type TransactionHandler struct {
	transactionService *transaction.Service
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactionService *transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type listTransactionsParams struct {
	CardID string `validate:"required,uuid4"`
	Limit  int    `validate:"gte=1,lte=100"`
	Offset int    `validate:"gte=0"`
}

// HandleListTransactions returns a window of a card's transactions,
// newest first, with the total unsliced count.
//
// Query parameters: cardId (required), limit (default 10, explicit
// values must be 1..100), offset (default 0). The page echoes the
// window it was sliced with, so an omitted limit reads back as the
// default rather than zero.
func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, CodeInvalidInput, "Method not allowed")
		return
	}

	params := listTransactionsParams{
		CardID: r.URL.Query().Get("cardId"),
		Limit:  transaction.DefaultLimit,
	}

	var err error
	if v := r.URL.Query().Get("limit"); v != "" {
		params.Limit, err = strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, CodeInvalidInput, "limit must be an integer")
			return
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		params.Offset, err = strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, CodeInvalidInput, "offset must be an integer")
			return
		}
	}

	if details := validateRequest(params); details != nil {
		respondValidationError(w, details)
		return
	}

	page, err := h.transactionService.ListByCard(r.Context(), params.CardID, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}
