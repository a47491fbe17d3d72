package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
	"kort/internal/domain/transaction"
)

// Stable machine-readable error codes surfaced to clients.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnavailable  = "UNAVAILABLE"
)

var validate = validator.New()

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// respondDomainError maps domain sentinels to stable codes. Anything
// unrecognized is a backing store failure: reads under the auto
// strategy never reach here for those (the executor falls back), so an
// unknown error always means a forced-real read or a failed mutation.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, card.ErrCardNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, card.ErrCardAlreadyActive):
		respondError(w, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, transaction.ErrInvalidPagination):
		respondError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
	default:
		log.Printf("Backing store error: %v", err)
		respondError(w, http.StatusServiceUnavailable, CodeUnavailable, "backing store unavailable")
	}
}

// validateRequest runs struct validation and converts failures into the
// client-facing detail list.
func validateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var details []ValidationError
	for _, fe := range err.(validator.ValidationErrors) {
		details = append(details, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "uuid4", "uuid":
		return "Must be a valid UUID"
	case "gte":
		return "Value must be greater than or equal to " + fe.Param()
	case "lte":
		return "Value must be less than or equal to " + fe.Param()
	default:
		return "Invalid value"
	}
}

func respondValidationError(w http.ResponseWriter, details []ValidationError) {
	respondJSON(w, http.StatusBadRequest, ErrorBody{Error: ErrorDetail{
		Code:    CodeInvalidInput,
		Message: "Invalid request data",
		Details: details,
	}})
}
