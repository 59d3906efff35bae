package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wholestock/inventory-backend/internal/domain"
)

// errorResponse is the JSON body for all non-2xx responses.
type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors to HTTP status codes. Anything unmapped is
// logged and reported as a 500 without leaking internals.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]fieldError, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
