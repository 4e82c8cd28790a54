package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/accountaudit/internal/credential"
	"github.com/heartmarshall/accountaudit/internal/domain"
	"github.com/heartmarshall/accountaudit/internal/service/audit"
	"github.com/heartmarshall/accountaudit/internal/service/auth"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a JSON body into dst. Any failure is reported to the
// client as 400 and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// errorPresenter maps service errors to HTTP responses. Internal details are
// attached to 5xx bodies only when exposeDetails is set.
type errorPresenter struct {
	log           *slog.Logger
	exposeDetails bool
}

// present writes err. internalMsg is the client message for unclassified
// failures of the current operation.
func (p errorPresenter) present(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	var (
		credErr  *credential.Error
		valErr   *domain.ValidationError
		rejected *auth.InsertRejectedError
		storeErr *auth.StoreError
	)

	switch {
	case errors.Is(err, audit.ErrWrite):
		p.internal(w, r, err, internalMsg)
	case errors.As(err, &credErr):
		writeError(w, http.StatusBadRequest, credErr.Message)
	case errors.As(err, &rejected):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Failed to create user account",
			Details: rejected.Detail,
		})
	case errors.As(err, &valErr):
		writeError(w, http.StatusBadRequest, valErr.Public())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.As(err, &storeErr):
		p.internal(w, r, err, storeErr.Message)
	default:
		p.internal(w, r, err, internalMsg)
	}
}

func (p errorPresenter) internal(w http.ResponseWriter, r *http.Request, err error, message string) {
	p.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))

	resp := errorResponse{Error: message}
	if p.exposeDetails {
		resp.Details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
