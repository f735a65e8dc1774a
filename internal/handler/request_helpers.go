package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/CoinQuest_Go/internal/auth"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// When it returns an error the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requireAuthID returns the caller's auth id, writing 401 when the request is unauthenticated
func requireAuthID(w http.ResponseWriter, r *http.Request) (string, bool) {
	authID := auth.AuthIDFromContext(r.Context())
	if authID == "" {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return "", false
	}
	return authID, true
}

// sessionIDParam reads and validates the {id} route parameter
func sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, URLParamID)
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSessionID)
		return "", false
	}
	return id, true
}

// parseLimit reads ?limit=. Missing means 0 (service default); values are capped at ledger.MaxHistoryLimit.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get(QueryParamLimit)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return min(n, ledger.MaxHistoryLimit), true
}

func slogFromRequest(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context())
}
