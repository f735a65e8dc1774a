package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CooldownErrorResponse is returned with 429 so clients can render the wait
type CooldownErrorResponse struct {
	Error             string `json:"error"`
	RetryAfterSeconds int    `json:"retry_after_seconds"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps err and writes it. Cooldown errors carry a Retry-After header.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		slogFromRequest(r).Error(LogMsgServiceError, "path", r.URL.Path, "error", err)
	} else {
		slogFromRequest(r).Debug(LogMsgServiceError, "path", r.URL.Path, "error", err)
	}

	var cdErr cooldown.ErrOnCooldown
	if errors.As(err, &cdErr) {
		secs := int(math.Ceil(cdErr.Remaining.Seconds()))
		w.Header().Set(HeaderRetryAfter, strconv.Itoa(secs))
		respondJSON(w, status, CooldownErrorResponse{Error: msg, RetryAfterSeconds: secs})
		return
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a message users can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired, ErrMsgInsufficientBalanceErr
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrShopItemNotFound):
		return http.StatusNotFound, ErrMsgShopItemNotFoundError
	case errors.Is(err, domain.ErrRedeemCodeNotFound):
		return http.StatusNotFound, ErrMsgRedeemCodeNotFoundErr
	case errors.Is(err, domain.ErrRedeemSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrInvalidAdSlot):
		return http.StatusBadRequest, ErrMsgInvalidAdSlotError
	case errors.Is(err, domain.ErrVideoViewNotFound):
		return http.StatusNotFound, ErrMsgVideoViewNotFoundErr
	case errors.Is(err, domain.ErrVideoViewClaimed):
		return http.StatusConflict, ErrMsgVideoViewClaimedErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrRedeemNotReady):
		return http.StatusConflict, ErrMsgRedeemNotReadyError
	case errors.Is(err, domain.ErrRedeemSessionActive):
		return http.StatusConflict, ErrMsgSessionActiveError
	case errors.Is(err, domain.ErrRedeemSessionClosed):
		return http.StatusConflict, ErrMsgSessionClosedError
	case errors.Is(err, domain.ErrIdempotencyConflict):
		return http.StatusConflict, ErrMsgIdempotencyConflictErr
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
