package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/redeem"
	"github.com/osse101/CoinQuest_Go/internal/sse"
)

// RedeemHandler serves the redeem catalog and the timed verification flow
type RedeemHandler struct {
	redeem   redeem.Service
	interval time.Duration
}

// NewRedeemHandler creates a RedeemHandler. interval is the countdown tick rate.
func NewRedeemHandler(svc redeem.Service, interval time.Duration) *RedeemHandler {
	return &RedeemHandler{redeem: svc, interval: interval}
}

// StartRedeemRequest begins a flow for one code
type StartRedeemRequest struct {
	CodeID         string `json:"code_id" validate:"required,max=64"`
	IdempotencyKey string `json:"idempotency_key" validate:"required,min=8,max=128,printascii"`
}

// HandleListCodes returns the active codes by cost, without their values
// @Summary List redeem codes
// @Tags redeem
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RedeemCode
// @Router /api/v1/redeem/codes [get]
func (h *RedeemHandler) HandleListCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.redeem.ListCodes(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, codes)
}

// HandleStart debits the code cost and enters Step1
// @Summary Start a redemption
// @Description Debits the code's cost immediately and starts three timed verification steps.
// @Tags redeem
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StartRedeemRequest true "Start"
// @Success 201 {object} redeem.SessionView
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/redeem/sessions [post]
func (h *RedeemHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}

	var req StartRedeemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start redeem"); err != nil {
		return
	}

	view, err := h.redeem.Start(r.Context(), authID, req.CodeID, req.IdempotencyKey)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	status := http.StatusCreated
	if view.Replayed {
		status = http.StatusOK
	}
	respondJSON(w, status, view)
}

// HandleCurrent returns the caller's active flow, or state idle
// @Summary Current redemption
// @Tags redeem
// @Produce json
// @Security BearerAuth
// @Success 200 {object} redeem.SessionView
// @Router /api/v1/redeem/sessions/current [get]
func (h *RedeemHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}

	view, err := h.redeem.Status(r.Context(), authID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleConfirm reveals the code once the last step has elapsed
// @Summary Confirm a redemption
// @Tags redeem
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} redeem.SessionView
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/redeem/sessions/{id}/confirm [post]
func (h *RedeemHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.redeem.Confirm(r.Context(), authID, sessionID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCancel abandons an unfinished flow
// @Summary Cancel a redemption
// @Description Returns the flow to idle. Coins are only refunded when the server is configured to.
// @Tags redeem
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} redeem.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/redeem/sessions/{id} [delete]
func (h *RedeemHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.redeem.Cancel(r.Context(), authID, sessionID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCountdown streams one tick per second until the flow can be confirmed
// @Summary Redemption countdown
// @Description Server-sent events with the current step and remaining seconds. Ends when confirmable.
// @Tags redeem
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} redeem.SessionView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/redeem/sessions/{id}/countdown [get]
func (h *RedeemHandler) HandleCountdown(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}
	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	// ownership and existence are checked before the stream opens so errors stay JSON
	if _, err := h.redeem.Get(r.Context(), authID, sessionID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	sse.StreamCountdown(w, r, func(ctx context.Context, now time.Time) (*redeem.SessionView, error) {
		session, err := h.redeem.Get(ctx, authID, sessionID)
		if err != nil {
			return nil, err
		}
		return h.redeem.View(session, now), nil
	}, h.interval)
}
