package handler

import (
	"net/http"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/reward"
)

// RewardHandler serves reward claims
type RewardHandler struct {
	rewards reward.Service
}

// NewRewardHandler creates a RewardHandler
func NewRewardHandler(rewards reward.Service) *RewardHandler {
	return &RewardHandler{rewards: rewards}
}

// ClaimRequest asks for the reward of one action. It carries no amount: the server decides.
type ClaimRequest struct {
	Action         string `json:"action" validate:"required,action"`
	Slot           string `json:"slot,omitempty" validate:"required_if=Action ad,adslot"`
	ViewSessionID  string `json:"view_session_id,omitempty" validate:"required_if=Action video,max=64"`
	IdempotencyKey string `json:"idempotency_key" validate:"required,min=8,max=128,printascii"`
}

// HandleClaim grants the reward for an action if its cooldown allows
// @Summary Claim a reward
// @Description Evaluates the cooldown, resolves the amount and records the ledger entry atomically.
// @Description Replaying an idempotency key returns the original result.
// @Tags rewards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClaimRequest true "Claim"
// @Success 200 {object} reward.ClaimResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} CooldownErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/rewards/claim [post]
func (h *RewardHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}

	var req ClaimRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim reward"); err != nil {
		return
	}

	result, err := h.rewards.Claim(r.Context(), reward.ClaimRequest{
		AuthID:         authID,
		Action:         domain.Action(req.Action),
		Slot:           req.Slot,
		ViewSessionID:  req.ViewSessionID,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleStartVideo issues the view session a video claim has to present
// @Summary Start watching a video
// @Description Replaces any earlier view session. The claim is accepted once, after claimable_at.
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 201 {object} reward.VideoSession
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/rewards/video/sessions [post]
func (h *RewardHandler) HandleStartVideo(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}

	session, err := h.rewards.StartVideo(r.Context(), authID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// HandleGetWheel returns the wheel segments to render
// @Summary Get spin wheel
// @Description Segments of the spin wheel. Segments with drawable=false are never awarded.
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} reward.WheelSegment
// @Router /api/v1/rewards/wheel [get]
func (h *RewardHandler) HandleGetWheel(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.rewards.WheelSegments())
}
