package handler

import (
	"net/http"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/auth"
	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/profile"
)

// ProfileHandler serves the caller's profile and cooldown state
type ProfileHandler struct {
	profiles  profile.Service
	cooldowns cooldown.Service
}

// NewProfileHandler creates a ProfileHandler
func NewProfileHandler(profiles profile.Service, cooldowns cooldown.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, cooldowns: cooldowns}
}

// EnsureProfileMiddleware creates the caller's profile on first sight, so every
// authenticated route can assume it exists. Hits the profile cache after the first call.
func EnsureProfileMiddleware(profiles profile.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := auth.IdentityFromContext(r.Context())
			if id == nil {
				respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}
			if _, err := profiles.EnsureProfile(r.Context(), id.AuthID, id.Username); err != nil {
				slogFromRequest(r).Error(LogMsgProfileEnsureFail, "error", err)
				respondServiceError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HandleGetProfile returns the caller's profile
// @Summary Get profile
// @Description Returns the caller's balance, streak and claim timestamps. Creates the profile on first call.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	p, err := h.profiles.EnsureProfile(r.Context(), id.AuthID, id.Username)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// CooldownEntry is the display form of one cooldown
type CooldownEntry struct {
	Eligible         bool       `json:"eligible"`
	RemainingSeconds int        `json:"remaining_seconds"`
	AvailableAt      *time.Time `json:"available_at,omitempty"`
}

// CooldownsResponse lists every cooldown-gated action
type CooldownsResponse struct {
	DailyReward CooldownEntry            `json:"daily_reward"`
	Spin        CooldownEntry            `json:"spin"`
	Ads         map[string]CooldownEntry `json:"ads"`
	EvaluatedAt time.Time                `json:"evaluated_at"`
}

// HandleGetCooldowns returns eligibility for daily reward, spin and each ad slot
// @Summary Get cooldowns
// @Description Remaining wait per cooldown-gated action. Video has no cooldown.
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CooldownsResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/cooldowns [get]
func (h *ProfileHandler) HandleGetCooldowns(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}

	status, err := h.cooldowns.GetStatus(r.Context(), authID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := CooldownsResponse{
		DailyReward: toEntry(status.DailyReward, status.EvaluatedAt),
		Spin:        toEntry(status.Spin, status.EvaluatedAt),
		Ads:         make(map[string]CooldownEntry, len(status.Ads)),
		EvaluatedAt: status.EvaluatedAt,
	}
	for slot, e := range status.Ads {
		resp.Ads[slot] = toEntry(e, status.EvaluatedAt)
	}
	respondJSON(w, http.StatusOK, resp)
}

func toEntry(e cooldown.Eligibility, now time.Time) CooldownEntry {
	entry := CooldownEntry{Eligible: e.Eligible, RemainingSeconds: e.RemainingSeconds()}
	if !e.Eligible {
		at := now.Add(e.Remaining)
		entry.AvailableAt = &at
	}
	return entry
}
