package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CoinQuest_Go/internal/jobs"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/internal/profile"
)

// JobRunner runs a maintenance job immediately
type JobRunner interface {
	RunNow(job jobs.Job) (int64, error)
}

// AdminHandler serves operator endpoints behind the API key
type AdminHandler struct {
	ledger   ledger.Service
	profiles profile.Service
	runner   JobRunner
	jobs     map[string]jobs.Job
}

// NewAdminHandler creates an AdminHandler. Jobs are addressable by their Name().
func NewAdminHandler(ledgerSvc ledger.Service, profiles profile.Service, runner JobRunner, js ...jobs.Job) *AdminHandler {
	byName := make(map[string]jobs.Job, len(js))
	for _, j := range js {
		byName[j.Name()] = j
	}
	return &AdminHandler{
		ledger:   ledgerSvc,
		profiles: profiles,
		runner:   runner,
		jobs:     byName,
	}
}

// HandleLedgerAudit compares a user's stored balance against their transaction totals
// @Summary Audit a user's ledger
// @Description consistent=false means the balance does not equal credits minus debits
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param authID path string true "Auth ID"
// @Success 200 {object} domain.LedgerSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/ledger/{authID}/audit [get]
func (h *AdminHandler) HandleLedgerAudit(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledger.Summary(r.Context(), chi.URLParam(r, URLParamAuthID))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleGetCacheStats returns profile cache statistics
// @Summary Get profile cache stats
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} profile.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profiles.GetCacheStats())
}

// JobRunResponse reports a manual job run
type JobRunResponse struct {
	Job          string `json:"job"`
	RowsAffected int64  `json:"rows_affected"`
}

// HandleRunJob runs a maintenance job now
// @Summary Run a maintenance job
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param job path string true "streak_expiry or redeem_session_sweep"
// @Success 200 {object} JobRunResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/jobs/{job}/run [post]
func (h *AdminHandler) HandleRunJob(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, URLParamJob)
	job, ok := h.jobs[name]
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgUnknownJob)
		return
	}

	slogFromRequest(r).Info(LogMsgManualJobRun, "job", name)
	rows, err := h.runner.RunNow(job)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, JobRunResponse{Job: name, RowsAffected: rows})
}
