package handler

import (
	"net/http"

	"github.com/osse101/CoinQuest_Go/internal/ledger"
)

// LedgerHandler serves transaction history
type LedgerHandler struct {
	ledger ledger.Service
}

// NewLedgerHandler creates a LedgerHandler
func NewLedgerHandler(svc ledger.Service) *LedgerHandler {
	return &LedgerHandler{ledger: svc}
}

// HandleGetTransactions returns the caller's most recent transactions, newest first
// @Summary List transactions
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 50, max 100)"
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/transactions [get]
func (h *LedgerHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	txns, err := h.ledger.History(r.Context(), authID, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, txns)
}
