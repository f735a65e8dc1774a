package handler

import (
	"net/http"

	"github.com/osse101/CoinQuest_Go/internal/shop"
)

// ShopHandler serves the catalog and purchases
type ShopHandler struct {
	shop shop.Service
}

// NewShopHandler creates a ShopHandler
func NewShopHandler(svc shop.Service) *ShopHandler {
	return &ShopHandler{shop: svc}
}

// PurchaseRequest buys one catalog item
type PurchaseRequest struct {
	ItemID         string `json:"item_id" validate:"required,max=64"`
	IdempotencyKey string `json:"idempotency_key" validate:"required,min=8,max=128,printascii"`
}

// HandleListItems returns the catalog, cheapest first
// @Summary List shop items
// @Tags shop
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ShopItem
// @Router /api/v1/shop/items [get]
func (h *ShopHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.shop.ListItems(r.Context()))
}

// HandlePurchase debits the item cost
// @Summary Purchase an item
// @Tags shop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PurchaseRequest true "Purchase"
// @Success 200 {object} shop.PurchaseResult
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/shop/purchase [post]
func (h *ShopHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	authID, ok := requireAuthID(w, r)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	result, err := h.shop.Purchase(r.Context(), authID, req.ItemID, req.IdempotencyKey)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
