package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/service"
)

// CartHandler handles cart and checkout HTTP requests
type CartHandler struct {
	carts  *service.CartService
	orders *service.OrderService
	log    *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *service.CartService, orders *service.OrderService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		orders: orders,
		log:    log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.carts.Summary(r.Context()), h.log)
}

// AddItem handles POST /api/cart/items
// A missing or non-positive quantity adds a single unit; line quantities
// saturate at cart.MaxQuantity
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest

	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Error("failed to decode add to cart request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	summary, err := h.carts.Add(r.Context(), req.ID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
			return
		}
		h.log.Error("failed to add item to cart", "item_id", req.ID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// UpdateItem handles PUT /api/cart/items/{itemId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r, h.log)
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Error("failed to decode quantity update", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	summary, err := h.carts.SetQuantity(r.Context(), itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrLineNotFound) {
			WriteError(w, http.StatusNotFound, "Item is not in the cart", h.log)
			return
		}
		h.log.Error("failed to update cart item", "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// RemoveItem handles DELETE /api/cart/items/{itemId}
// Removing an item that is not in the cart is not an error
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r, h.log)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, h.carts.Remove(r.Context(), itemID), h.log)
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			WriteError(w, http.StatusBadRequest, "Cart is empty", h.log)
			return
		}
		h.log.Error("failed to place order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}
