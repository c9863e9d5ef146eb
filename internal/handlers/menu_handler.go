package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/service"
	"github.com/go-chi/chi/v5"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListItems handles GET /api/menu?category=&search=
// Missing category means all categories; missing search matches everything
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	criteria := models.FilterCriteria{
		Category:   query.Get("category"),
		SearchTerm: query.Get("search"),
	}
	if criteria.Category == "" {
		criteria.Category = models.CategoryAll
	}

	items, err := h.service.ListItems(r.Context(), criteria)
	if err != nil {
		h.logger.Error("failed to list menu items", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// GetItem handles GET /api/menu/{itemId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Menu item not found
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r, h.logger)
	if !ok {
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			h.logger.Info("menu item not found", "item_id", itemID)
			WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
			return
		}

		h.logger.Error("failed to get menu item", "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}

// ListCategories handles GET /api/categories
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}

// parseItemID reads the itemId URL parameter, writing a 400 when it is not an integer
func parseItemID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	raw := chi.URLParam(r, "itemId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("invalid item ID format", "item_id", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", logger)
		return 0, false
	}
	return id, true
}
