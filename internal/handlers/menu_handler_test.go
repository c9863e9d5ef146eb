package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Veg Pizza", Description: "Loaded with vegetables", Category: "Pizza", Price: 299},
		{ID: 2, Name: "Coke", Description: "Chilled cola", Category: "Drinks", Price: 49},
		{ID: 3, Name: "Farmhouse Pizza", Description: "Onion and capsicum", Category: "Pizza", Price: 399},
		{ID: 4, Name: "Cold Coffee", Description: "Blended with ice cream", Category: "Drinks", Price: 129},
	}
}

func newMenuRouter() chi.Router {
	repo := repository.NewInMemoryMenuRepository(testMenu())
	handler := NewMenuHandler(service.NewMenuService(repo), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/menu", handler.ListItems)
	r.Get("/api/menu/{itemId}", handler.GetItem)
	r.Get("/api/categories", handler.ListCategories)
	return r
}

func TestListItems(t *testing.T) {
	r := newMenuRouter()

	testCases := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"no filters", "", []int64{1, 2, 3, 4}},
		{"all category", "?category=all", []int64{1, 2, 3, 4}},
		{"category", "?category=Pizza", []int64{1, 3}},
		{"category case-insensitive", "?category=drinks", []int64{2, 4}},
		{"search name", "?search=PIZZA", []int64{1, 3}},
		{"search description", "?search=ice", []int64{4}},
		{"category and search", "?category=Drinks&search=cola", []int64{2}},
		{"no match", "?category=Pizza&search=coffee", []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/menu"+tc.query, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var items []models.MenuItem
			if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(items) != len(tc.wantIDs) {
				t.Fatalf("expected %d items, got %d", len(tc.wantIDs), len(items))
			}
			for i, item := range items {
				if item.ID != tc.wantIDs[i] {
					t.Errorf("item %d: expected ID %d, got %d", i, tc.wantIDs[i], item.ID)
				}
			}
		})
	}
}

func TestListItems_EmptyMenuReturnsArray(t *testing.T) {
	handler := NewMenuHandler(service.NewMenuService(repository.NewInMemoryMenuRepository(nil)), logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()

	handler.ListItems(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestGetItem_Success(t *testing.T) {
	r := newMenuRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/menu/2", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var item models.MenuItem
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if item.ID != 2 || item.Name != "Coke" || item.Category != "Drinks" || item.Price != 49 {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	r := newMenuRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/menu/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if response["error"] != "Menu item not found" {
		t.Errorf("expected error message 'Menu item not found', got %s", response["error"])
	}
}

func TestGetItem_InvalidID(t *testing.T) {
	r := newMenuRouter()

	testCases := []struct {
		name string
		id   string
	}{
		{"letters", "invalid"},
		{"special chars", "abc@123"},
		{"float", "12.34"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/menu/"+tc.id, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 for ID %s, got %d", tc.id, w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}

			if response["error"] != "Invalid ID supplied" {
				t.Errorf("expected error message 'Invalid ID supplied', got %s", response["error"])
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	r := newMenuRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var categories []string
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(categories) != 2 || categories[0] != "Pizza" || categories[1] != "Drinks" {
		t.Errorf("expected [Pizza Drinks], got %v", categories)
	}
}
