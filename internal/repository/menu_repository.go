package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

// InMemoryMenuRepository implements MenuRepository over the loaded menu.
// Items keep their menu order.
type InMemoryMenuRepository struct {
	items []models.MenuItem
	index map[int64]int
}

// NewInMemoryMenuRepository creates a repository holding items.
// Later items with an already seen ID are ignored.
func NewInMemoryMenuRepository(items []models.MenuItem) *InMemoryMenuRepository {
	repo := &InMemoryMenuRepository{
		items: make([]models.MenuItem, 0, len(items)),
		index: make(map[int64]int, len(items)),
	}

	for _, item := range items {
		if _, exists := repo.index[item.ID]; exists {
			continue
		}
		repo.index[item.ID] = len(repo.items)
		repo.items = append(repo.items, item)
	}

	return repo
}

// GetAll returns a copy of all menu items in menu order
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID returns a menu item by its ID
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrMenuItemNotFound
	}
	item := r.items[i]
	return &item, nil
}
