package service

import (
	"context"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/menu"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/repository"
)

// MenuService handles business logic for the menu
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListItems returns the menu items matching criteria
func (s *MenuService) ListItems(ctx context.Context, criteria models.FilterCriteria) ([]models.MenuItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return menu.Filter(items, criteria), nil
}

// GetItem returns a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories returns the menu categories in menu order
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return menu.Categories(items), nil
}
