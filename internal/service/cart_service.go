package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/cart"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/repository"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrLineNotFound = errors.New("item is not in the cart")
)

// CartStore persists cart snapshots
type CartStore interface {
	Load(ctx context.Context) cart.Cart
	Save(ctx context.Context, c cart.Cart) error
}

// ItemFinder looks up menu items by ID
type ItemFinder interface {
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

// CartService owns the single shopping cart.
// Every mutation is written through to the store before it returns; a
// failed write is logged and the in-memory cart stays authoritative.
type CartService struct {
	mu    sync.Mutex
	cart  cart.Cart
	store CartStore
	menu  ItemFinder
	log   *slog.Logger
}

// NewCartService creates a cart service; call Load before serving requests
func NewCartService(store CartStore, menu ItemFinder, log *slog.Logger) *CartService {
	return &CartService{
		store: store,
		menu:  menu,
		log:   log,
	}
}

// Load replaces the in-memory cart with the persisted snapshot
func (s *CartService) Load(ctx context.Context) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.store.Load(ctx)
	s.log.Info("cart loaded", "lines", s.cart.Len(), "count", s.cart.Count())
	return s.cart.Summary()
}

// Summary returns the current cart
func (s *CartService) Summary(ctx context.Context) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Summary()
}

// Add puts quantity units of the menu item id into the cart, snapshotting
// its name and price from the menu
func (s *CartService) Add(ctx context.Context, id int64, quantity int) (models.CartSummary, error) {
	if id < 1 {
		return models.CartSummary{}, ErrItemNotFound
	}

	item, err := s.menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return models.CartSummary{}, ErrItemNotFound
		}
		return models.CartSummary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Add(item.ID, item.Name, item.Price, quantity) {
		return s.cart.Summary(), ErrItemNotFound
	}
	s.persist(ctx)
	return s.cart.Summary(), nil
}

// Remove drops the line for id; removing an absent line changes nothing
func (s *CartService) Remove(ctx context.Context, id int64) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(id)
	s.persist(ctx)
	return s.cart.Summary()
}

// SetQuantity changes the quantity of the line for id
func (s *CartService) SetQuantity(ctx context.Context, id int64, quantity int) (models.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(id, quantity) {
		return s.cart.Summary(), ErrLineNotFound
	}
	s.persist(ctx)
	return s.cart.Summary(), nil
}

// take empties the cart and returns what it held
func (s *CartService) take(ctx context.Context) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := s.cart
	s.cart = cart.Cart{}
	if taken.Len() > 0 {
		s.persist(ctx)
	}
	return taken
}

// persist writes the cart; callers hold s.mu
func (s *CartService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.cart); err != nil {
		s.log.Error("failed to persist cart", "error", err, "lines", s.cart.Len())
	}
}
