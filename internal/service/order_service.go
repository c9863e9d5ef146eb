package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/models"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// OrderService turns the cart into placed orders
type OrderService struct {
	carts *CartService
	log   *slog.Logger
	now   func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(carts *CartService, log *slog.Logger) *OrderService {
	return &OrderService{
		carts: carts,
		log:   log,
		now:   time.Now,
	}
}

// Checkout places an order for everything in the cart and empties it.
// No payment is taken.
func (s *OrderService) Checkout(ctx context.Context) (*models.Order, error) {
	c := s.carts.take(ctx)
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:       generateOrderID(),
		Lines:    c.Lines(),
		Count:    c.Count(),
		Total:    c.Total(),
		PlacedAt: s.now().UTC(),
	}

	s.log.Info("order placed", "order_id", order.ID, "count", order.Count, "total", order.Total)
	return order, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
