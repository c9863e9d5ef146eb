package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/cart"

// DefaultKey is the storage key holding the cart snapshot
const DefaultKey = "cart"

// Store persists a cart snapshot under a single key
type Store struct {
	kv  storage.KV
	key string
	log *slog.Logger
}

// NewStore creates a store writing to key in kv; an empty key uses DefaultKey
func NewStore(kv storage.KV, key string, log *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: kv, key: key, log: log}
}

// Load reads the persisted cart. A missing, unreadable or malformed
// snapshot yields an empty cart.
func (s *Store) Load(ctx context.Context) Cart {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "cart.Store.Load")
	defer span.End()

	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("failed to read cart snapshot", "key", s.key, "error", err)
		span.RecordError(err)
		return Cart{}
	}
	if !ok {
		s.log.Debug("no cart snapshot found", "key", s.key)
		return Cart{}
	}

	c, err := Decode(data)
	if err != nil {
		s.log.Warn("discarding malformed cart snapshot", "key", s.key, "error", err)
		span.RecordError(err)
		return Cart{}
	}

	span.SetAttributes(attribute.Int("cart.lines", c.Len()))
	return c
}

// Save writes the full cart snapshot
func (s *Store) Save(ctx context.Context, c Cart) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "cart.Store.Save")
	defer span.End()
	span.SetAttributes(attribute.Int("cart.lines", c.Len()))

	data, err := Encode(c)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := s.kv.Put(ctx, s.key, data); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
