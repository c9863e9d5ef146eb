package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// routes bundles the handlers mounted by newRouter
type routes struct {
	health *handlers.HealthHandler
	menu   *handlers.MenuHandler
	cart   *handlers.CartHandler
}

func newRouter(cfg *config.Config, log *slog.Logger, h routes) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// The static site is served from another origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Menu endpoints
		r.Get("/menu", h.menu.ListItems)
		r.Get("/menu/{itemId}", h.menu.GetItem)
		r.Get("/categories", h.menu.ListCategories)

		// Cart endpoints
		r.Get("/cart", h.cart.GetCart)
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth, log))

			r.Post("/cart/items", h.cart.AddItem)
			r.Put("/cart/items/{itemId}", h.cart.UpdateItem)
			r.Delete("/cart/items/{itemId}", h.cart.RemoveItem)
			r.Post("/cart/checkout", h.cart.Checkout)
		})
	})

	return r
}
