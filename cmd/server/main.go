package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/cart"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/menu"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/storage"
	_ "github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/storage/sqlite"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/internal/telemetry"
	"github.com/Lixing-Zhang/kart-challenge/restaurant-menu/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting restaurant menu server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"storage_driver", cfg.Storage.Driver,
	)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	// Load the menu; an unreadable source leaves the menu empty
	log.Info("loading menu...", "sources", cfg.Menu.Sources)
	source := menu.NewSource(cfg.Menu.Sources,
		menu.WithTimeout(cfg.Menu.FetchTimeout),
		menu.WithLogger(log),
	)
	items := source.Load(ctx)
	if len(items) == 0 {
		log.Warn("menu is empty")
	} else {
		log.Info("menu loaded successfully", "items", len(items))
	}

	// Open cart storage
	kv, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	menuRepo := repository.NewInMemoryMenuRepository(items)

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	cartService := service.NewCartService(cart.NewStore(kv, cfg.Storage.CartKey, log), menuRepo, log)
	cartService.Load(ctx)
	orderService := service.NewOrderService(cartService, log)

	// Initialize handlers
	router := newRouter(cfg, log, routes{
		health: handlers.NewHealthHandler(log, len(items)),
		menu:   handlers.NewMenuHandler(menuService, log),
		cart:   handlers.NewCartHandler(cartService, orderService, log),
	})

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	exitCode := 0
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		exitCode = 1
	}
	if err := storage.Close(kv); err != nil {
		log.Error("failed to close storage", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("failed to flush traces", "error", err)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	log.Info("server stopped gracefully")
}
