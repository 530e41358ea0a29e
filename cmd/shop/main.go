package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"apex-store/internal/cart"
	"apex-store/internal/catalog"
	"apex-store/internal/checkout"
	"apex-store/internal/config"
	"apex-store/internal/database"
	"apex-store/internal/model"
	"apex-store/internal/order"
	"apex-store/internal/session"
	"apex-store/internal/snapshot"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the composition root: it wires the snapshot backend and the four
// stores, restores persisted state, and reports what came back. The
// presentation layer sits on top of these stores; there is no network
// surface here.
func run() error {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("backend", cfg.Storage.Backend).Msg("starting apex store")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var snap snapshot.Store
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		snap, err = snapshot.NewPostgresStore(ctx, pool, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize snapshot store: %w", err)
		}

	default:
		snap, err = snapshot.NewFileStore(cfg.Storage.Dir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize snapshot store: %w", err)
		}
	}

	// The catalogue always starts from the seed list; cart, session, and
	// orders come back from their snapshots.
	products := catalog.NewStore(catalog.Seed(), logger)
	cartEngine := cart.NewEngine(ctx, snap, logger)
	orders := order.NewLedger(ctx, snap, logger)
	sessions := session.NewStore(ctx, snap, logger)

	delay := time.Duration(cfg.Checkout.DelaySeconds) * time.Second
	processor := checkout.NewProcessor(cartEngine, orders, delay, logger)

	event := logger.Info().
		Int("catalog_products", products.Len()).
		Int("cart_lines", cartEngine.Len()).
		Float64("cart_total", cartEngine.Total()).
		Int("orders", orders.Len()).
		Int("orders_processing", orders.CountByStatus(model.StatusProcessing)).
		Dur("checkout_delay", processor.Delay())

	if user := sessions.Current(); user != nil {
		event = event.Str("session_email", user.Email).Str("session_role", string(user.Role))
	}

	event.Msg("state restored")

	return nil
}
