package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"apex-store/internal/cart"
	"apex-store/internal/catalog"
	"apex-store/internal/checkout"
	"apex-store/internal/config"
	"apex-store/internal/model"
	"apex-store/internal/order"
	"apex-store/internal/session"
	"apex-store/internal/snapshot"

	"github.com/rs/zerolog"
)

// Seeds demo snapshots by driving the stores through a full shopping
// session: sign in, fill the cart, check out. Run it, then start cmd/shop
// against the same configuration to see the restored state.
func main() {
	ctx := context.Background()
	logger := zerolog.Nop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	snap, err := snapshot.NewFileStore(cfg.Storage.Dir, logger)
	if err != nil {
		log.Fatalf("Failed to create snapshot store: %v", err)
	}

	products := catalog.NewStore(catalog.Seed(), logger)
	cartEngine := cart.NewEngine(ctx, snap, logger)
	orders := order.NewLedger(ctx, snap, logger)
	sessions := session.NewStore(ctx, snap, logger)

	email := "jane@example.com"
	user := sessions.Login(ctx, email, session.RoleForEmail(email))
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)

	runner, _ := products.Get(1)
	watch, _ := products.Get(3)
	cartEngine.Add(ctx, runner)
	cartEngine.Add(ctx, runner)
	cartEngine.Add(ctx, watch)
	fmt.Printf("Cart: %d lines, total %.2f\n", cartEngine.Len(), cartEngine.Total())

	delay := time.Duration(cfg.Checkout.DelaySeconds) * time.Second
	processor := checkout.NewProcessor(cartEngine, orders, delay, logger)
	fmt.Printf("Checking out (simulated payment takes %s)...\n", processor.Delay())

	placed, err := processor.Process(ctx, model.Customer{
		Name:    "Jane Doe",
		Email:   email,
		Address: "1 Demo Street",
		City:    "Springfield",
	})
	if err != nil {
		log.Fatalf("Checkout failed: %v", err)
	}

	// One more open cart left behind for the restart demo
	cartEngine.Add(ctx, watch)

	fmt.Printf("Order %s placed (%s), ledger now holds %d order(s)\n", placed.ID, placed.Status, orders.Len())
	fmt.Printf("Demo snapshots written to %s\n", cfg.Storage.Dir)
}
