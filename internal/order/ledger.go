// Package order implements the order ledger: an append-only record of
// completed purchases, newest first, mutable only in its status field.
package order

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"apex-store/internal/model"
	"apex-store/internal/snapshot"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Ledger holds the completed orders, most recent first. Orders are never
// deleted. Every mutation writes the full ledger back to the snapshot
// store; write failures are logged and never surfaced to the caller.
type Ledger struct {
	mu     sync.Mutex
	orders []model.Order
	snap   snapshot.Store
	logger zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewLedger creates a ledger restored from its snapshot. An absent or
// malformed snapshot yields an empty ledger, never an error.
func NewLedger(ctx context.Context, snap snapshot.Store, logger zerolog.Logger) *Ledger {
	l := &Ledger{
		snap:   snap,
		logger: logger.With().Str("store", "orders").Logger(),
		now:    time.Now,
		newID:  newOrderID,
	}

	data, err := snap.Load(ctx, snapshot.KeyOrders)
	if err != nil {
		l.logger.Warn().Err(err).Msg("failed to load order snapshot, starting empty")
		return l
	}
	if data == nil {
		return l
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		l.logger.Warn().Err(err).Msg("malformed order snapshot, starting empty")
		return l
	}

	l.orders = orders
	l.logger.Debug().Int("orders", len(orders)).Msg("orders restored from snapshot")

	return l
}

// newOrderID generates a short uppercase order reference.
func newOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:9])
}

// Add records a completed purchase and returns it. The new order gets a
// generated id, the current date, a deep copy of the supplied lines, the
// supplied total and customer, and status Processing. It is prepended:
// listings read newest first.
func (l *Ledger) Add(ctx context.Context, lines []model.CartLine, total float64, customer model.Customer) model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	o := model.Order{
		ID:       l.newID(),
		Date:     l.now().Format("1/2/2006"),
		Customer: customer,
		Items:    model.CloneLines(lines),
		Total:    total,
		Status:   model.StatusProcessing,
	}

	l.orders = append([]model.Order{o}, l.orders...)
	l.persist(ctx)

	l.logger.Info().
		Str("order_id", o.ID).
		Int("item_count", len(o.Items)).
		Float64("total", o.Total).
		Msg("order recorded")

	return o.Clone()
}

// UpdateStatus replaces the status of the matching order. Nothing happens
// when no order matches. Transitions are not constrained: the admin view may
// move an order to any status in any direction.
func (l *Ledger) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			l.persist(ctx)
			l.logger.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
			return
		}
	}
}

// List returns a copy of the ledger, newest order first.
func (l *Ledger) List() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.Clone()
	}

	return out
}

// Len returns the number of recorded orders.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.orders)
}

// CountByStatus returns how many orders currently have the given status.
func (l *Ledger) CountByStatus(status model.OrderStatus) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, o := range l.orders {
		if o.Status == status {
			count++
		}
	}

	return count
}

// ForCustomer returns the orders placed with the given customer email,
// newest first.
func (l *Ledger) ForCustomer(email string) []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []model.Order
	for _, o := range l.orders {
		if o.Customer.Email == email {
			out = append(out, o.Clone())
		}
	}

	return out
}

// persist writes the full ledger under the orders key. Callers hold the
// mutex.
func (l *Ledger) persist(ctx context.Context) {
	data, err := json.Marshal(l.orders)
	if err != nil {
		l.logger.Error().Err(err).Msg("failed to marshal order snapshot")
		return
	}

	if err := l.snap.Save(ctx, snapshot.KeyOrders, data); err != nil {
		l.logger.Error().Err(err).Msg("failed to write order snapshot")
	}
}
