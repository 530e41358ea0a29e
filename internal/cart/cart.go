// Package cart implements the shopping cart: one line per product id, a
// quantity floor of 1, and a subtotal recomputed on every read.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"apex-store/internal/model"
	"apex-store/internal/snapshot"

	"github.com/rs/zerolog"
)

// Engine holds the cart lines and the cart-open flag the presentation layer
// watches to slide its drawer in. Every mutation writes the full line list
// back to the snapshot store; snapshot write failures are logged and never
// surfaced to the caller.
type Engine struct {
	mu     sync.Mutex
	lines  []model.CartLine
	open   bool
	snap   snapshot.Store
	logger zerolog.Logger
}

// NewEngine creates a cart engine restored from its snapshot. An absent or
// malformed snapshot yields an empty cart, never an error.
func NewEngine(ctx context.Context, snap snapshot.Store, logger zerolog.Logger) *Engine {
	e := &Engine{
		snap:   snap,
		logger: logger.With().Str("store", "cart").Logger(),
	}

	data, err := snap.Load(ctx, snapshot.KeyCart)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to load cart snapshot, starting empty")
		return e
	}
	if data == nil {
		return e
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		e.logger.Warn().Err(err).Msg("malformed cart snapshot, starting empty")
		return e
	}

	e.lines = lines
	e.logger.Debug().Int("lines", len(lines)).Msg("cart restored from snapshot")

	return e
}

// Add puts one unit of the product in the cart: an existing line for the
// same product id has its quantity incremented, otherwise a new line with
// quantity 1 is appended. Adding also flips the cart-open flag on.
func (e *Engine) Add(ctx context.Context, p model.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.open = true

	for i := range e.lines {
		if e.lines[i].ID == p.ID {
			e.lines[i].Quantity++
			e.persist(ctx)
			return
		}
	}

	e.lines = append(e.lines, model.CartLine{Product: p.Clone(), Quantity: 1})
	e.persist(ctx)
}

// Remove deletes the line for the given product id. Nothing happens when no
// line matches.
func (e *Engine) Remove(ctx context.Context, productID int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the line for the given product id.
// A quantity below 1 leaves the cart untouched: the line is neither removed
// nor clamped, so Remove is the only way a line leaves the cart.
func (e *Engine) UpdateQuantity(ctx context.Context, productID, quantity int) {
	if quantity < 1 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == productID {
			e.lines[i].Quantity = quantity
			e.persist(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lines = nil
	e.persist(ctx)
}

// Lines returns a copy of the current cart lines in insertion order.
func (e *Engine) Lines() []model.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()

	return model.CloneLines(e.lines)
}

// Total returns the cart subtotal, recomputed from the current lines on
// every call.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total float64
	for _, l := range e.lines {
		total += l.Price * float64(l.Quantity)
	}

	return total
}

// Len returns the number of cart lines.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.lines)
}

// IsOpen reports the cart-open presentation flag.
func (e *Engine) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.open
}

// SetOpen sets the cart-open presentation flag. The flag is UI state and is
// not persisted.
func (e *Engine) SetOpen(open bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.open = open
}

// persist writes the full line list under the cart key. Callers hold the
// mutex.
func (e *Engine) persist(ctx context.Context) {
	data, err := json.Marshal(e.lines)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to marshal cart snapshot")
		return
	}

	if err := e.snap.Save(ctx, snapshot.KeyCart, data); err != nil {
		e.logger.Error().Err(err).Msg("failed to write cart snapshot")
	}
}
