// Package checkout turns the current cart into an order after a simulated
// payment delay.
package checkout

import (
	"context"
	"time"

	"apex-store/internal/cart"
	"apex-store/internal/model"
	"apex-store/internal/order"

	"github.com/rs/zerolog"
)

// DefaultDelay matches the scripted payment-processing pause in the
// original storefront.
const DefaultDelay = 2 * time.Second

// Processor runs the checkout flow: capture the cart, wait the payment
// delay, record the order, clear the cart. The delay is a scripted timer,
// not a retryable call; cancelling the context before it fires means no
// order is created.
type Processor struct {
	cart   *cart.Engine
	orders *order.Ledger
	delay  time.Duration
	logger zerolog.Logger
}

// NewProcessor creates a checkout processor. A negative delay falls back to
// DefaultDelay; zero is honoured and means the payment completes without a
// simulated pause.
func NewProcessor(cartEngine *cart.Engine, orders *order.Ledger, delay time.Duration, logger zerolog.Logger) *Processor {
	if delay < 0 {
		delay = DefaultDelay
	}

	return &Processor{
		cart:   cartEngine,
		orders: orders,
		delay:  delay,
		logger: logger.With().Str("component", "checkout").Logger(),
	}
}

// Delay returns the simulated payment delay the processor runs with.
func (p *Processor) Delay() time.Duration {
	return p.delay
}

// Process completes a purchase for the current cart contents. The lines and
// total are captured before the payment delay, so cart mutations made while
// the timer runs do not leak into the order. On success the cart is cleared
// and the recorded order returned.
func (p *Processor) Process(ctx context.Context, customer model.Customer) (*model.Order, error) {
	lines := p.cart.Lines()
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}
	total := p.cart.Total()

	p.logger.Debug().
		Int("line_count", len(lines)).
		Float64("total", total).
		Msg("processing payment")

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.logger.Warn().Err(ctx.Err()).Msg("checkout cancelled before payment completed")
		return nil, ctx.Err()
	case <-timer.C:
	}

	o := p.orders.Add(ctx, lines, total, customer)
	p.cart.Clear(ctx)

	p.logger.Info().
		Str("order_id", o.ID).
		Float64("total", o.Total).
		Msg("checkout completed")

	return &o, nil
}
