package checkout

import (
	"context"
	"testing"
	"time"

	"apex-store/internal/cart"
	"apex-store/internal/model"
	"apex-store/internal/order"
	"apex-store/internal/snapshot"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T, delay time.Duration) (*Processor, *cart.Engine, *order.Ledger) {
	t.Helper()

	ctx := context.Background()
	snap := snapshot.NewMemoryStore()
	logger := zerolog.Nop()

	cartEngine := cart.NewEngine(ctx, snap, logger)
	orders := order.NewLedger(ctx, snap, logger)
	return NewProcessor(cartEngine, orders, delay, logger), cartEngine, orders
}

func testCustomer() model.Customer {
	return model.Customer{Name: "Jane Doe", Email: "jane@x.com", Address: "1 Main Street", City: "Springfield"}
}

func TestProcessor_Process(t *testing.T) {
	p, cartEngine, orders := newTestProcessor(t, 10*time.Millisecond)
	ctx := context.Background()

	cartEngine.Add(ctx, model.Product{ID: 1, Price: 189})
	cartEngine.Add(ctx, model.Product{ID: 1, Price: 189})

	placed, err := p.Process(ctx, testCustomer())
	require.NoError(t, err)
	require.NotNil(t, placed)

	assert.Equal(t, model.StatusProcessing, placed.Status)
	assert.Equal(t, 378.0, placed.Total)
	require.Len(t, placed.Items, 1)
	assert.Equal(t, 2, placed.Items[0].Quantity)
	assert.Equal(t, testCustomer(), placed.Customer)

	// Cart is cleared, ledger holds the order
	assert.Empty(t, cartEngine.Lines())
	require.Len(t, orders.List(), 1)
	assert.Equal(t, placed.ID, orders.List()[0].ID)
}

func TestProcessor_Process_EmptyCart(t *testing.T) {
	p, _, orders := newTestProcessor(t, time.Millisecond)

	placed, err := p.Process(context.Background(), testCustomer())

	assert.Nil(t, placed)
	assert.ErrorIs(t, err, model.ErrEmptyCart)
	assert.Empty(t, orders.List())
}

func TestProcessor_Process_CancelledBeforePayment(t *testing.T) {
	p, cartEngine, orders := newTestProcessor(t, time.Hour)

	cartEngine.Add(context.Background(), model.Product{ID: 1, Price: 189})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	placed, err := p.Process(ctx, testCustomer())

	assert.Nil(t, placed)
	assert.ErrorIs(t, err, context.Canceled)

	// Nothing was recorded and the cart is untouched
	assert.Empty(t, orders.List())
	assert.Len(t, cartEngine.Lines(), 1)
}

func TestProcessor_Process_CapturesCartBeforeDelay(t *testing.T) {
	p, cartEngine, orders := newTestProcessor(t, 50*time.Millisecond)
	ctx := context.Background()

	cartEngine.Add(ctx, model.Product{ID: 1, Price: 100})

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Mutate the live cart while the payment timer runs
		time.Sleep(10 * time.Millisecond)
		cartEngine.Add(ctx, model.Product{ID: 2, Price: 999})
	}()

	placed, err := p.Process(ctx, testCustomer())
	<-done

	require.NoError(t, err)
	require.Len(t, placed.Items, 1, "order holds the cart as captured at checkout")
	assert.Equal(t, 100.0, placed.Total)
	assert.Equal(t, placed.Items, orders.List()[0].Items)
}

func TestNewProcessor_Delay(t *testing.T) {
	// The configured delay is what runs; only a negative value falls back
	// to the default.
	p, _, _ := newTestProcessor(t, 5*time.Second)
	assert.Equal(t, 5*time.Second, p.Delay())

	p, _, _ = newTestProcessor(t, -1)
	assert.Equal(t, DefaultDelay, p.Delay())
}

func TestNewProcessor_ZeroDelayIsHonoured(t *testing.T) {
	p, cartEngine, orders := newTestProcessor(t, 0)
	ctx := context.Background()

	assert.Equal(t, time.Duration(0), p.Delay())

	cartEngine.Add(ctx, model.Product{ID: 1, Price: 189})

	placed, err := p.Process(ctx, testCustomer())
	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Len(t, orders.List(), 1)
	assert.Empty(t, cartEngine.Lines())
}
