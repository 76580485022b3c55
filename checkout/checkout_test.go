package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/location"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

func fptr(v float64) *float64 { return &v }

func newFixture(delay time.Duration) (*Service, *store.CartStore, *store.OrdersStore, *location.Store) {
	storage := store.NewMemoryStorage()
	cart := store.NewCartStore(storage)
	orders := store.NewOrdersStore(storage)
	loc := location.NewStore()
	return NewService(cart, orders, loc, delay), cart, orders, loc
}

func TestPlaceOrder(t *testing.T) {
	svc, cart, orders, loc := newFixture(0)
	loc.SetLocation(location.Region{Latitude: 29.2289, Longitude: 47.978}, "Block 4, Salmiya")

	cart.AddToCart(models.Item{ID: "a", Name: "Zaatar Saj", Price: fptr(0.5), Image: "saj.png"}, 2, nil)
	cart.AddToCart(models.Item{ID: "b", Name: "Cheddar Sauce", Price: fptr(0.2)}, 1, nil)
	cart.SetOrderNote("extra napkins")

	order, err := svc.PlaceOrder(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.200, order.Subtotal)
	assert.Equal(t, 0.5, order.DeliveryFee)
	assert.Equal(t, 1.700, order.Total)
	assert.Equal(t, "Order placed", order.Status)
	assert.Equal(t, "extra napkins", order.Note)
	assert.Equal(t, "Block 4, Salmiya", order.Address)
	assert.Contains(t, order.ID, "ord-")
	assert.Contains(t, order.OrderNumber, "#KM")

	require.Len(t, order.Timeline, 4)
	assert.Equal(t, "placed", order.Timeline[0].Key)
	assert.Equal(t, models.TimelineCurrent, order.Timeline[0].Status)
	assert.NotZero(t, order.Timeline[0].At)
	for _, step := range order.Timeline[1:] {
		assert.Equal(t, models.TimelinePending, step.Status)
	}

	// order is in the store and the cart is cleared, in that order
	stored, ok := orders.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.Total, stored.Total)
	assert.Empty(t, cart.Snapshot().CartItems)
	assert.Equal(t, "", cart.Snapshot().OrderNote)
}

func TestPlaceOrderUsesPriceFallback(t *testing.T) {
	svc, cart, _, _ := newFixture(0)
	// no explicit price: the fee string is the price source
	cart.AddToCart(models.Item{ID: "r2", Name: "Madhbi Najd", Fee: "KWD 0.500"}, 2, nil)

	order, err := svc.PlaceOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.000, order.Subtotal)
	assert.Equal(t, 0.5, order.Items[0].Price)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _, orders, _ := newFixture(0)

	_, err := svc.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.Orders(), "a rejected checkout must not create an order")
}

func TestPlaceOrderSnapshotIsIndependent(t *testing.T) {
	svc, cart, orders, _ := newFixture(0)
	cart.AddToCart(models.Item{ID: "a", Name: "Hummus Bowl", Price: fptr(0.5)}, 1, nil)

	order, err := svc.PlaceOrder(context.Background())
	require.NoError(t, err)

	// later cart activity must not leak into the placed order
	cart.AddToCart(models.Item{ID: "a", Name: "Hummus Bowl", Price: fptr(9.9)}, 5, nil)

	stored, _ := orders.Get(order.ID)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.Equal(t, 0.5, stored.Items[0].Price)
}

func TestPlaceOrderSingleFlight(t *testing.T) {
	svc, cart, orders, _ := newFixture(50 * time.Millisecond)
	cart.AddToCart(models.Item{ID: "a", Name: "Mixed Grill", Price: fptr(2.75)}, 1, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(context.Background())
		}(i)
	}
	wg.Wait()

	inFlight := 0
	for _, err := range errs {
		if err == ErrCheckoutInFlight {
			inFlight++
		}
	}
	assert.Equal(t, 1, inFlight, "exactly one of the two submissions is rejected")
	assert.Len(t, orders.Orders(), 1, "only one order is placed")
}

func TestPlaceOrderCancelledContext(t *testing.T) {
	svc, cart, orders, _ := newFixture(time.Second)
	cart.AddToCart(models.Item{ID: "a", Name: "Mixed Grill", Price: fptr(2.75)}, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PlaceOrder(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, orders.Orders())
	assert.Len(t, cart.Snapshot().CartItems, 1, "cart is untouched when checkout does not complete")
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "#KM123456", orderNumber(1723456123456))
	assert.Equal(t, "#KM123", orderNumber(123))
}
