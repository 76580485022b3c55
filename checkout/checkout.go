package checkout

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/location"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/metrics"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

var (
	// ErrEmptyCart rejects checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutInFlight rejects a second place-order while one is processing.
	ErrCheckoutInFlight = errors.New("checkout already in progress")
)

// DeliveryFee is the flat fee charged on every non-empty order.
const DeliveryFee = 0.5

// Service performs the checkout operation: it turns the current cart plus
// the confirmed delivery location into a new order, then clears the cart.
// The cart is only cleared after the order is in the orders store, so a
// failure never loses a cart without a matching order.
type Service struct {
	cart       *store.CartStore
	orders     *store.OrdersStore
	loc        *location.Store
	delay      time.Duration
	processing atomic.Bool
	now        func() time.Time
}

// NewService wires the three stores together. delay simulates the payment
// round trip; the simulated payment always succeeds.
func NewService(cart *store.CartStore, orders *store.OrdersStore, loc *location.Store, delay time.Duration) *Service {
	return &Service{cart: cart, orders: orders, loc: loc, delay: delay, now: time.Now}
}

// PlaceOrder runs the checkout. Only one checkout may be in flight at a
// time; a concurrent call returns ErrCheckoutInFlight.
func (s *Service) PlaceOrder(ctx context.Context) (models.Order, error) {
	if !s.processing.CompareAndSwap(false, true) {
		return models.Order{}, ErrCheckoutInFlight
	}
	defer s.processing.Store(false)

	cart := s.cart.Snapshot()
	if len(cart.CartItems) == 0 {
		metrics.OrdersTotal.WithLabelValues("empty_cart").Inc()
		return models.Order{}, ErrEmptyCart
	}

	// Simulated payment. No failure branch is modeled.
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return models.Order{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	order := buildOrder(cart, s.loc.Address(), s.now().UnixMilli())
	placed, err := s.orders.AddOrder(order)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("failed").Inc()
		return models.Order{}, err
	}
	s.cart.ClearCart()
	metrics.OrdersTotal.WithLabelValues("placed").Inc()

	log.WithFields(log.Fields{
		"order_id": placed.ID,
		"items":    len(placed.Items),
		"total":    placed.Total,
	}).Info("Order placed")
	return placed, nil
}

// buildOrder snapshots the cart into an immutable order record with the
// default four-step timeline.
func buildOrder(cart models.Cart, address string, now int64) models.Order {
	var subtotal float64
	items := make([]models.OrderItem, 0, len(cart.CartItems))
	for _, c := range cart.CartItems {
		price := models.ResolvePrice(c.Item)
		subtotal += price * float64(c.Quantity)
		items = append(items, models.OrderItem{
			ID:       c.Item.ID,
			Name:     c.Item.Name,
			Price:    price,
			Quantity: c.Quantity,
			Note:     c.Note,
			Image:    c.Item.Image,
		})
	}
	subtotal = models.Round3(subtotal)

	return models.Order{
		ID:          "ord-" + strconv.FormatInt(now, 10),
		OrderNumber: orderNumber(now),
		Status:      "Order placed",
		CreatedAt:   now,
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Total:       models.Round3(subtotal + DeliveryFee),
		Note:        cart.OrderNote,
		Address:     address,
		Items:       items,
		Timeline:    DefaultTimeline(now),
	}
}

// orderNumber derives the short display code from the creation timestamp.
func orderNumber(now int64) string {
	ms := strconv.FormatInt(now, 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "#KM" + ms
}

// DefaultTimeline is the fulfillment timeline every new order starts with.
// Only the placed step carries a timestamp.
func DefaultTimeline(now int64) []models.TimelineEntry {
	return []models.TimelineEntry{
		{Key: "placed", Label: "Order placed", At: now, Status: models.TimelineCurrent},
		{Key: "preparing", Label: "Preparing order", Status: models.TimelinePending},
		{Key: "on-the-way", Label: "Driver on the way", Status: models.TimelinePending},
		{Key: "delivered", Label: "Delivered", Status: models.TimelinePending},
	}
}
