package store

import (
	"encoding/json"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
)

// ErrEmptyTimeline rejects orders placed without at least one fulfillment
// step.
var ErrEmptyTimeline = errors.New("order timeline must not be empty")

type ordersSnapshot struct {
	Orders []models.Order `json:"orders"`
}

// ActivateTimeline returns a copy of timeline with the entry whose key
// matches activeKey marked current, every entry before it done, and every
// entry after it pending.
//
// When activeKey matches no entry the walk never finds an activation point
// and every entry ends up done. That is surprising but deliberate: an
// unknown status is treated as terminal. Keep the behavior here, in one
// place, so changing it is a one-line edit.
func ActivateTimeline(timeline []models.TimelineEntry, activeKey string) []models.TimelineEntry {
	out := make([]models.TimelineEntry, len(timeline))
	activeFound := false
	for i, step := range timeline {
		switch {
		case activeFound:
			step.Status = models.TimelinePending
		case step.Key == activeKey:
			activeFound = true
			step.Status = models.TimelineCurrent
		default:
			step.Status = models.TimelineDone
		}
		out[i] = step
	}
	return out
}

// OrdersStore owns the history of placed orders, most recent first.
type OrdersStore struct {
	mu       sync.RWMutex
	orders   []models.Order
	storage  Storage
	onChange func(models.Order)
}

func NewOrdersStore(storage Storage) *OrdersStore {
	s := &OrdersStore{storage: storage}
	s.hydrate()
	return s
}

// OnChange registers a single callback invoked (outside the lock) with a
// copy of every order added or updated. Used for websocket broadcasting.
func (s *OrdersStore) OnChange(fn func(models.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *OrdersStore) hydrate() {
	data, ok, err := s.storage.Load(OrdersStoreName)
	if err != nil {
		log.WithError(err).Warn("orders store: failed to load snapshot, starting empty")
		return
	}
	if !ok {
		return
	}
	var snap ordersSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.WithError(err).Warn("orders store: corrupt snapshot, starting empty")
		return
	}
	s.orders = snap.Orders
}

// AddOrder normalizes the order's timeline (first step current, the rest
// pending) and prepends it to the history. Returns the stored order.
func (s *OrdersStore) AddOrder(order models.Order) (models.Order, error) {
	if len(order.Timeline) == 0 {
		return models.Order{}, ErrEmptyTimeline
	}
	order.Timeline = ActivateTimeline(order.Timeline, order.Timeline[0].Key)

	s.mu.Lock()
	s.orders = append([]models.Order{order}, s.orders...)
	notify := s.onChange
	data := s.encodeLocked()
	s.mu.Unlock()

	s.persist(data)
	if notify != nil {
		notify(cloneOrder(order))
	}
	return order, nil
}

// UpdateStatus sets the order's status label and recomputes its timeline,
// either through the supplied updater (which replaces the timeline
// wholesale) or by activating the entry whose key equals status. Unknown
// ids are a no-op.
func (s *OrdersStore) UpdateStatus(id, status string, updater func([]models.TimelineEntry) []models.TimelineEntry) {
	s.mu.Lock()
	var updated *models.Order
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if updater != nil {
			s.orders[i].Timeline = updater(cloneTimeline(s.orders[i].Timeline))
		} else {
			s.orders[i].Timeline = ActivateTimeline(s.orders[i].Timeline, status)
		}
		s.orders[i].Status = status
		updated = &s.orders[i]
		break
	}
	if updated == nil {
		s.mu.Unlock()
		return
	}
	changed := cloneOrder(*updated)
	notify := s.onChange
	data := s.encodeLocked()
	s.mu.Unlock()

	s.persist(data)
	if notify != nil {
		notify(changed)
	}
}

// ClearOrders empties the history.
func (s *OrdersStore) ClearOrders() {
	s.mu.Lock()
	s.orders = nil
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// Orders returns a copy of the history, most recent first.
func (s *OrdersStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

// Get returns the order with the given id.
func (s *OrdersStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

func (s *OrdersStore) encodeLocked() []byte {
	data, err := json.Marshal(ordersSnapshot{Orders: s.orders})
	if err != nil {
		log.WithError(err).Warn("orders store: failed to encode snapshot")
		return nil
	}
	return data
}

func (s *OrdersStore) persist(data []byte) {
	if data == nil {
		return
	}
	if err := s.storage.Save(OrdersStoreName, data); err != nil {
		log.WithError(err).Warn("orders store: failed to persist snapshot")
	}
}

func cloneTimeline(timeline []models.TimelineEntry) []models.TimelineEntry {
	out := make([]models.TimelineEntry, len(timeline))
	copy(out, timeline)
	return out
}

func cloneOrder(o models.Order) models.Order {
	o.Timeline = cloneTimeline(o.Timeline)
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
