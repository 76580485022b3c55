package store

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
)

// cartSnapshot is the persisted portion of the cart state. Selected is
// deliberately excluded: it only matters to the detail view of the running
// session.
type cartSnapshot struct {
	CartItems []models.CartEntry `json:"cartItems"`
	OrderNote string             `json:"orderNote"`
}

// CartStore owns the shopping cart and the currently selected catalog item.
// All mutations clamp instead of failing; lookups that miss are silent
// no-ops. Every completed mutation persists a snapshot through the storage
// port outside the lock, so reads never wait on persistence I/O.
type CartStore struct {
	mu      sync.RWMutex
	cart    models.Cart
	storage Storage
}

func NewCartStore(storage Storage) *CartStore {
	s := &CartStore{storage: storage}
	s.hydrate()
	return s
}

func (s *CartStore) hydrate() {
	data, ok, err := s.storage.Load(CartStoreName)
	if err != nil {
		log.WithError(err).Warn("cart store: failed to load snapshot, starting empty")
		return
	}
	if !ok {
		return
	}
	var snap cartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.WithError(err).Warn("cart store: corrupt snapshot, starting empty")
		return
	}
	s.cart.CartItems = snap.CartItems
	s.cart.OrderNote = snap.OrderNote
}

// SetSelected replaces the item shown in the detail view. Selected is
// transient, so nothing is persisted.
func (s *CartStore) SetSelected(item *models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Selected = item
}

// AddToCart adds quantity of item to the cart, merging with an existing
// entry for the same item id. Quantity is floored at 1. A nil note leaves
// an existing entry's note untouched; a non-nil note replaces it. New
// entries append at the end, preserving insertion order.
func (s *CartStore) AddToCart(item models.Item, quantity int, note *string) {
	s.mu.Lock()
	for i := range s.cart.CartItems {
		if s.cart.CartItems[i].Item.ID != item.ID {
			continue
		}
		q := s.cart.CartItems[i].Quantity + quantity
		if q < 1 {
			q = 1
		}
		s.cart.CartItems[i].Quantity = q
		if note != nil {
			s.cart.CartItems[i].Note = *note
		}
		data := s.encodeLocked()
		s.mu.Unlock()
		s.persist(data)
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	entry := models.CartEntry{Item: item, Quantity: quantity}
	if note != nil {
		entry.Note = *note
	}
	s.cart.CartItems = append(s.cart.CartItems, entry)
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// UpdateQuantity sets the entry's quantity to max(0, quantity), removing
// the entry entirely when the result is 0. Unknown ids are a no-op.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	s.mu.Lock()
	changed := false
	for i := range s.cart.CartItems {
		if s.cart.CartItems[i].Item.ID != id {
			continue
		}
		if quantity == 0 {
			s.cart.CartItems = append(s.cart.CartItems[:i], s.cart.CartItems[i+1:]...)
		} else {
			s.cart.CartItems[i].Quantity = quantity
		}
		changed = true
		break
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// UpdateNote replaces the note on the matching entry. Unknown ids are a
// no-op.
func (s *CartStore) UpdateNote(id, note string) {
	s.mu.Lock()
	changed := false
	for i := range s.cart.CartItems {
		if s.cart.CartItems[i].Item.ID == id {
			s.cart.CartItems[i].Note = note
			changed = true
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// ClearCart empties the cart, resets the order note, and drops the
// selection. Called after checkout and on logout.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	s.cart = models.Cart{}
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// SetOrderNote replaces the order-level free-text note.
func (s *CartStore) SetOrderNote(note string) {
	s.mu.Lock()
	s.cart.OrderNote = note
	data := s.encodeLocked()
	s.mu.Unlock()
	s.persist(data)
}

// Snapshot returns a copy of the full cart aggregate.
func (s *CartStore) Snapshot() models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := models.Cart{OrderNote: s.cart.OrderNote}
	if s.cart.Selected != nil {
		sel := *s.cart.Selected
		out.Selected = &sel
	}
	out.CartItems = make([]models.CartEntry, len(s.cart.CartItems))
	copy(out.CartItems, s.cart.CartItems)
	return out
}

func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.TotalItems()
}

func (s *CartStore) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.CartTotal()
}

func (s *CartStore) encodeLocked() []byte {
	data, err := json.Marshal(cartSnapshot{
		CartItems: s.cart.CartItems,
		OrderNote: s.cart.OrderNote,
	})
	if err != nil {
		log.WithError(err).Warn("cart store: failed to encode snapshot")
		return nil
	}
	return data
}

func (s *CartStore) persist(data []byte) {
	if data == nil {
		return
	}
	if err := s.storage.Save(CartStoreName, data); err != nil {
		log.WithError(err).Warn("cart store: failed to persist snapshot")
	}
}
