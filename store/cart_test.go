package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func item(id string, price float64) models.Item {
	return models.Item{ID: id, Name: "item " + id, Price: fptr(price)}
}

func TestAddToCartDistinctItems(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())

	s.AddToCart(item("a", 0.5), 2, nil)
	s.AddToCart(item("b", 0.2), 1, nil)
	s.AddToCart(item("c", 1.0), 3, nil)

	snap := s.Snapshot()
	require.Len(t, snap.CartItems, 3)
	assert.Equal(t, 6, s.TotalItems())
	// insertion order preserved
	assert.Equal(t, "a", snap.CartItems[0].Item.ID)
	assert.Equal(t, "c", snap.CartItems[2].Item.ID)
}

func TestAddToCartMergesQuantities(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())

	s.AddToCart(item("a", 0.5), 2, nil)
	s.AddToCart(item("a", 0.5), 3, nil)

	snap := s.Snapshot()
	require.Len(t, snap.CartItems, 1)
	assert.Equal(t, 5, snap.CartItems[0].Quantity)
}

func TestAddToCartNoteRules(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())

	s.AddToCart(item("a", 0.5), 1, sptr("extra sauce"))
	s.AddToCart(item("a", 0.5), 1, nil)
	assert.Equal(t, "extra sauce", s.Snapshot().CartItems[0].Note, "nil note must not clobber an existing note")

	s.AddToCart(item("a", 0.5), 1, sptr("no onions"))
	assert.Equal(t, "no onions", s.Snapshot().CartItems[0].Note)
}

func TestAddToCartClampsQuantity(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())

	s.AddToCart(item("a", 0.5), -4, nil)
	require.Len(t, s.Snapshot().CartItems, 1)
	assert.Equal(t, 1, s.Snapshot().CartItems[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())
	s.AddToCart(item("a", 0.5), 2, nil)

	s.UpdateQuantity("a", 7)
	assert.Equal(t, 7, s.Snapshot().CartItems[0].Quantity)

	s.UpdateQuantity("a", 0)
	assert.Empty(t, s.Snapshot().CartItems, "quantity 0 removes the entry")

	// absent id is a silent no-op
	s.UpdateQuantity("a", 0)
	s.UpdateQuantity("ghost", 5)
	assert.Empty(t, s.Snapshot().CartItems)
}

func TestUpdateNote(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())
	s.AddToCart(item("a", 0.5), 1, nil)

	s.UpdateNote("a", "well done")
	assert.Equal(t, "well done", s.Snapshot().CartItems[0].Note)

	s.UpdateNote("ghost", "ignored")
	require.Len(t, s.Snapshot().CartItems, 1)
}

func TestClearCart(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())
	sel := item("a", 0.5)
	s.SetSelected(&sel)
	s.AddToCart(sel, 2, nil)
	s.SetOrderNote("ring the bell")

	s.ClearCart()

	snap := s.Snapshot()
	assert.Nil(t, snap.Selected)
	assert.Empty(t, snap.CartItems)
	assert.Equal(t, "", snap.OrderNote)
}

func TestCartTotalTracksCollection(t *testing.T) {
	s := NewCartStore(NewMemoryStorage())
	s.AddToCart(item("a", 0.5), 2, nil)
	s.AddToCart(item("b", 0.2), 1, nil)
	assert.Equal(t, 1.200, s.CartTotal())

	s.UpdateQuantity("a", 1)
	assert.Equal(t, 0.700, s.CartTotal())
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	storage := NewMemoryStorage()

	s := NewCartStore(storage)
	sel := item("x", 9.9)
	s.SetSelected(&sel)
	s.AddToCart(item("a", 0.5), 2, sptr("spicy"))
	s.SetOrderNote("leave at door")

	restored := NewCartStore(storage)
	snap := restored.Snapshot()
	require.Len(t, snap.CartItems, 1)
	assert.Equal(t, "a", snap.CartItems[0].Item.ID)
	assert.Equal(t, 2, snap.CartItems[0].Quantity)
	assert.Equal(t, "spicy", snap.CartItems[0].Note)
	assert.Equal(t, "leave at door", snap.OrderNote)
	assert.Nil(t, snap.Selected, "selection is transient and never persisted")
}

func TestCartHydrateToleratesCorruptSnapshot(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(CartStoreName, []byte("{not json")))

	s := NewCartStore(storage)
	assert.Empty(t, s.Snapshot().CartItems)
	assert.Equal(t, 0, s.TotalItems())
}
