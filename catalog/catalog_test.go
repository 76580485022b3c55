package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeScope(t *testing.T) {
	assert.Equal(t, ScopeItems, NormalizeScope("items"))
	assert.Equal(t, ScopeRestaurants, NormalizeScope("restaurants"))
	assert.Equal(t, ScopeRestaurants, NormalizeScope(""))
	assert.Equal(t, ScopeRestaurants, NormalizeScope("bogus"))
}

func TestSearchRestaurants(t *testing.T) {
	cat := Default()

	t.Run("matches by name", func(t *testing.T) {
		got := cat.SearchRestaurants("madhbi")
		require.Len(t, got, 1)
		assert.Equal(t, "Madhbi Najd", got[0].Name)
	})

	t.Run("matches by keyword", func(t *testing.T) {
		got := cat.SearchRestaurants("shawarma")
		require.NotEmpty(t, got)
		assert.Equal(t, "Shawarma House", got[0].Name)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		assert.Empty(t, cat.SearchRestaurants(""))
		assert.Empty(t, cat.SearchRestaurants("   "))
	})
}

func TestSearchItems(t *testing.T) {
	cat := Default()

	got := cat.SearchItems("saj")
	require.Len(t, got, 2)
	assert.Empty(t, cat.SearchItems("pizza"))
}

func TestItemByID(t *testing.T) {
	cat := Default()

	item, ok := cat.ItemByID("ym-cheddar")
	require.True(t, ok)
	assert.Equal(t, "Cheddar Sauce", item.Name)

	// restaurant listings are orderable too
	item, ok = cat.ItemByID("2")
	require.True(t, ok)
	assert.Equal(t, "Madhbi Najd", item.Name)
	assert.Equal(t, "KWD 0.500", item.Fee)

	_, ok = cat.ItemByID("ghost")
	assert.False(t, ok)
}
