package catalog

import (
	"strings"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
)

// SearchScope selects what a query runs against.
type SearchScope string

const (
	ScopeRestaurants SearchScope = "restaurants"
	ScopeItems       SearchScope = "items"
)

// NormalizeScope maps anything that is not "items" to the restaurant scope.
func NormalizeScope(raw string) SearchScope {
	if SearchScope(raw) == ScopeItems {
		return ScopeItems
	}
	return ScopeRestaurants
}

// Catalog is the static, read-only data source the storefront renders. It
// is input to cart operations and is never mutated.
type Catalog struct {
	Categories  []models.Category
	Restaurants []models.Restaurant
	MenuItems   []models.Item
}

// ItemByID looks an orderable item up, checking menu items first and
// falling back to restaurant listings.
func (c *Catalog) ItemByID(id string) (models.Item, bool) {
	for _, it := range c.MenuItems {
		if it.ID == id {
			return it, true
		}
	}
	for _, r := range c.Restaurants {
		if r.ID == id {
			return r.Item(), true
		}
	}
	return models.Item{}, false
}

// SearchRestaurants matches the query against restaurant names and their
// search keywords, case-insensitively. An empty query matches nothing.
func (c *Catalog) SearchRestaurants(query string) []models.Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.Restaurant
	for _, r := range c.Restaurants {
		haystack := strings.ToLower(r.Name + " " + strings.Join(r.Keywords, " "))
		if strings.Contains(haystack, q) {
			out = append(out, r)
		}
	}
	return out
}

// SearchItems matches the query against menu item names. An empty query
// matches nothing.
func (c *Catalog) SearchItems(query string) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.Item
	for _, it := range c.MenuItems {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}
