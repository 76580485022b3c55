package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/catalog"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/checkout"
	orderControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/order"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/location"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

// Deps carries every wired collaborator the route groups need. Stores are
// dependency-injected rather than package globals so the checkout coupling
// (auth→cart, cart+location→orders) stays explicit.
type Deps struct {
	Cart      *store.CartStore
	Orders    *store.OrdersStore
	Auth      *store.AuthStore
	Catalog   *catalog.Catalog
	Location  *location.Store
	Geocoder  location.Geocoder
	Suggester *location.Suggester
	Recent    *location.RecentSearches
	Checkout  *checkout.Service
	Hub       *orderControllers.Hub
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public catalog + location lookups
	SetupCatalogRoutes(r, deps)
	SetupLocationRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Order routes
	SetupOrderRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
