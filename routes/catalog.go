package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/catalog"
)

// SetupCatalogRoutes registers the public, read-only catalog endpoints.
func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/categories", catalogControllers.GetCategories(deps.Catalog))
		catalogGroup.GET("/restaurants", catalogControllers.GetRestaurants(deps.Catalog))
		catalogGroup.GET("/items", catalogControllers.GetMenuItems(deps.Catalog))
		catalogGroup.GET("/items/:id", catalogControllers.GetItemByID(deps.Catalog))
		catalogGroup.GET("/search", catalogControllers.Search(deps.Catalog))
	}
}
