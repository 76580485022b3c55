package routes

import (
	"github.com/gin-gonic/gin"

	locationControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/location"
)

// SetupLocationRoutes registers the public geocoding endpoints.
func SetupLocationRoutes(r *gin.Engine, deps Deps) {
	locationGroup := r.Group("/location")
	{
		locationGroup.GET("/suggest", locationControllers.Suggest(deps.Suggester))
		locationGroup.GET("/reverse", locationControllers.Reverse(deps.Geocoder))
		locationGroup.GET("/recent", locationControllers.GetRecentSearches(deps.Recent))
		locationGroup.POST("/recent", locationControllers.AddRecentSearch(deps.Recent))
	}
}
