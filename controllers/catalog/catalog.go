package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/catalog"
)

// GET /catalog/categories
func GetCategories(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Categories)
	}
}

// GET /catalog/restaurants
func GetRestaurants(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Restaurants)
	}
}

// GET /catalog/items
func GetMenuItems(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.MenuItems)
	}
}

// GET /catalog/items/:id
func GetItemByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, ok := cat.ItemByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GET /catalog/search?q=...&scope=restaurants|items
func Search(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		scope := catalog.NormalizeScope(c.Query("scope"))

		if scope == catalog.ScopeItems {
			results := cat.SearchItems(query)
			c.JSON(http.StatusOK, gin.H{"scope": scope, "results": results})
			return
		}
		results := cat.SearchRestaurants(query)
		c.JSON(http.StatusOK, gin.H{"scope": scope, "results": results})
	}
}
