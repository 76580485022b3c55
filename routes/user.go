package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/auth"
	cartControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/cart"
	locationControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/location"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Session ────────────────
		userGroup.POST("/logout", authControllers.Logout(deps.Auth))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Cart))                      // GET /user/cart
			cartGroup.POST("", cartControllers.AddCartItem(deps.Cart, deps.Catalog))   // POST /user/cart
			cartGroup.PUT("/note", cartControllers.SetOrderNote(deps.Cart))            // PUT /user/cart/note
			cartGroup.PUT("/selected", cartControllers.SetSelected(deps.Cart, deps.Catalog))
			cartGroup.PUT("/:item_id", cartControllers.UpdateQuantity(deps.Cart))      // PUT /user/cart/:item_id
			cartGroup.PUT("/:item_id/note", cartControllers.UpdateItemNote(deps.Cart)) // PUT /user/cart/:item_id/note
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(deps.Cart))   // DELETE /user/cart/:item_id
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart))                 // DELETE /user/cart
		}

		// ──────────────── Delivery Location ────────────────
		userGroup.GET("/location", locationControllers.GetLocation(deps.Location))
		userGroup.POST("/location", locationControllers.SetLocation(deps.Location, deps.Geocoder))
	}
}
