package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/order"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/middleware"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order from the current cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(deps.Checkout))

		// Order history, most recent first
		orders.GET("", orderControllers.GetAllOrdersHandler(deps.Orders))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler(deps.Hub))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.Orders))

		// Advance the fulfillment timeline (e.g. "preparing", "delivered")
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.Orders))
	}
}
