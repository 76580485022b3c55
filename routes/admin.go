package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/order"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.Orders))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.Orders))
			orderAdmin.DELETE("", orderControllers.ClearOrdersHandler(deps.Orders))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(deps.Orders))
		}
	}
}
