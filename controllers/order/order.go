package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/checkout"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"` // a timeline step key, e.g. "preparing"
}

// POST /orders/place
func PlaceOrderHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.PlaceOrder(c.Request.Context())
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, checkout.ErrCheckoutInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetAllOrdersHandler(orders *store.OrdersStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.Orders())
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(orders *store.OrdersStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, ok := orders.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status
func UpdateOrderStatusHandler(orders *store.OrdersStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, ok := orders.Get(orderID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		orders.UpdateStatus(orderID, req.Status, nil)

		order, _ := orders.Get(orderID)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders (admin)
func ClearOrdersHandler(orders *store.OrdersStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders.ClearOrders()
		c.JSON(http.StatusOK, gin.H{"message": "Orders cleared"})
	}
}
