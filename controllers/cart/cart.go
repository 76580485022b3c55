package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/catalog"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

type AddCartItemInput struct {
	ItemID   string  `json:"item_id" binding:"required"`
	Quantity int     `json:"quantity"`
	Note     *string `json:"note"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

type UpdateNoteInput struct {
	Note string `json:"note"`
}

type SetSelectedInput struct {
	ItemID *string `json:"item_id"`
}

// GET /user/cart
func GetCart(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := cart.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"selected":   snap.Selected,
			"cartItems":  snap.CartItems,
			"orderNote":  snap.OrderNote,
			"totalItems": snap.TotalItems(),
			"cartTotal":  snap.CartTotal(),
		})
	}
}

// POST /user/cart
func AddCartItem(cart *store.CartStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, ok := cat.ItemByID(input.ItemID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}

		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}
		cart.AddToCart(item, quantity, input.Note)

		c.JSON(http.StatusCreated, gin.H{
			"cartItems":  cart.Snapshot().CartItems,
			"totalItems": cart.TotalItems(),
			"cartTotal":  cart.CartTotal(),
		})
	}
}

// PUT /user/cart/:item_id
func UpdateQuantity(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart.UpdateQuantity(c.Param("item_id"), input.Quantity)

		c.JSON(http.StatusOK, gin.H{
			"cartItems":  cart.Snapshot().CartItems,
			"totalItems": cart.TotalItems(),
			"cartTotal":  cart.CartTotal(),
		})
	}
}

// PUT /user/cart/:item_id/note
func UpdateItemNote(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateNoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart.UpdateNote(c.Param("item_id"), input.Note)
		c.JSON(http.StatusOK, gin.H{"cartItems": cart.Snapshot().CartItems})
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")

		found := false
		for _, e := range cart.Snapshot().CartItems {
			if e.Item.ID == itemID {
				found = true
				break
			}
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		cart.UpdateQuantity(itemID, 0)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// PUT /user/cart/selected
func SetSelected(cart *store.CartStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetSelectedInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.ItemID == nil {
			cart.SetSelected(nil)
			c.JSON(http.StatusOK, gin.H{"selected": nil})
			return
		}

		item, ok := cat.ItemByID(*input.ItemID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}
		cart.SetSelected(&item)
		c.JSON(http.StatusOK, gin.H{"selected": item})
	}
}

// PUT /user/cart/note
func SetOrderNote(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateNoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart.SetOrderNote(input.Note)
		c.JSON(http.StatusOK, gin.H{"orderNote": input.Note})
	}
}
