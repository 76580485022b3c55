package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/catalog"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

func newRouter() (*gin.Engine, *store.CartStore) {
	gin.SetMode(gin.TestMode)
	cart := store.NewCartStore(store.NewMemoryStorage())
	cat := catalog.Default()

	r := gin.New()
	r.GET("/user/cart", GetCart(cart))
	r.POST("/user/cart", AddCartItem(cart, cat))
	r.PUT("/user/cart/:item_id", UpdateQuantity(cart))
	r.DELETE("/user/cart/:item_id", DeleteCartItem(cart))
	r.DELETE("/user/cart", ClearCart(cart))
	return r, cart
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemHandler(t *testing.T) {
	r, cart := newRouter()

	w := doJSON(r, http.MethodPost, "/user/cart", `{"item_id":"ym-cheddar","quantity":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, cart.TotalItems())

	// default quantity is 1
	w = doJSON(r, http.MethodPost, "/user/cart", `{"item_id":"ym-hummus"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestAddCartItemUnknownItem(t *testing.T) {
	r, cart := newRouter()

	w := doJSON(r, http.MethodPost, "/user/cart", `{"item_id":"ghost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, cart.Snapshot().CartItems)
}

func TestGetCartTotals(t *testing.T) {
	r, _ := newRouter()
	doJSON(r, http.MethodPost, "/user/cart", `{"item_id":"ym-cheddar","quantity":2}`) // 0.200 each

	w := doJSON(r, http.MethodGet, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalItems int     `json:"totalItems"`
		CartTotal  float64 `json:"cartTotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, 0.400, resp.CartTotal)
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	r, cart := newRouter()
	doJSON(r, http.MethodPost, "/user/cart", `{"item_id":"ym-cheddar","quantity":2}`)

	w := doJSON(r, http.MethodPut, "/user/cart/ym-cheddar", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Snapshot().CartItems)
}

func TestDeleteCartItem(t *testing.T) {
	r, cart := newRouter()
	doJSON(r, http.MethodPost, "/user/cart", `{"item_id":"ym-cheddar"}`)

	w := doJSON(r, http.MethodDelete, "/user/cart/ym-cheddar", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Snapshot().CartItems)

	w = doJSON(r, http.MethodDelete, "/user/cart/ym-cheddar", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCartHandler(t *testing.T) {
	r, cart := newRouter()
	doJSON(r, http.MethodPost, "/user/cart", `{"item_id":"ym-cheddar","quantity":5}`)

	w := doJSON(r, http.MethodDelete, "/user/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Snapshot().CartItems)
}
