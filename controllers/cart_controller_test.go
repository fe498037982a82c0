package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kotibus/models"
)

func TestAddUnknownProductReturns404(t *testing.T) {
	router, _ := setupRouter(t)
	token := userToken(t, "u1", "Asha", "asha@example.com")

	w := doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 999, Size: "M"})
	assert.Equal(t, 404, w.Code)
}

func TestAddInvalidSizeRejected(t *testing.T) {
	router, _ := setupRouter(t)
	token := userToken(t, "u1", "Asha", "asha@example.com")

	w := doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "XXXL"})
	assert.Equal(t, 400, w.Code)

	// Sizeless products take only the empty size.
	w = doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 3, Size: "M"})
	assert.Equal(t, 400, w.Code)
	w = doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 3})
	assert.Equal(t, 200, w.Code)
}

func TestAddSameProductTwiceMergesLine(t *testing.T) {
	router, stores := setupRouter(t)
	token := userToken(t, "u1", "Asha", "asha@example.com")

	w := doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "M"})
	require.Equal(t, 200, w.Code)
	w = doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "M", Quantity: 2})
	require.Equal(t, 200, w.Code)

	cart, found := stores.Carts.Get("u1")
	require.True(t, found)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// A different size gets its own line.
	w = doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "L"})
	require.Equal(t, 200, w.Code)
	cart, _ = stores.Carts.Get("u1")
	assert.Len(t, cart.Items, 2)
}

func TestCartRequiresSession(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, "GET", "/cart", "", nil)
	assert.Equal(t, 401, w.Code)
}

func TestQuantityControls(t *testing.T) {
	router, _ := setupRouter(t)
	token := userToken(t, "u1", "Asha", "asha@example.com")

	doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "M"})

	w := doJSON(router, "PATCH", "/cart/items/0", token, models.UpdateQuantityRequest{Delta: 2})
	require.Equal(t, 200, w.Code)
	summary := cartSummary(t, decodeBody(t, w))
	assert.EqualValues(t, 3, summary["item_count"])

	// Decrement below 1 is a no-op.
	doJSON(router, "PATCH", "/cart/items/0", token, models.UpdateQuantityRequest{Delta: -2})
	w = doJSON(router, "PATCH", "/cart/items/0", token, models.UpdateQuantityRequest{Delta: -5})
	require.Equal(t, 200, w.Code)
	summary = cartSummary(t, decodeBody(t, w))
	assert.EqualValues(t, 1, summary["item_count"])

	w = doJSON(router, "PATCH", "/cart/items/7", token, models.UpdateQuantityRequest{Delta: 1})
	assert.Equal(t, 404, w.Code)
}

func TestRemoveItemAndEmptyCartState(t *testing.T) {
	router, stores := setupRouter(t)
	token := userToken(t, "u1", "Asha", "asha@example.com")

	doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "M"})

	w := doJSON(router, "DELETE", "/cart/items/0", token, nil)
	require.Equal(t, 200, w.Code)
	summary := cartSummary(t, decodeBody(t, w))
	assert.EqualValues(t, 0, summary["item_count"])

	// Emptied, but the cart record still exists.
	cart, found := stores.Carts.Get("u1")
	assert.True(t, found)
	assert.Empty(t, cart.Items)

	w = doJSON(router, "DELETE", "/cart/items/0", token, nil)
	assert.Equal(t, 404, w.Code)
}

func TestSummaryTotalsAuthenticated(t *testing.T) {
	router, _ := setupRouter(t)
	token := userToken(t, "u1", "Asha", "asha@example.com")

	doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "M", Quantity: 2})

	w := doJSON(router, "GET", "/cart", token, nil)
	require.Equal(t, 200, w.Code)

	summary := cartSummary(t, decodeBody(t, w))
	assert.EqualValues(t, 2400, summary["subtotal"])
	assert.EqualValues(t, 120, summary["tax"])
	assert.EqualValues(t, 0, summary["shipping"])
	assert.EqualValues(t, 2520, summary["total"])
}

func TestSummaryTotalsGuestSurcharge(t *testing.T) {
	router, _ := setupRouter(t)
	token := guestToken(t, "guest_abc")

	doJSON(router, "POST", "/cart/items", token, models.AddCartItemRequest{ProductID: 1, Size: "M", Quantity: 2})

	w := doJSON(router, "GET", "/cart", token, nil)
	require.Equal(t, 200, w.Code)

	summary := cartSummary(t, decodeBody(t, w))
	assert.EqualValues(t, 150, summary["shipping"])
	assert.EqualValues(t, 2670, summary["total"])
}
