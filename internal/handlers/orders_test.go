package handlers_test

import (
	"net/http"
	"testing"

	"github.com/cartloop-dev/cartloop/internal/models"
	"github.com/cartloop-dev/cartloop/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersAfterSeed(t *testing.T) {
	conn, r := setupTest(t)
	require.NoError(t, seed.Load(conn))

	w := doJSON(t, r, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	decode(t, w, &orders)

	require.Len(t, orders, 4)
	assert.Equal(t, uint(1), orders[0].UserID)
	assert.Equal(t, uint(2), orders[0].ItemID)
	assert.Equal(t, 1, orders[0].Quantity)
}

func TestCreateOrderDanglingReferences(t *testing.T) {
	conn, r := setupTest(t)

	// Empty store: userId 1 and itemId 1 do not exist.
	w := doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"userId":   1,
		"itemId":   1,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, conn.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrder(t *testing.T) {
	conn, r := setupTest(t)
	require.NoError(t, seed.Load(conn))

	w := doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"userId":   2,
		"itemId":   1,
		"quantity": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	decode(t, w, &order)

	assert.NotZero(t, order.ID)
	assert.Equal(t, uint(2), order.UserID)
	assert.Equal(t, 3, order.Quantity)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	conn, r := setupTest(t)
	require.NoError(t, seed.Load(conn))

	for _, quantity := range []int{0, -2} {
		w := doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
			"userId":   1,
			"itemId":   1,
			"quantity": quantity,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestPatchOrderQuantity(t *testing.T) {
	conn, r := setupTest(t)
	require.NoError(t, seed.Load(conn))

	// The body is the bare quantity value.
	w := doJSON(t, r, http.MethodPatch, "/orders/1", 5)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	decode(t, w, &updated)
	assert.Equal(t, 5, updated.Quantity)

	var stored models.Order
	require.NoError(t, conn.First(&stored, 1).Error)
	assert.Equal(t, 5, stored.Quantity)
}

func TestPatchMissingOrder(t *testing.T) {
	_, r := setupTest(t)

	w := doJSON(t, r, http.MethodPatch, "/orders/99999", 3)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Order not found"}`, w.Body.String())
}

func TestDeleteOrderReturnsOwner(t *testing.T) {
	conn, r := setupTest(t)
	require.NoError(t, seed.Load(conn))

	// Order 1 belongs to user 1, who holds two orders.
	w := doJSON(t, r, http.MethodDelete, "/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var owner struct {
		ID     uint `json:"id"`
		Orders []struct {
			ID   uint `json:"id"`
			Item *struct {
				Title string `json:"title"`
			} `json:"item"`
		} `json:"orders"`
	}
	decode(t, w, &owner)

	assert.Equal(t, uint(1), owner.ID)
	require.Len(t, owner.Orders, 1)
	require.NotNil(t, owner.Orders[0].Item)
	assert.Equal(t, "pants", owner.Orders[0].Item.Title)

	var count int64
	require.NoError(t, conn.Model(&models.Order{}).Where("id = ?", 1).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteMissingOrder(t *testing.T) {
	_, r := setupTest(t)

	w := doJSON(t, r, http.MethodDelete, "/orders/99999", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Order not found"}`, w.Body.String())
}
