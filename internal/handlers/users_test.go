package handlers_test

import (
	"net/http"
	"testing"

	"github.com/cartloop-dev/cartloop/internal/auth"
	"github.com/cartloop-dev/cartloop/internal/models"
	"github.com/cartloop-dev/cartloop/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMissingUser(t *testing.T) {
	_, r := setupTest(t)

	w := doJSON(t, r, http.MethodDelete, "/users/99999", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, w.Body.String())
}

func TestDeleteUserThenGetEmpty(t *testing.T) {
	_, r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]string{
		"name":     "Marvin",
		"email":    "marvin@mail.com",
		"password": "marvin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.User
	decode(t, w, &created)
	require.NotZero(t, created.ID)

	w = doJSON(t, r, http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted models.User
	decode(t, w, &deleted)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "marvin@mail.com", deleted.Email)

	w = doJSON(t, r, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestCreateUserHashesPassword(t *testing.T) {
	conn, r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]string{
		"name":     "Marvin",
		"email":    "marvin@mail.com",
		"password": "marvin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, conn.Where("email = ?", "marvin@mail.com").First(&stored).Error)

	assert.NotEqual(t, "marvin123", stored.Password)
	assert.True(t, auth.CheckPassword("marvin123", stored.Password))
}

func TestListUsersEagerLoadsOrders(t *testing.T) {
	conn, r := setupTest(t)
	require.NoError(t, seed.Load(conn))

	w := doJSON(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []struct {
		ID     uint   `json:"id"`
		Name   string `json:"name"`
		Orders []struct {
			ItemID   uint `json:"itemId"`
			Quantity int  `json:"quantity"`
			Item     *struct {
				Title string `json:"title"`
			} `json:"item"`
		} `json:"orders"`
	}
	decode(t, w, &users)

	require.Len(t, users, 3)
	require.Len(t, users[0].Orders, 2)
	require.NotNil(t, users[0].Orders[0].Item)
	assert.Equal(t, "basketball", users[0].Orders[0].Item.Title)
}
