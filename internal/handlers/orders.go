package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cartloop-dev/cartloop/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	UserID   uint `json:"userId" binding:"required"`
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

func (h *Handler) ListOrders(ctx *gin.Context) {
	var orders []models.Order

	if err := h.DB.Find(&orders).Error; err != nil {
		log.Printf("Failed to list orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var order models.Order

	if err := h.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, nil)
			return
		}
		log.Printf("Failed to fetch order %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// CreateOrder relies on the store's foreign keys: a dangling userId or
// itemId is rejected there, not here.
func (h *Handler) CreateOrder(ctx *gin.Context) {
	var body CreateOrderRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	order := models.Order{
		UserID:   body.UserID,
		ItemID:   body.ItemID,
		Quantity: body.Quantity,
	}

	if err := h.DB.Create(&order).Error; err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create order"})
		return
	}

	broadcastOrdersChanged()

	ctx.JSON(http.StatusOK, order)
}

// UpdateOrderQuantity accepts the bare quantity value as the request body,
// e.g. `3`, the shape the storefront has always sent.
func (h *Handler) UpdateOrderQuantity(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var quantity int

	if err := ctx.ShouldBindJSON(&quantity); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if quantity <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}

	var order models.Order

	if err := h.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Failed to fetch order %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	if err := h.DB.Model(&order).Update("quantity", quantity).Error; err != nil {
		log.Printf("Failed to update order %d: %v", id, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update order"})
		return
	}

	broadcastOrdersChanged()

	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder removes the order and answers with the owning user's refreshed
// account, orders and items included, so the storefront can redraw the cart
// from one response.
func (h *Handler) DeleteOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var order models.Order

	if err := h.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("Failed to fetch order %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	if err := h.DB.Delete(&order).Error; err != nil {
		log.Printf("Failed to delete order %d: %v", id, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete order"})
		return
	}

	// The mutation is committed at this point; tell feed clients even if the
	// owner refetch below fails.
	broadcastOrdersChanged()

	var owner models.User

	if err := h.DB.Preload("Orders.Item").First(&owner, order.UserID).Error; err != nil {
		log.Printf("Failed to reload user %d: %v", order.UserID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	ctx.JSON(http.StatusOK, owner)
}
