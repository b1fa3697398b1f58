package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cartloop-dev/cartloop/internal/models"
	"github.com/cartloop-dev/cartloop/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type itemWithOrders struct {
	ID     uint                     `json:"id"`
	Title  string                   `json:"title"`
	Image  string                   `json:"image"`
	Price  float64                  `json:"price"`
	Orders []types.ItemOrderSummary `json:"orders"`
}

// ListItems returns the catalog with, per item, a summary of who ordered it
// and in what quantity.
func (h *Handler) ListItems(ctx *gin.Context) {
	var items []models.Item

	if err := h.DB.Preload("Orders").Find(&items).Error; err != nil {
		log.Printf("Failed to list items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	response := make([]itemWithOrders, 0, len(items))

	for _, item := range items {
		orders := make([]types.ItemOrderSummary, 0, len(item.Orders))

		for _, order := range item.Orders {
			orders = append(orders, types.ItemOrderSummary{
				UserID:   order.UserID,
				Quantity: order.Quantity,
			})
		}

		response = append(response, itemWithOrders{
			ID:     item.ID,
			Title:  item.Title,
			Image:  item.Image,
			Price:  item.Price,
			Orders: orders,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var item models.Item

	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, nil)
			return
		}
		log.Printf("Failed to fetch item %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var item models.Item

	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Item not found"})
			return
		}
		log.Printf("Failed to fetch item %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return
	}

	if err := h.DB.Delete(&item).Error; err != nil {
		log.Printf("Failed to delete item %d: %v", id, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete item"})
		return
	}

	ctx.JSON(http.StatusOK, item)
}
