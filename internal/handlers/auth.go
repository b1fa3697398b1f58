package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cartloop-dev/cartloop/internal/auth"
	"github.com/cartloop-dev/cartloop/internal/models"
	"github.com/cartloop-dev/cartloop/internal/types"
	"github.com/cartloop-dev/cartloop/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signedInUser struct {
	types.UserResponse
	Orders []types.OrderSummary `json:"orders"`
}

func (h *Handler) SignUp(ctx *gin.Context) {
	var body SignUpRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	hash, err := auth.HashPassword(body.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: hash,
	}

	if err := h.DB.Create(&newUser).Error; err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	// Mirror the read shape of /users: orders with their item, empty for a
	// fresh account.
	var created models.User

	if err := h.DB.Preload("Orders.Item").First(&created, newUser.ID).Error; err != nil {
		log.Printf("Failed to reload user %d: %v", newUser.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.Tokens.Issue(created.ID)

	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": created, "token": token})
}

func (h *Handler) SignIn(ctx *gin.Context) {
	var body SignInRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password or Email is invalid"})
		return
	}

	var user models.User

	err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deliberately the same message as a password mismatch.
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password or Email is invalid"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !auth.CheckPassword(body.Password, user.Password) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password or Email is invalid"})
		return
	}

	var orders []types.OrderSummary

	if err := h.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Find(&orders).Error; err != nil {
		log.Printf("Failed to load orders for user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.Tokens.Issue(user.ID)

	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": signedInUser{
			UserResponse: types.UserResponse{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			},
			Orders: orders,
		},
		"token": token,
	})
}

// Validate runs behind the auth middleware, so the token has already been
// resolved to a stored user by the time we get here.
func (h *Handler) Validate(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User

	if err := h.DB.Preload("Orders").First(&user, userID).Error; err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
