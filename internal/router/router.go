package router

import (
	"time"

	"github.com/cartloop-dev/cartloop/internal/auth"
	"github.com/cartloop-dev/cartloop/internal/handlers"
	"github.com/cartloop-dev/cartloop/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(conn *gorm.DB, tokens *auth.TokenService) *gin.Engine {
	r := gin.Default()

	// The storefront is served from arbitrary origins.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	h := handlers.New(conn, tokens)

	r.GET("/health", h.Health)

	r.POST("/sign-up", h.SignUp)
	r.POST("/sign-in", h.SignIn)
	r.GET("/validate", middleware.Auth(conn, tokens), h.Validate)

	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.POST("/users", h.CreateUser)
	r.DELETE("/users/:id", h.DeleteUser)

	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.POST("/orders", h.CreateOrder)
	r.PATCH("/orders/:id", h.UpdateOrderQuantity)
	r.DELETE("/orders/:id", h.DeleteOrder)

	r.GET("/items", h.ListItems)
	r.GET("/items/:id", h.GetItem)
	r.DELETE("/items/:id", h.DeleteItem)

	r.GET("/ws/orders", h.OrderFeed)

	return r
}
