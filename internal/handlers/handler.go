package handlers

import (
	"github.com/cartloop-dev/cartloop/internal/auth"
	"gorm.io/gorm"
)

// Handler carries the shared store handle and the token service. Both are
// constructed once at startup and injected here; handlers hold no other
// state across requests.
type Handler struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
}

func New(conn *gorm.DB, tokens *auth.TokenService) *Handler {
	return &Handler{DB: conn, Tokens: tokens}
}
