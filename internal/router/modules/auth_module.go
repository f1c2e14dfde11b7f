package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopkit/commerce-api/internal/container"
	handlers "github.com/shopkit/commerce-api/internal/interface/http"
	"github.com/shopkit/commerce-api/internal/interface/middleware"
	"github.com/shopkit/commerce-api/pkg/helpers"
)

// AuthModule wires identity HTTP handlers into routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: POST /api/auth/logout, GET /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.HandleRegister)
	rg.POST("/auth/login", loginLimiter, m.Handler.HandleLogin)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/auth/logout", m.Handler.HandleLogout)
		auth.GET("/auth/me", m.Handler.HandleMe)
	}
}
