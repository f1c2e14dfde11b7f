package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopkit/commerce-api/internal/container"
	handlers "github.com/shopkit/commerce-api/internal/interface/http"
	"github.com/shopkit/commerce-api/internal/interface/middleware"
	"github.com/shopkit/commerce-api/pkg/helpers"
)

// OrderModule wires order HTTP handlers into routes. All order routes
// require authentication.
type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/orders", m.Handler.HandleCreate)
		auth.GET("/orders/:orderId", m.Handler.HandleGet)
		auth.POST("/orders/:orderId/items", m.Handler.HandleAddItem)
		auth.POST("/orders/:orderId/confirm", m.Handler.HandleConfirm)
	}
}
