package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopkit/commerce-api/internal/application"
	"github.com/shopkit/commerce-api/internal/domain/order"
	"github.com/shopkit/commerce-api/pkg/response"
	"github.com/shopkit/commerce-api/pkg/validation"
)

// OrderHandler is the HTTP boundary for the orders context.
type OrderHandler struct {
	Create  *application.CreateOrderHandler
	AddItem *application.AddItemToOrderHandler
	Confirm *application.ConfirmOrderHandler
	Get     *application.GetOrderHandler
	Logger  *logrus.Logger
}

func NewOrderHandler(create *application.CreateOrderHandler, addItem *application.AddItemToOrderHandler, confirm *application.ConfirmOrderHandler, get *application.GetOrderHandler, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Create: create, AddItem: addItem, Confirm: confirm, Get: get, Logger: logger}
}

type addItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	// Quantity and unit price are validated by the domain so that zero and
	// negative values report the same failure kind.
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
}

// HandleCreate POST /api/orders
func (h *OrderHandler) HandleCreate(c *gin.Context) {
	userID := c.GetInt64("userID")

	res, err := h.Create.Handle(c.Request.Context(), application.CreateOrderCommand{UserID: userID})
	if err != nil {
		h.orderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"orderId":     res.OrderID,
		"status":      res.Status,
		"itemCount":   res.ItemCount,
		"totalAmount": res.TotalAmount,
	}, "order created successfully")
}

// HandleGet GET /api/orders/:orderId
func (h *OrderHandler) HandleGet(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	res, err := h.Get.Handle(c.Request.Context(), application.GetOrderQuery{OrderID: orderID})
	if err != nil {
		h.orderError(c, err)
		return
	}

	items := make([]gin.H, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, gin.H{
			"productId": it.ProductID,
			"quantity":  it.Quantity,
			"unitPrice": it.UnitPrice,
			"total":     it.Total,
		})
	}

	response.Success(c, http.StatusOK, gin.H{
		"orderId":     res.OrderID,
		"userId":      res.UserID,
		"status":      res.Status,
		"itemCount":   len(res.Items),
		"items":       items,
		"totalAmount": res.TotalAmount,
	}, "order details")
}

// HandleAddItem POST /api/orders/:orderId/items
func (h *OrderHandler) HandleAddItem(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.AddItem.Handle(c.Request.Context(), application.AddItemToOrderCommand{
		OrderID:   orderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		h.orderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orderId":     res.OrderID,
		"itemCount":   res.ItemCount,
		"totalAmount": res.TotalAmount,
	}, "item added to order")
}

// HandleConfirm POST /api/orders/:orderId/confirm
func (h *OrderHandler) HandleConfirm(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	res, err := h.Confirm.Handle(c.Request.Context(), application.ConfirmOrderCommand{OrderID: orderID})
	if err != nil {
		h.orderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orderId":        res.OrderID,
		"status":         res.Status,
		"itemCount":      res.ItemCount,
		"totalAmount":    res.TotalAmount,
		"formattedTotal": formatCents(res.TotalAmount),
	}, "order confirmed successfully")
}

func (h *OrderHandler) orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid order id", nil)
		return 0, false
	}
	return id, true
}

// orderError maps order failures onto the boundary status contract:
// not found 404, status conflict 409, empty order and item validation 422.
func (h *OrderHandler) orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		response.Error[any](c, http.StatusNotFound, "order not found", nil)
	case errors.Is(err, order.ErrStatusConflict):
		response.Error[any](c, http.StatusConflict, "order state does not allow this operation", nil)
	case errors.Is(err, order.ErrEmptyOrder):
		response.Error[any](c, http.StatusUnprocessableEntity, "order has no items", nil)
	case errors.Is(err, order.ErrInvalidQuantity), errors.Is(err, order.ErrInvalidUnitPrice):
		response.Error[any](c, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error("order use case failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

// formatCents renders an integer-cents amount for display. Fractional
// representation exists only here, never in the core.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
