package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-service/internal/usecase/order"
)

// OrderHandler handles HTTP requests for orders and the per-user order views
type OrderHandler struct {
	uc  order.OrderUsecase
	log *zap.Logger
}

// NewOrderHandler creates a new OrderHandler instance
func NewOrderHandler(uc order.OrderUsecase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// CreateOrderRequest is the body of POST /orders/.
type CreateOrderRequest struct {
	UserID    *int64  `json:"user_id" binding:"required,gt=0"`
	ProductID *int64  `json:"product_id" binding:"required,gt=0"`
	Status    *string `json:"status" binding:"required,max=255"`
}

// UpdateOrderRequest is the body of PUT /orders/:id.
type UpdateOrderRequest struct {
	UserID    *int64  `json:"user_id" binding:"omitempty,gt=0"`
	ProductID *int64  `json:"product_id" binding:"omitempty,gt=0"`
	Status    *string `json:"status" binding:"omitempty,max=255"`
}

// OrderResponse represents the HTTP response for order data
type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	OrderDate time.Time `json:"order_date"`
	Status    string    `json:"status"`
}

// TotalAmountResponse is returned by GET /users/:id/total-order-amount/.
type TotalAmountResponse struct {
	TotalAmount float64 `json:"total_amount"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		OrderDate: o.OrderDate,
		Status:    o.Status,
	}
}

func toOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}

// CreateOrder handles POST /orders/
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	resp, err := h.uc.CreateOrder(c.Request.Context(), order.CreateOrderRequest{
		UserID:    *req.UserID,
		ProductID: *req.ProductID,
		Status:    *req.Status,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(resp))
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	resp, err := h.uc.GetOrder(c.Request.Context(), order.GetOrderRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(resp))
}

// ListOrders handles GET /orders/
func (h *OrderHandler) ListOrders(c *gin.Context) {
	resp, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(resp))
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	resp, err := h.uc.UpdateOrder(c.Request.Context(), order.UpdateOrderRequest{
		ID:        id,
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Status:    req.Status,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(resp))
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteOrder(c.Request.Context(), order.DeleteOrderRequest{ID: id}); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}

// ListUserOrders handles GET /users/:id/orders/
func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	userID, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	resp, err := h.uc.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(resp))
}

// TotalOrderAmount handles GET /users/:id/total-order-amount/
func (h *OrderHandler) TotalOrderAmount(c *gin.Context) {
	userID, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	total, err := h.uc.TotalOrderAmount(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, TotalAmountResponse{TotalAmount: total})
}
