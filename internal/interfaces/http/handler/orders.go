package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retrorevival/storefront/internal/application/session"
	"github.com/retrorevival/storefront/internal/domain/order"
	"github.com/retrorevival/storefront/internal/domain/shared"
	"github.com/retrorevival/storefront/internal/interfaces/http/middleware"
)

// OrderHandler handles order confirmation endpoints
type OrderHandler struct {
	BaseHandler
	sessions *session.Registry
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(sessions *session.Registry) *OrderHandler {
	return &OrderHandler{sessions: sessions}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders/latest", h.GetLatestOrder)
}

// OrderResponse is the confirmation view payload
type OrderResponse struct {
	BuyerName string         `json:"buyer_name"`
	Details   []order.Detail `json:"details"`
	PlacedAt  time.Time      `json:"placed_at"`
}

// GetLatestOrder returns the session's most recent completed order.
// Reading does not consume it; reloading the confirmation view shows
// the same order until the next checkout replaces it.
func (h *OrderHandler) GetLatestOrder(c *gin.Context) {
	state := h.sessions.Get(middleware.GetSessionID(c))

	completed, ok := state.Orders.Latest()
	if !ok {
		h.HandleError(c, shared.ErrNoCompletedOrder)
		return
	}

	h.Success(c, OrderResponse{
		BuyerName: completed.BuyerName,
		Details:   completed.Details,
		PlacedAt:  completed.PlacedAt,
	})
}
