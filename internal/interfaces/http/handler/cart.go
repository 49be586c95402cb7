package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/retrorevival/storefront/internal/application/session"
	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/retrorevival/storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart API endpoints
type CartHandler struct {
	BaseHandler
	sessions *session.Registry
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(sessions *session.Registry) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/cart")
	{
		carts.GET("", h.GetCart)
		carts.POST("/items", h.AddItem)
		carts.DELETE("/items/:index", h.RemoveItem)
	}
}

// AddItemRequest is the payload for adding an item to the cart
type AddItemRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       string `json:"price" binding:"required,price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ImageAlt    string `json:"image_alt"`
}

// CartResponse is the cart view payload
type CartResponse struct {
	Items []cart.Item `json:"items"`
	Count int         `json:"count"`
	Total string      `json:"total"`
}

// GetCart returns the current cart, refreshed from the persisted store
// so a returning visitor sees what they left behind.
func (h *CartHandler) GetCart(c *gin.Context) {
	state := h.sessions.Get(middleware.GetSessionID(c))
	items := state.Cart.RefreshFromStore(c.Request.Context())

	h.Success(c, CartResponse{
		Items: items,
		Count: len(items),
		Total: state.Cart.Total().StringFixed(2),
	})
}

// AddItem appends an item to the cart. Adding the same item twice
// yields two slots.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := cart.NewItem(req.ID, req.Name, req.Price, req.Description, req.ImageURL, req.ImageAlt)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	state := h.sessions.Get(middleware.GetSessionID(c))
	items := state.Cart.AddItem(c.Request.Context(), item)

	h.Success(c, CartResponse{
		Items: items,
		Count: len(items),
		Total: state.Cart.Total().StringFixed(2),
	})
}

// RemoveItem removes the cart slot at the given position. An
// out-of-range position leaves the cart unchanged and still answers
// with the current cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		h.BadRequest(c, "Cart position must be an integer")
		return
	}

	state := h.sessions.Get(middleware.GetSessionID(c))
	items := state.Cart.RemoveAt(c.Request.Context(), index)

	h.Success(c, CartResponse{
		Items: items,
		Count: len(items),
		Total: state.Cart.Total().StringFixed(2),
	})
}
