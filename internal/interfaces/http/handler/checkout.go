package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/retrorevival/storefront/internal/application/session"
	"github.com/retrorevival/storefront/internal/domain/billing"
	"github.com/retrorevival/storefront/internal/domain/shared"
	sessiondomain "github.com/retrorevival/storefront/internal/domain/session"
	"github.com/retrorevival/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles billing validation and order confirmation
type CheckoutHandler struct {
	BaseHandler
	sessions *session.Registry
	users    sessiondomain.Source
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(sessions *session.Registry, users sessiondomain.Source) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions, users: users}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/billing/validate", h.ValidateBilling)
	rg.POST("/checkout", h.Checkout)
}

// BillingRequest carries the billing form fields. Fields are bound
// loosely; completeness is judged by the domain rules, not by binding,
// so a partial form validates instead of failing the request.
type BillingRequest struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

func (r BillingRequest) toDomain() billing.Info {
	return billing.Info{
		CardholderName: r.CardholderName,
		CardNumber:     r.CardNumber,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
	}
}

// BillingValidationResponse reports per-field validity. The frontend
// enables its confirm button only when Valid is true.
type BillingValidationResponse struct {
	Valid          bool `json:"valid"`
	CardholderName bool `json:"cardholder_name"`
	CardNumber     bool `json:"card_number"`
	ExpirationDate bool `json:"expiration_date"`
	CVV            bool `json:"cvv"`
}

// CheckoutResponse is the successful checkout payload
type CheckoutResponse struct {
	BuyerName    string `json:"buyer_name"`
	ItemCount    int    `json:"item_count"`
	RedirectPath string `json:"redirect_path"`
}

// ValidateBilling reports which billing fields currently pass, without
// side effects. Used for live validation while the form is typed.
func (h *CheckoutHandler) ValidateBilling(c *gin.Context) {
	var req BillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info := req.toDomain()
	h.Success(c, BillingValidationResponse{
		Valid:          info.Validate(),
		CardholderName: info.ValidCardholderName(),
		CardNumber:     info.ValidCardNumber(),
		ExpirationDate: info.ValidExpirationDate(),
		CVV:            info.ValidCVV(),
	})
}

// Checkout runs the order confirmation flow for the signed-in user.
// Guard failures come back as domain errors and map onto 409, 422, 429
// or 502 depending on what stopped the order.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req BillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.users.CurrentUser(c.Request.Context(), c.GetHeader("Cookie"))
	if err != nil {
		h.HandleError(c, shared.NewSubmissionError("The shop is unavailable. Please try again."))
		return
	}
	if user == nil {
		h.HandleError(c, shared.ErrNotSignedIn)
		return
	}

	state := h.sessions.Get(middleware.GetSessionID(c))
	result, err := state.Checkout.Checkout(c.Request.Context(), req.toDomain(), user.FirstName)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CheckoutResponse{
		BuyerName:    result.BuyerName,
		ItemCount:    len(result.Details),
		RedirectPath: "/confirmation",
	})
}
