package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/retrorevival/storefront/internal/domain/billing"
	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/retrorevival/storefront/internal/interfaces/http/dto"
)

// SetupValidator configures the gin binding validator with the
// storefront's custom tags
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report field names from json tags, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// price accepts a decimal amount with an optional currency symbol,
	// e.g. "$10.00"
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		_, err := cart.ParsePrice(fl.Field().String())
		return err == nil
	})

	// expdate accepts the card expiration format MM/YY
	_ = v.RegisterValidation("expdate", func(fl validator.FieldLevel) bool {
		info := billing.Info{ExpirationDate: fl.Field().String()}
		return info.ValidExpirationDate()
	})
}

// HandleValidationError writes a 400 response listing the failed fields
func HandleValidationError(c *gin.Context, err error) {
	requestID := c.GetString("request_id")

	var details []dto.ValidationDetail
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	}

	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		requestID,
		details,
	))
}

// validationMessage returns a human-readable message for a failed tag
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "price":
		return "Must be a decimal amount, optionally prefixed with a currency symbol"
	case "expdate":
		return "Must be in MM/YY format"
	case "min":
		return "Must be at least " + e.Param()
	case "max":
		return "Must be at most " + e.Param()
	default:
		return "Invalid value"
	}
}
