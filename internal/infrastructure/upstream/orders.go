package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/retrorevival/storefront/internal/domain/order"
	"github.com/retrorevival/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// orderRequest is the order intake payload expected by the shop API
type orderRequest struct {
	OrderDetails []order.Detail `json:"order_details"`
}

// orderErrorResponse is the error shape the shop API returns on a
// rejected order
type orderErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Submit sends an order to the shop API. It implements order.Submitter.
// A rejection carries the server's own message through to the caller so
// the buyer sees what the shop said.
func (c *Client) Submit(ctx context.Context, details []order.Detail) error {
	status, body, err := c.doRequest(ctx, http.MethodPost, "/api/orders", orderRequest{OrderDetails: details}, "")
	if err != nil {
		c.log.Error("order submission failed", zap.Error(err))
		return shared.NewSubmissionError("The order could not be submitted. Please try again.")
	}

	if status < 200 || status >= 300 {
		message := serverMessage(body)
		c.log.Warn("order rejected by shop API",
			zap.Int("status", status),
			zap.String("message", message),
		)
		if message == "" {
			message = "The order could not be submitted. Please try again."
		}
		return shared.NewSubmissionError(message)
	}

	return nil
}

// serverMessage extracts a human-readable message from an error body,
// tolerating either an {"error": ...} or {"message": ...} shape.
func serverMessage(body []byte) string {
	var parsed orderErrorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return parsed.Message
}
