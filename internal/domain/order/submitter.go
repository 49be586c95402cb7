package order

import "context"

// Submitter sends a single order-creation request to the shop API.
// The request is treated as atomic - there are no partial-order
// semantics. A non-success response is reported as a domain error
// carrying the server's message.
type Submitter interface {
	Submit(ctx context.Context, details []Detail) error
}
