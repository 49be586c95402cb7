package cart

import "context"

// Store is the durable persistence contract for session carts. The
// logical schema is a single record per session holding the serialized
// item sequence, so a cart survives page reloads within a session.
//
// Implementations must treat malformed stored content as an absent
// cart: Load returns an empty sequence, never a decoding error. Only
// infrastructure failures (connection loss, I/O) are reported, and the
// application layer degrades those to an empty cart as well.
type Store interface {
	// Load returns the stored item sequence for a session, or an empty
	// sequence when nothing is stored
	Load(ctx context.Context, sessionID string) ([]Item, error)
	// Save replaces the stored item sequence for a session
	Save(ctx context.Context, sessionID string, items []Item) error
	// Clear removes the stored cart for a session
	Clear(ctx context.Context, sessionID string) error
}
