package session

import "context"

// User is the authenticated shopper as reported by the session
// collaborator. The storefront core only branches on presence or
// absence of a user; checkout additionally reads FirstName for the
// confirmation handoff.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// Source resolves the current user for a request. A nil user with a
// nil error means no active session.
type Source interface {
	CurrentUser(ctx context.Context, sessionCookie string) (*User, error)
}
