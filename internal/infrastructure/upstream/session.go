package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/retrorevival/storefront/internal/domain/session"
	"go.uber.org/zap"
)

// CurrentUser asks the shop API who the given session cookie belongs
// to. It implements session.Source. A signed-out visitor is (nil, nil),
// not an error.
func (c *Client) CurrentUser(ctx context.Context, sessionCookie string) (*session.User, error) {
	status, body, err := c.doRequest(ctx, http.MethodGet, "/check_session", nil, sessionCookie)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, nil
	}

	var user session.User
	if err := json.Unmarshal(body, &user); err != nil {
		c.log.Warn("unreadable session response from shop API", zap.Error(err))
		return nil, nil
	}
	if user.Email == "" {
		return nil, nil
	}
	return &user, nil
}
