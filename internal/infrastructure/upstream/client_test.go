package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/retrorevival/storefront/internal/domain/order"
	"github.com/retrorevival/storefront/internal/domain/shared"
	"github.com/retrorevival/storefront/internal/infrastructure/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	return client, server
}

func TestNewClient(t *testing.T) {
	t.Run("rejects empty base URL", func(t *testing.T) {
		_, err := NewClient(&config.UpstreamConfig{Timeout: time.Second}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("rejects non-positive timeout", func(t *testing.T) {
		_, err := NewClient(&config.UpstreamConfig{BaseURL: "http://localhost:5555"}, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestClient_Submit(t *testing.T) {
	details := []order.Detail{{ItemID: "walkman-01"}, {ItemID: "walkman-01"}}

	t.Run("posts order details to the shop API", func(t *testing.T) {
		var received struct {
			OrderDetails []order.Detail `json:"order_details"`
		}
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/orders", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
		}))

		err := client.Submit(context.Background(), details)

		assert.NoError(t, err)
		assert.Equal(t, details, received.OrderDetails)
	})

	t.Run("carries the server's rejection message", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"error": "Item walkman-01 is out of stock"})
		}))

		err := client.Submit(context.Background(), details)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ORDER_SUBMISSION_FAILED", domainErr.Code)
		assert.Equal(t, "Item walkman-01 is out of stock", domainErr.Message)
	})

	t.Run("falls back to a generic message on an unreadable error body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>boom</html>"))
		}))

		err := client.Submit(context.Background(), details)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "The order could not be submitted. Please try again.", domainErr.Message)
	})

	t.Run("reports an unreachable shop API as a submission failure", func(t *testing.T) {
		client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		err := client.Submit(context.Background(), details)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ORDER_SUBMISSION_FAILED", domainErr.Code)
	})
}

func TestClient_CurrentUser(t *testing.T) {
	t.Run("forwards the session cookie and decodes the user", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/check_session", r.URL.Path)
			assert.Equal(t, "session=abc123", r.Header.Get("Cookie"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"id":        42,
				"email":     "alex@example.com",
				"firstname": "Alex",
				"lastname":  "Nguyen",
			})
		}))

		user, err := client.CurrentUser(context.Background(), "session=abc123")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Alex", user.FirstName)
		assert.Equal(t, "alex@example.com", user.Email)
	})

	t.Run("treats a non-2xx response as signed out", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		user, err := client.CurrentUser(context.Background(), "session=expired")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("treats an empty user payload as signed out", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{}"))
		}))

		user, err := client.CurrentUser(context.Background(), "")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("propagates a transport failure", func(t *testing.T) {
		client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		user, err := client.CurrentUser(context.Background(), "session=abc")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
		assert.Nil(t, user)
	})
}
