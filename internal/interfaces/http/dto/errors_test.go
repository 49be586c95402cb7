package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"empty cart conflicts", ErrCodeEmptyCart, http.StatusConflict},
		{"incomplete billing is unprocessable", ErrCodeIncompleteBilling, http.StatusUnprocessableEntity},
		{"submission failure is a bad gateway", ErrCodeSubmissionFailed, http.StatusBadGateway},
		{"in-flight checkout is rate limited", ErrCodeSubmissionInFlight, http.StatusTooManyRequests},
		{"not signed in is unauthorized", ErrCodeNotSignedIn, http.StatusUnauthorized},
		{"no completed order is not found", ErrCodeNoCompletedOrder, http.StatusNotFound},
		{"invalid item is a bad request", ErrCodeInvalidItem, http.StatusBadRequest},
		{"unknown code falls back to 500", "SOMETHING_ELSE", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(map[string]int{"count": 3})

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeEmptyCart, "Cannot checkout with an empty cart.", "req-123")

	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeEmptyCart, resp.Error.Code)
	assert.Equal(t, "Cannot checkout with an empty cart.", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.NotZero(t, resp.Error.Timestamp)
}

func TestErrorResponseSerialization(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "No completed order for this session")

	data, err := json.Marshal(resp)
	assert.NoError(t, err)

	var decoded Response
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.Success)
	assert.Equal(t, ErrCodeNotFound, decoded.Error.Code)
	assert.Empty(t, decoded.Error.RequestID)
}
