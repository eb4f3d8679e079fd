package errors

import (
	"io"
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopies(t *testing.T) {
	withDetails := ErrEmptyCart.WithDetails("cart id missing")
	withMessage := ErrInvalidCredentials.WithMessage("Incorrect email or password")

	assert.True(t, errors.Is(withDetails, ErrEmptyCart))
	assert.True(t, errors.Is(errors.Wrap(withMessage, "login"), ErrInvalidCredentials))
	assert.False(t, errors.Is(withDetails, ErrInvalidCredentials))
	assert.Equal(t, "Incorrect email or password", withMessage.Message())
}

func TestBaseError_WithMessageKeepsDefaultWhenEmpty(t *testing.T) {
	assert.Same(t, ErrInvalidCredentials, ErrInvalidCredentials.WithMessage(""))
}

func TestUpstreamError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UpstreamError
		wantCode int
		wantMsg  string
		wantBiz  string
	}{
		{
			name:     "transport",
			err:      NewUpstreamError(UpstreamTransport, "GET /cart", 0, "", io.ErrUnexpectedEOF),
			wantCode: http.StatusBadGateway,
			wantMsg:  "Something went wrong",
			wantBiz:  "UPSTREAM_UNAVAILABLE",
		},
		{
			name:     "unauthorized",
			err:      NewUpstreamError(UpstreamHTTP, "GET /cart", http.StatusUnauthorized, "Invalid Token", nil),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid Token",
			wantBiz:  "UPSTREAM_REJECTED",
		},
		{
			name:     "business",
			err:      NewUpstreamError(UpstreamBusiness, "POST /auth/signin", http.StatusOK, "fail", nil),
			wantCode: http.StatusBadGateway,
			wantMsg:  "fail",
			wantBiz:  "UPSTREAM_REJECTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.HTTPCode())
			assert.Equal(t, tt.wantMsg, tt.err.Message())
			assert.Equal(t, tt.wantBiz, tt.err.ErrorCode())
			assert.True(t, IsUpstreamKind(errors.WithStack(tt.err), tt.err.Kind))
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Your cart is empty", UserMessage(errors.WithStack(ErrEmptyCart), "fallback"))
	assert.Equal(t, "fallback", UserMessage(io.EOF, "fallback"))
}
