// Package service provides testify mocks for the domain service ports.
package service

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// TestingT is what the mock constructors need from *testing.T.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthAPI is a mock type for the AuthAPI type
type MockAuthAPI struct {
	mock.Mock
}

// NewMockAuthAPI creates a new instance of MockAuthAPI. Expectations are
// asserted when the test ends.
func NewMockAuthAPI(t TestingT) *MockAuthAPI {
	m := &MockAuthAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthAPI) SignIn(ctx context.Context, creds service.Credentials) (*service.AuthResult, error) {
	args := m.Called(ctx, creds)
	result, _ := args.Get(0).(*service.AuthResult)

	return result, args.Error(1)
}

func (m *MockAuthAPI) SignUp(ctx context.Context, input service.SignUpInput) (*service.AuthResult, error) {
	args := m.Called(ctx, input)
	result, _ := args.Get(0).(*service.AuthResult)

	return result, args.Error(1)
}

func (m *MockAuthAPI) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)

	return args.String(0), args.Error(1)
}

func (m *MockAuthAPI) VerifyResetCode(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockAuthAPI) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	args := m.Called(ctx, email, newPassword)

	return args.String(0), args.Error(1)
}

func (m *MockAuthAPI) VerifyToken(ctx context.Context) (*service.TokenInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*service.TokenInfo)

	return info, args.Error(1)
}
