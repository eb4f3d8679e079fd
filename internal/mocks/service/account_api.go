package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockAddressAPI is a mock type for the AddressAPI type
type MockAddressAPI struct {
	mock.Mock
}

func NewMockAddressAPI(t TestingT) *MockAddressAPI {
	m := &MockAddressAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAddressAPI) ListAddresses(ctx context.Context) ([]entity.Address, error) {
	args := m.Called(ctx)
	addresses, _ := args.Get(0).([]entity.Address)

	return addresses, args.Error(1)
}

func (m *MockAddressAPI) GetAddress(ctx context.Context, id string) (*entity.Address, error) {
	args := m.Called(ctx, id)
	address, _ := args.Get(0).(*entity.Address)

	return address, args.Error(1)
}

func (m *MockAddressAPI) AddAddress(ctx context.Context, address entity.Address) ([]entity.Address, error) {
	args := m.Called(ctx, address)
	addresses, _ := args.Get(0).([]entity.Address)

	return addresses, args.Error(1)
}

func (m *MockAddressAPI) RemoveAddress(ctx context.Context, id string) ([]entity.Address, error) {
	args := m.Called(ctx, id)
	addresses, _ := args.Get(0).([]entity.Address)

	return addresses, args.Error(1)
}

// MockUserAPI is a mock type for the UserAPI type
type MockUserAPI struct {
	mock.Mock
}

func NewMockUserAPI(t TestingT) *MockUserAPI {
	m := &MockUserAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserAPI) GetMe(ctx context.Context) (*entity.Profile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*entity.Profile)

	return profile, args.Error(1)
}

func (m *MockUserAPI) UpdateMe(ctx context.Context, update service.ProfileUpdate) (*entity.User, error) {
	args := m.Called(ctx, update)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserAPI) ChangePassword(ctx context.Context, change service.PasswordChange) (string, error) {
	args := m.Called(ctx, change)

	return args.String(0), args.Error(1)
}

func (m *MockUserAPI) ListUsers(ctx context.Context) ([]entity.Profile, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.Profile)

	return users, args.Error(1)
}
