package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Profile(t *testing.T) {
	users := mockService.NewMockUserAPI(t)
	srv := NewAccountService(AccountServiceParams{UserAPI: users, AddressAPI: mockService.NewMockAddressAPI(t), Logger: testLogger()})

	users.On("GetMe", mock.Anything).Return(&entity.Profile{ID: "u1", Name: "Ada"}, nil).Once()
	update := service.ProfileUpdate{Name: "Ada L."}
	users.On("UpdateMe", mock.Anything, update).Return(&entity.User{Name: "Ada L."}, nil).Once()

	profile, err := srv.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)

	user, err := srv.UpdateProfile(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.Name)
}

func TestAccountService_Addresses(t *testing.T) {
	addresses := mockService.NewMockAddressAPI(t)
	srv := NewAccountService(AccountServiceParams{UserAPI: mockService.NewMockUserAPI(t), AddressAPI: addresses, Logger: testLogger()})
	ctx := context.Background()

	home := entity.Address{Name: "Home", Details: "12 Nile St", Phone: "01000000000", City: "Cairo"}
	saved := home
	saved.ID = "a1"

	addresses.On("AddAddress", mock.Anything, home).Return([]entity.Address{saved}, nil).Once()
	addresses.On("GetAddress", mock.Anything, "a1").Return(&saved, nil).Once()
	addresses.On("RemoveAddress", mock.Anything, "a1").Return([]entity.Address{}, nil).Once()

	list, err := srv.AddAddress(ctx, home)
	require.NoError(t, err)
	assert.Equal(t, []entity.Address{saved}, list)

	got, err := srv.Address(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Cairo", got.City)

	list, err = srv.RemoveAddress(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAccountService_AddressesWithoutSession(t *testing.T) {
	addresses := mockService.NewMockAddressAPI(t)
	srv := NewAccountService(AccountServiceParams{UserAPI: mockService.NewMockUserAPI(t), AddressAPI: addresses, Logger: testLogger()})

	addresses.On("ListAddresses", mock.Anything).
		Return(nil, domainerrors.NewUpstreamError(domainerrors.UpstreamHTTP, "/addresses", http.StatusUnauthorized, "You are not logged in", nil)).
		Once()

	_, err := srv.Addresses(context.Background())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
