package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserAPI    service.UserAPI
	AddressAPI service.AddressAPI
	Logger     *slog.Logger
}

type accountService struct {
	users     service.UserAPI
	addresses service.AddressAPI
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		users:     params.UserAPI,
		addresses: params.AddressAPI,
		logger:    params.Logger,
	}
}

func (srv *accountService) Profile(ctx context.Context) (*entity.Profile, error) {
	profile, err := srv.users.GetMe(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

func (srv *accountService) UpdateProfile(ctx context.Context, update service.ProfileUpdate) (*entity.User, error) {
	user, err := srv.users.UpdateMe(ctx, update)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Profile update failed", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	loggerFor(ctx, srv.logger).Info("Profile updated")

	return user, nil
}

func (srv *accountService) Addresses(ctx context.Context) ([]entity.Address, error) {
	addresses, err := srv.addresses.ListAddresses(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return addresses, nil
}

func (srv *accountService) Address(ctx context.Context, id string) (*entity.Address, error) {
	address, err := srv.addresses.GetAddress(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return address, nil
}

func (srv *accountService) AddAddress(ctx context.Context, address entity.Address) ([]entity.Address, error) {
	addresses, err := srv.addresses.AddAddress(ctx, address)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Failed to add address", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	return addresses, nil
}

func (srv *accountService) RemoveAddress(ctx context.Context, id string) ([]entity.Address, error) {
	addresses, err := srv.addresses.RemoveAddress(ctx, id)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Failed to remove address", slog.String("address_id", id), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	return addresses, nil
}
