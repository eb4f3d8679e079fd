package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// AccountUsecase covers the profile and address book.
type AccountUsecase interface {
	Profile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, update service.ProfileUpdate) (*entity.User, error)

	Addresses(ctx context.Context) ([]entity.Address, error)
	Address(ctx context.Context, id string) (*entity.Address, error)
	AddAddress(ctx context.Context, address entity.Address) ([]entity.Address, error)
	RemoveAddress(ctx context.Context, id string) ([]entity.Address, error)
}
