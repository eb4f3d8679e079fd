package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials are what the remote sign-in endpoint accepts.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpInput is what the remote sign-up endpoint accepts.
type SignUpInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	RePassword string `json:"rePassword" validate:"required,eqfield=Password"`
	Phone      string `json:"phone" validate:"required"`
}

// AuthResult is a successful sign-in or sign-up.
type AuthResult struct {
	Token string
	User  *entity.User
}

// PasswordChange is what /users/changeMyPassword accepts.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	RePassword      string `json:"rePassword" validate:"required,eqfield=Password"`
}

// ProfileUpdate is what /users/updateMe accepts.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// TokenInfo is the remote verdict on a token.
type TokenInfo struct {
	UserID string
	Name   string
	Role   entity.Role
}

// AuthAPI is the remote authentication surface.
type AuthAPI interface {
	SignIn(ctx context.Context, creds Credentials) (*AuthResult, error)
	SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error)
	// ForgotPassword returns the server's confirmation message.
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyResetCode(ctx context.Context, code string) error
	// ResetPassword returns the fresh token issued for the account.
	ResetPassword(ctx context.Context, email, newPassword string) (string, error)
	VerifyToken(ctx context.Context) (*TokenInfo, error)
}

// CatalogAPI is the remote, unauthenticated catalog.
type CatalogAPI interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	ListCategorySubCategories(ctx context.Context, categoryID string) ([]entity.SubCategory, error)
	ListSubCategories(ctx context.Context) ([]entity.SubCategory, error)
	GetSubCategory(ctx context.Context, id string) (*entity.SubCategory, error)
	ListBrands(ctx context.Context) ([]entity.Brand, error)
	GetBrand(ctx context.Context, id string) (*entity.Brand, error)
}

// CartAPI is the remote cart. All calls require a session token.
type CartAPI interface {
	GetCart(ctx context.Context) (*entity.CartView, error)
	AddToCart(ctx context.Context, productID string) (*entity.CartView, error)
	UpdateCartItem(ctx context.Context, productID string, count int) (*entity.CartView, error)
	RemoveCartItem(ctx context.Context, productID string) (*entity.CartView, error)
	ClearCart(ctx context.Context) error
}

// WishlistAPI is the remote wishlist. Mutations return the server's id list
// after the change.
type WishlistAPI interface {
	GetWishlist(ctx context.Context) ([]entity.Product, error)
	AddToWishlist(ctx context.Context, productID string) ([]string, error)
	RemoveFromWishlist(ctx context.Context, productID string) ([]string, error)
}

// AddressAPI is the remote address book. Mutations return the full list.
type AddressAPI interface {
	ListAddresses(ctx context.Context) ([]entity.Address, error)
	GetAddress(ctx context.Context, id string) (*entity.Address, error)
	AddAddress(ctx context.Context, address entity.Address) ([]entity.Address, error)
	RemoveAddress(ctx context.Context, id string) ([]entity.Address, error)
}

// UserAPI is the remote account surface.
type UserAPI interface {
	GetMe(ctx context.Context) (*entity.Profile, error)
	UpdateMe(ctx context.Context, update ProfileUpdate) (*entity.User, error)
	// ChangePassword returns the replacement token, if the server issued one.
	ChangePassword(ctx context.Context, change PasswordChange) (string, error)
	ListUsers(ctx context.Context) ([]entity.Profile, error)
}

// OrderAPI is the remote order surface.
type OrderAPI interface {
	CreateCashOrder(ctx context.Context, cartID string, address entity.ShippingAddress) (*entity.Order, error)
	// CreateCheckoutSession returns the hosted payment page URL.
	CreateCheckoutSession(ctx context.Context, cartID, returnURL string, address entity.ShippingAddress) (string, error)
	ListUserOrders(ctx context.Context, userID string) ([]entity.Order, error)
	ListAllOrders(ctx context.Context) ([]entity.Order, error)
}
