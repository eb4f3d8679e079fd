// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	CatalogHandler    *handler.CatalogHandler
	AccountHandler    *handler.AccountHandler
	OrderHandler      *handler.OrderHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	session  *handler.SessionHandler
	cart     *handler.CartHandler
	wishlist *handler.WishlistHandler
	catalog  *handler.CatalogHandler
	account  *handler.AccountHandler
	order    *handler.OrderHandler
	auth     *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session:  params.SessionHandler,
		cart:     params.CartHandler,
		wishlist: params.WishlistHandler,
		catalog:  params.CatalogHandler,
		account:  params.AccountHandler,
		order:    params.OrderHandler,
		auth:     params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	sessionGroup := api.Group("/session")
	{
		sessionGroup.GET("", r.session.Get)
		sessionGroup.POST("/login", r.session.Login)
		sessionGroup.POST("/register", r.session.Register)
		sessionGroup.DELETE("", r.session.Logout)
		sessionGroup.POST("/password/forgot", r.session.ForgotPassword)
		sessionGroup.POST("/password/verify", r.session.VerifyResetCode)
		sessionGroup.POST("/password/reset", r.session.ResetPassword)
		sessionGroup.PUT("/password", r.session.ChangePassword, r.auth.RequireSession)
	}

	// The count is readable without a session; it is zero then.
	api.GET("/cart/count", r.cart.Count)

	cartGroup := api.Group("/cart", r.auth.RequireSession)
	{
		cartGroup.GET("", r.cart.Get)
		cartGroup.DELETE("", r.cart.Clear)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.PUT("/items/:id", r.cart.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cart.RemoveItem)
	}

	wishlistGroup := api.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlist.IDs)
		wishlistGroup.GET("/pending", r.wishlist.Pending)
		wishlistGroup.POST("/refresh", r.wishlist.Refresh)
		wishlistGroup.GET("/products", r.wishlist.Products, r.auth.RequireSession)
		wishlistGroup.POST("/:id/toggle", r.wishlist.Toggle, r.auth.RequireSession)
		wishlistGroup.PUT("/:id", r.wishlist.Add, r.auth.RequireSession)
		wishlistGroup.DELETE("/:id", r.wishlist.Remove, r.auth.RequireSession)
	}

	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalog.ListProducts)
		catalogGroup.GET("/products/:id", r.catalog.GetProduct)
		catalogGroup.GET("/categories", r.catalog.ListCategories)
		catalogGroup.GET("/categories/:id", r.catalog.GetCategory)
		catalogGroup.GET("/subcategories", r.catalog.ListSubCategories)
		catalogGroup.GET("/subcategories/:id", r.catalog.GetSubCategory)
		catalogGroup.GET("/brands", r.catalog.ListBrands)
		catalogGroup.GET("/brands/:id", r.catalog.GetBrand)
	}

	accountGroup := api.Group("/account", r.auth.RequireSession)
	{
		accountGroup.GET("/profile", r.account.GetProfile)
		accountGroup.PUT("/profile", r.account.UpdateProfile)
		accountGroup.GET("/addresses", r.account.ListAddresses)
		accountGroup.POST("/addresses", r.account.AddAddress)
		accountGroup.GET("/addresses/:id", r.account.GetAddress)
		accountGroup.DELETE("/addresses/:id", r.account.RemoveAddress)
	}

	orderGroup := api.Group("/orders", r.auth.RequireSession)
	{
		orderGroup.GET("/checkout", r.order.Checkout)
		orderGroup.POST("/cash", r.order.CreateCashOrder)
		orderGroup.POST("/checkout-session", r.order.CreateCheckoutSession)
		orderGroup.GET("/mine", r.order.ListMine)
	}

	adminGroup := api.Group("/admin", r.auth.RequireSession, r.auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/orders", r.order.ListAll)
		adminGroup.GET("/users", r.order.ListUsers)
	}
}
