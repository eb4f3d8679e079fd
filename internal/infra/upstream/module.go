package upstream

import (
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the upstream client under every port it implements
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		func(c *Client) service.AuthAPI { return c },
		func(c *Client) service.CatalogAPI { return c },
		func(c *Client) service.CartAPI { return c },
		func(c *Client) service.WishlistAPI { return c },
		func(c *Client) service.AddressAPI { return c },
		func(c *Client) service.UserAPI { return c },
		func(c *Client) service.OrderAPI { return c },
	),
)

var (
	_ service.AuthAPI     = (*Client)(nil)
	_ service.CatalogAPI  = (*Client)(nil)
	_ service.CartAPI     = (*Client)(nil)
	_ service.WishlistAPI = (*Client)(nil)
	_ service.AddressAPI  = (*Client)(nil)
	_ service.UserAPI     = (*Client)(nil)
	_ service.OrderAPI    = (*Client)(nil)
)
