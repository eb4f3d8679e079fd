package upstream

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
)

// GetWishlist returns the wishlisted products.
func (c *Client) GetWishlist(ctx context.Context) ([]entity.Product, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/wishlist",
		auth:   authRequired,
		rule:   anyStatus,
	})
	if err != nil {
		return nil, err
	}

	return decodeData[[]entity.Product](env, "GET /wishlist")
}

// AddToWishlist adds a product and returns the server's ids afterwards.
func (c *Client) AddToWishlist(ctx context.Context, productID string) ([]string, error) {
	return c.wishlistMutation(ctx, request{
		method: http.MethodPost,
		path:   "/wishlist",
		body:   map[string]string{"productId": productID},
		auth:   authRequired,
		rule:   statusIs("success"),
	})
}

// RemoveFromWishlist removes a product and returns the server's ids afterwards.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) ([]string, error) {
	return c.wishlistMutation(ctx, request{
		method: http.MethodDelete,
		path:   "/wishlist/" + pathEscape(productID),
		auth:   authRequired,
		rule:   statusIs("success"),
	})
}

func (c *Client) wishlistMutation(ctx context.Context, req request) ([]string, error) {
	env, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeData[[]string](env, req.endpoint())
}
