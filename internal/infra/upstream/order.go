package upstream

import (
	"context"
	"net/http"
	"net/url"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
)

type shippingBody struct {
	ShippingAddress entity.ShippingAddress `json:"shippingAddress"`
}

// CreateCashOrder places a cash-on-delivery order for the cart.
func (c *Client) CreateCashOrder(ctx context.Context, cartID string, address entity.ShippingAddress) (*entity.Order, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/orders/" + pathEscape(cartID),
		body:   shippingBody{ShippingAddress: address},
		auth:   authRequired,
		rule:   statusIs("success"),
	})
	if err != nil {
		return nil, err
	}

	order, err := decodeData[entity.Order](env, "POST /orders/:cartId")
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// CreateCheckoutSession opens a hosted payment page that returns the
// shopper to returnURL.
func (c *Client) CreateCheckoutSession(ctx context.Context, cartID, returnURL string, address entity.ShippingAddress) (string, error) {
	path := "/orders/checkout-session/" + pathEscape(cartID)
	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   path,
		query:  url.Values{"url": []string{returnURL}},
		body:   shippingBody{ShippingAddress: address},
		auth:   authRequired,
		rule:   statusIs("success"),
	})
	if err != nil {
		return "", err
	}

	if env.Session == nil || env.Session.URL == "" {
		return "", domainerrors.NewUpstreamError(domainerrors.UpstreamBusiness, "POST "+path, http.StatusOK, env.reason(), nil)
	}

	return env.Session.URL, nil
}

// ListUserOrders lists one user's orders. The endpoint is not token gated
// but the token is sent when present.
func (c *Client) ListUserOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders/user/" + pathEscape(userID),
		auth:   authOptional,
		rule:   anyStatus,
	})
	if err != nil {
		return nil, err
	}

	return decodeData[[]entity.Order](env, "GET /orders/user/:id")
}

// ListAllOrders is administrative.
func (c *Client) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders",
		auth:   authRequired,
		rule:   anyStatus,
	})
	if err != nil {
		return nil, err
	}

	return decodeData[[]entity.Order](env, "GET /orders")
}
