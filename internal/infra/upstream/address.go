package upstream

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
)

// ListAddresses returns the saved addresses.
func (c *Client) ListAddresses(ctx context.Context) ([]entity.Address, error) {
	return c.addressCall(ctx, request{
		method: http.MethodGet,
		path:   "/addresses",
		auth:   authRequired,
		rule:   anyStatus,
	})
}

// GetAddress returns one saved address.
func (c *Client) GetAddress(ctx context.Context, id string) (*entity.Address, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/addresses/" + pathEscape(id),
		auth:   authRequired,
		rule:   hasData,
	})
	if err != nil {
		return nil, err
	}

	address, err := decodeData[entity.Address](env, "GET /addresses/:id")
	if err != nil {
		return nil, err
	}

	return &address, nil
}

// AddAddress saves an address and returns the full list.
func (c *Client) AddAddress(ctx context.Context, address entity.Address) ([]entity.Address, error) {
	address.ID = ""

	return c.addressCall(ctx, request{
		method: http.MethodPost,
		path:   "/addresses",
		body:   address,
		auth:   authRequired,
		rule:   statusIs("success"),
	})
}

// RemoveAddress deletes an address and returns the full list.
func (c *Client) RemoveAddress(ctx context.Context, id string) ([]entity.Address, error) {
	return c.addressCall(ctx, request{
		method: http.MethodDelete,
		path:   "/addresses/" + pathEscape(id),
		auth:   authRequired,
		rule:   statusIs("success"),
	})
}

func (c *Client) addressCall(ctx context.Context, req request) ([]entity.Address, error) {
	env, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeData[[]entity.Address](env, req.endpoint())
}
