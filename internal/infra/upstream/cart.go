package upstream

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
)

// GetCart fetches the session's cart.
func (c *Client) GetCart(ctx context.Context) (*entity.CartView, error) {
	return c.cartCall(ctx, request{
		method: http.MethodGet,
		path:   "/cart",
		auth:   authRequired,
		rule:   anyStatus,
	})
}

// AddToCart adds one unit of a product.
func (c *Client) AddToCart(ctx context.Context, productID string) (*entity.CartView, error) {
	return c.cartCall(ctx, request{
		method: http.MethodPost,
		path:   "/cart",
		body:   map[string]string{"productId": productID},
		auth:   authRequired,
		rule:   statusIs("success"),
	})
}

// UpdateCartItem sets a line's quantity.
func (c *Client) UpdateCartItem(ctx context.Context, productID string, count int) (*entity.CartView, error) {
	return c.cartCall(ctx, request{
		method: http.MethodPut,
		path:   "/cart/" + pathEscape(productID),
		body:   map[string]int{"count": count},
		auth:   authRequired,
		rule:   statusIs("success"),
	})
}

// RemoveCartItem drops a line.
func (c *Client) RemoveCartItem(ctx context.Context, productID string) (*entity.CartView, error) {
	return c.cartCall(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/" + pathEscape(productID),
		auth:   authRequired,
		rule:   statusIs("success"),
	})
}

// ClearCart empties the cart; this endpoint reports success via message.
func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart",
		auth:   authRequired,
		rule:   messageIs("success"),
	})

	return err
}

func (c *Client) cartCall(ctx context.Context, req request) (*entity.CartView, error) {
	env, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	cart, err := decodeCart(env, req.endpoint())
	if err != nil {
		return nil, err
	}

	return &entity.CartView{ItemCount: env.NumOfCartItems, Cart: cart}, nil
}

// decodeCart tolerates mutation responses whose line products are bare ids.
func decodeCart(env *envelope, endpoint string) (*entity.Cart, error) {
	if !env.hasData() {
		return nil, nil
	}

	cart, err := decodeData[entity.Cart](env, endpoint)
	if err == nil {
		return &cart, nil
	}

	type flatLine struct {
		ID      string  `json:"_id"`
		Count   int     `json:"count"`
		Price   float64 `json:"price"`
		Product string  `json:"product"`
	}
	type flatCart struct {
		ID             string     `json:"_id"`
		CartOwner      string     `json:"cartOwner"`
		Products       []flatLine `json:"products"`
		TotalCartPrice float64    `json:"totalCartPrice"`
	}

	flat, flatErr := decodeData[flatCart](env, endpoint)
	if flatErr != nil {
		return nil, err
	}

	out := &entity.Cart{
		ID:             flat.ID,
		CartOwner:      flat.CartOwner,
		TotalCartPrice: flat.TotalCartPrice,
		Products:       make([]entity.CartProduct, 0, len(flat.Products)),
	}
	for _, line := range flat.Products {
		out.Products = append(out.Products, entity.CartProduct{
			ID:      line.ID,
			Count:   line.Count,
			Price:   line.Price,
			Product: entity.Product{ID: line.Product},
		})
	}

	return out, nil
}
