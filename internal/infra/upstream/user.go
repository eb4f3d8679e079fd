package upstream

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// GetMe returns the signed-in account.
func (c *Client) GetMe(ctx context.Context) (*entity.Profile, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/getMe",
		auth:   authRequired,
		rule:   hasData,
	})
	if err != nil {
		return nil, err
	}

	profile, err := decodeData[entity.Profile](env, "GET /users/getMe")
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateMe edits the signed-in account.
func (c *Client) UpdateMe(ctx context.Context, update service.ProfileUpdate) (*entity.User, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/users/updateMe/",
		body:   update,
		auth:   authRequired,
		rule:   messageIs("success"),
	})
	if err != nil {
		return nil, err
	}

	return env.User, nil
}

// ChangePassword succeeds on status == "success" or on a reissued token.
func (c *Client) ChangePassword(ctx context.Context, change service.PasswordChange) (string, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/users/changeMyPassword",
		body:   change,
		auth:   authRequired,
		rule:   anyOf(statusIs("success"), hasToken),
	})
	if err != nil {
		return "", err
	}

	return env.Token, nil
}

// ListUsers is administrative.
func (c *Client) ListUsers(ctx context.Context) ([]entity.Profile, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users",
		auth:   authRequired,
		rule:   anyStatus,
	})
	if err != nil {
		return nil, err
	}

	return decodeData[[]entity.Profile](env, "GET /users")
}
