package upstream

import (
	"context"
	"net/http"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// SignIn posts credentials; success is message == "success".
func (c *Client) SignIn(ctx context.Context, creds service.Credentials) (*service.AuthResult, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/signin",
		body:   creds,
		rule:   messageIs("success"),
	})
	if err != nil {
		return nil, err
	}

	return authResult(env, "POST /auth/signin")
}

// SignUp registers an account; success is message == "success".
func (c *Client) SignUp(ctx context.Context, input service.SignUpInput) (*service.AuthResult, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/signup",
		body:   input,
		rule:   messageIs("success"),
	})
	if err != nil {
		return nil, err
	}

	return authResult(env, "POST /auth/signup")
}

// ForgotPassword asks for a reset code by email; success is statusMsg == "success".
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/forgotPasswords",
		body:   map[string]string{"email": email},
		rule:   statusMsgIs("success"),
	})
	if err != nil {
		return "", err
	}

	return env.Message, nil
}

// VerifyResetCode checks an emailed code; success is status == "Success".
func (c *Client) VerifyResetCode(ctx context.Context, code string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/verifyResetCode",
		body:   map[string]string{"resetCode": code},
		rule:   statusIs("Success"),
	})

	return err
}

// ResetPassword sets a new password; success is a token in the response.
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/auth/resetPassword",
		body:   map[string]string{"email": email, "newPassword": newPassword},
		rule:   hasToken,
	})
	if err != nil {
		return "", err
	}

	return env.Token, nil
}

// VerifyToken asks the server whether the stored token is still good.
func (c *Client) VerifyToken(ctx context.Context) (*service.TokenInfo, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/verifyToken",
		auth:   authRequired,
		rule:   anyStatus,
	})
	if err != nil {
		return nil, err
	}

	type decoded struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}

	claims, err := decodeData[decoded](env, "GET /auth/verifyToken")
	if err != nil {
		return nil, err
	}

	return &service.TokenInfo{UserID: claims.ID, Name: claims.Name, Role: entity.Role(claims.Role)}, nil
}

func authResult(env *envelope, endpoint string) (*service.AuthResult, error) {
	if env.Token == "" {
		return nil, domainerrors.NewUpstreamError(domainerrors.UpstreamBusiness, endpoint, http.StatusOK, "no token issued", nil)
	}

	return &service.AuthResult{Token: env.Token, User: env.User}, nil
}
