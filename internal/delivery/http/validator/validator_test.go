package validator

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(service.Credentials{Email: "ada@example.com", Password: "x"}))

	err := v.Validate(service.Credentials{Email: "not-an-email"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Contains(t, appErr.Details(), "email email")
		assert.Contains(t, appErr.Details(), "password required")
	}

	err = v.Validate(entity.ShippingAddress{Details: "12 Nile St"})
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Contains(t, appErr.Details(), "phone required")
		assert.Contains(t, appErr.Details(), "city required")
	}

	err = v.Validate(service.SignUpInput{Name: "A", Email: "a@b.co", Password: "secret1", RePassword: "secret2", Phone: "1"})
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Contains(t, appErr.Details(), "rePassword eqfield")
	}
}
