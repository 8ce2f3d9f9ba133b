package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/parkgo/internal/domain"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Nick     string `validate:"max=3"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(signup{Email: "a@b.co", Password: "secret"}))
	})

	t.Run("field messages use json names", func(t *testing.T) {
		err := Struct(signup{Email: "not-an-email", Nick: "toolong"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{
			"email":    "must be a well-formed email address",
			"password": "must not be blank",
			"nick":     "must be at most 3 characters",
		}, verr.Fields)
	})

	t.Run("min length", func(t *testing.T) {
		err := Struct(signup{Email: "a@b.co", Password: "abc"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "must be at least 6 characters", verr.Fields["password"])
	})
}

type lotBody struct {
	Busy *bool `binding:"required" validate:"required"`
}

func TestFromBinding(t *testing.T) {
	assert.NoError(t, FromBinding(nil))

	err := FromBinding(instance().Struct(lotBody{}))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must not be blank", verr.Fields["busy"])

	err = FromBinding(errors.New("unexpected EOF"))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "body")
}
