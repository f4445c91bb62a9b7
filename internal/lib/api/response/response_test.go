package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, Error("boom"))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type request struct {
		Name     string `validate:"required"`
		Duration int    `validate:"gte=1"`
		Other    string `validate:"email"`
	}

	err := validator.New().Struct(request{Duration: 0, Other: "nope"})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.ErrorAs(t, err, &validateErr)

	resp := ValidationError(validateErr)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field Name is a required field, field Duration must be at least 1, field Other is not valid",
		resp.Error,
	)
}
