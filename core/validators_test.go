package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Awe", CleanString("  Awe\t"))
	assert.Equal(t, "awe", CleanString("  Awe ", true))
	assert.Equal(t, "", CleanString("   "))
}

func TestTranslateValidationError(t *testing.T) {
	type payload struct {
		Username string `json:"username" validate:"required,alphanum_"`
		Email    string `json:"email" validate:"required,email"`
	}

	t.Run("field errors use json names and readable texts", func(t *testing.T) {
		err := TranslateValidationError(Validate.Struct(payload{Username: "awe!"}))
		var vErr *ValidationError
		if !assert.ErrorAs(t, err, &vErr) {
			return
		}
		assert.Len(t, vErr.Fields, 2)
		assert.Equal(t, "username", vErr.Fields[0].Field)
		assert.Equal(t, "only alphanumeric characters and underscores are allowed", vErr.Fields[0].Error)
		assert.Equal(t, "email", vErr.Fields[1].Field)
		assert.Equal(t, "this field is required", vErr.Fields[1].Error)
	})

	t.Run("valid payload passes", func(t *testing.T) {
		err := TranslateValidationError(Validate.Struct(payload{Username: "awe_1", Email: "awe@test.cd"}))
		assert.NoError(t, err)
	})

	t.Run("foreign errors pass through", func(t *testing.T) {
		boom := assert.AnError
		assert.Equal(t, boom, TranslateValidationError(boom))
	})
}

func TestAPIError(t *testing.T) {
	err := &APIError{Kind: KindBusiness, Status: 200, Code: 4001, Message: "old password does not match"}
	assert.EqualError(t, err, "old password does not match")
	assert.True(t, IsKind(err, KindBusiness))
	assert.Equal(t, KindBusiness, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}
