package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("formats id without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("formats param and id with cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t,
			"object not found: param is: order, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non string ids keep fmt verbs visible", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("value is invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("price", errors.New("negative"))

		assert.Equal(t, "value is invalid: price (cause: negative)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("value is required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("message")

		assert.Equal(t, "value is required: message", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("value is out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("delivery days", 400, 1, 365)

		assert.Equal(t, 400, err.Value)
		assert.Equal(t, "value is invalid: 400 is delivery days, min value is 1, max value is 365", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("out of range messages stay on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("version is invalid", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("version", errors.New("stale"))

		assert.Equal(t, "version is invalid: version (cause: stale)", err.Error())
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		assert.Equal(t, "version is invalid: version", errs.NewVersionIsInvalidErrorWithCause("version").Error())
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("includes actor resource and reason", func(t *testing.T) {
		err := errs.NewUnauthorizedError("u-1", "order o-1", "caller is not the seller")

		assert.Equal(t, "actor is not authorized: actor u-1 on order o-1: caller is not the seller", err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("reason is optional", func(t *testing.T) {
		err := errs.NewUnauthorizedError("u-1", "order o-1", "")
		assert.Equal(t, "actor is not authorized: actor u-1 on order o-1", err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("deliver: %w", errs.NewUnauthorizedError("u-1", "order", ""))

		var target *errs.UnauthorizedError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "u-1", target.ActorID)
		require.ErrorIs(t, wrapped, errs.ErrUnauthorized)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
	assert.NotErrorIs(t, errs.ErrConcurrentModification, errs.ErrObjectAlreadyExists)
}
