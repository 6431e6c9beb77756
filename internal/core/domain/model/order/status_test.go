package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_StringAndParse(t *testing.T) {
	for _, s := range order.AllStatuses() {
		parsed, err := order.ParseStatus(s.String())

		require.NoError(t, err, s)
		assert.Equal(t, s, parsed)
		assert.NoError(t, s.Validate())
	}

	assert.Equal(t, "revision_requested", order.RevisionRequested.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_InvalidValues(t *testing.T) {
	_, err := order.ParseStatus("shipped")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("unknown")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range order.AllStatuses() {
		assert.Equal(t, s == order.Cancelled, s.IsTerminal(), s)
	}
}

func TestRole_StringAndParse(t *testing.T) {
	for _, r := range order.AllRoles() {
		parsed, err := order.ParseRole(r.String())

		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := order.ParseRole("courier")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
}
