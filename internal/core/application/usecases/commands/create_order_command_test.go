package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id, buyerID, sellerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	pkg := testPackage(t)

	cmd, err := commands.NewCreateOrderCommand(id, buyerID, sellerID, pkg, "  4K, 60 seconds  ")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, buyerID, cmd.BuyerID())
	assert.Equal(t, sellerID, cmd.SellerID())
	assert.Equal(t, pkg, cmd.Package())
	assert.Equal(t, "4K, 60 seconds", cmd.Requirements())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), testPackage(t), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_MissingParties(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, testPackage(t), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buyer id")
	assert.Contains(t, err.Error(), "seller id")
}

func TestNewCreateOrderCommand_MissingPackage(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.Package{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
