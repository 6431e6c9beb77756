package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	pkg, err := order.NewPackage(" Basic ", 2, 0, kernel.MustMoney(2500))
	require.NoError(t, err)
	assert.Equal(t, "Basic", pkg.Name())
	assert.Equal(t, 2, pkg.DeliveryDays())
	assert.Zero(t, pkg.Revisions())

	_, err = order.NewPackage("", 0, -1, kernel.MustMoney(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "delivery days")
	assert.Contains(t, err.Error(), "revisions")
	assert.Contains(t, err.Error(), "package price")
}

func TestNewPackage_PriceCap(t *testing.T) {
	pkg, err := order.NewPackage("Feature film", 30, 5, kernel.MustMoney(order.MaxPackagePriceCents))
	require.NoError(t, err)

	policy, err := order.NewFeePolicy(decimal.NewFromInt(1), decimal.NewFromInt(1))
	require.NoError(t, err)
	pricing, err := policy.Price(pkg)
	require.NoError(t, err)
	assert.Equal(t, 2*order.MaxPackagePriceCents, pricing.TotalCharged().Cents())

	_, err = order.NewPackage("Huge", 3, 1, kernel.MustMoney(9e18))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestFeePolicy_Price(t *testing.T) {
	tests := []struct {
		name                                                string
		price                                               int64
		buyerRate, sellerRate                               string
		buyerFee, commission, platformFee, total, sellerNet int64
	}{
		{"default rates", 10000, "0.05", "0.20", 500, 2000, 2500, 10500, 8000},
		{"rounding half up", 1010, "0.05", "0.20", 51, 202, 253, 1061, 808},
		{"no fees", 999, "0", "0", 0, 0, 0, 999, 999},
		{"full commission", 5000, "0", "1", 0, 5000, 5000, 5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, err := order.NewPackage("p", 1, 1, kernel.MustMoney(tt.price))
			require.NoError(t, err)
			policy, err := order.NewFeePolicy(decimal.RequireFromString(tt.buyerRate), decimal.RequireFromString(tt.sellerRate))
			require.NoError(t, err)

			pricing, err := policy.Price(pkg)

			require.NoError(t, err)
			assert.Equal(t, tt.price, pricing.Base().Cents())
			assert.Equal(t, tt.buyerFee, pricing.BuyerFee().Cents())
			assert.Equal(t, tt.commission, pricing.Commission().Cents())
			assert.Equal(t, tt.platformFee, pricing.PlatformFee().Cents())
			assert.Equal(t, tt.total, pricing.TotalCharged().Cents())
			assert.Equal(t, tt.sellerNet, pricing.SellerNet().Cents())
		})
	}
}

func TestNewFeePolicy_RejectsRatesOutsideUnitInterval(t *testing.T) {
	_, err := order.NewFeePolicy(decimal.RequireFromString("-0.01"), decimal.RequireFromString("1.5"))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "buyer service rate")
	assert.Contains(t, err.Error(), "seller commission rate")
}
