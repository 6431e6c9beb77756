package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// FeePolicy holds the platform's fee rates as fractions of the package price.
type FeePolicy struct {
	buyerServiceRate     decimal.Decimal
	sellerCommissionRate decimal.Decimal
}

// NewFeePolicy validates that both rates lie in [0, 1].
//
// Example:
//
//	policy, err := order.NewFeePolicy(decimal.RequireFromString("0.05"), decimal.RequireFromString("0.20"))
func NewFeePolicy(buyerServiceRate, sellerCommissionRate decimal.Decimal) (FeePolicy, error) {
	if err := errors.Join(
		validateRate("buyer service rate", buyerServiceRate),
		validateRate("seller commission rate", sellerCommissionRate),
	); err != nil {
		return FeePolicy{}, err
	}
	return FeePolicy{buyerServiceRate: buyerServiceRate, sellerCommissionRate: sellerCommissionRate}, nil
}

func (p FeePolicy) BuyerServiceRate() decimal.Decimal {
	return p.buyerServiceRate
}

func (p FeePolicy) SellerCommissionRate() decimal.Decimal {
	return p.sellerCommissionRate
}

// Price derives the monetary fields of an order from a package snapshot.
//
//	buyerFee     = round(price * buyerServiceRate)
//	commission   = round(price * sellerCommissionRate)
//	platformFee  = buyerFee + commission
//	totalCharged = price + buyerFee
//	sellerNet    = price - commission
func (p FeePolicy) Price(pkg Package) (Pricing, error) {
	base := pkg.Price()

	buyerFee, err := base.MulRate(p.buyerServiceRate)
	if err != nil {
		return Pricing{}, err
	}
	commission, err := base.MulRate(p.sellerCommissionRate)
	if err != nil {
		return Pricing{}, err
	}
	sellerNet, err := base.Sub(commission)
	if err != nil {
		return Pricing{}, err
	}
	platformFee, err := buyerFee.Add(commission)
	if err != nil {
		return Pricing{}, err
	}
	totalCharged, err := base.Add(buyerFee)
	if err != nil {
		return Pricing{}, err
	}

	return Pricing{
		base:         base,
		buyerFee:     buyerFee,
		commission:   commission,
		platformFee:  platformFee,
		totalCharged: totalCharged,
		sellerNet:    sellerNet,
	}, nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError(name, rate, 0, 1)
	}
	return nil
}

// Pricing is the set of monetary fields computed once at order creation.
type Pricing struct {
	base         kernel.Money
	buyerFee     kernel.Money
	commission   kernel.Money
	platformFee  kernel.Money
	totalCharged kernel.Money
	sellerNet    kernel.Money
}

// RestorePricing rebuilds stored monetary fields without recomputing them.
func RestorePricing(base, buyerFee, commission, platformFee, totalCharged, sellerNet kernel.Money) Pricing {
	return Pricing{
		base:         base,
		buyerFee:     buyerFee,
		commission:   commission,
		platformFee:  platformFee,
		totalCharged: totalCharged,
		sellerNet:    sellerNet,
	}
}

func (p Pricing) Base() kernel.Money { return p.base }
func (p Pricing) BuyerFee() kernel.Money { return p.buyerFee }
func (p Pricing) Commission() kernel.Money { return p.commission }
func (p Pricing) PlatformFee() kernel.Money { return p.platformFee }
func (p Pricing) TotalCharged() kernel.Money { return p.totalCharged }
func (p Pricing) SellerNet() kernel.Money { return p.sellerNet }
