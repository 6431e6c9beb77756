package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MaxPackagePriceCents caps a package price at 1,000,000.00.
const MaxPackagePriceCents int64 = 100_000_000

// Package is the snapshot of the seller's catalog package taken at checkout.
// Later catalog edits never reach an existing order.
type Package struct {
	name         string
	deliveryDays int
	revisions    int
	price        kernel.Money
}

// NewPackage validates the commercial terms of a package.
//
// Example:
//
//	pkg, err := order.NewPackage("Standard", 3, 2, kernel.MustMoney(10000))
func NewPackage(name string, deliveryDays, revisions int, price kernel.Money) (Package, error) {
	p := Package{}
	if err := errors.Join(
		p.setName(name),
		p.setDeliveryDays(deliveryDays),
		p.setRevisions(revisions),
		p.setPrice(price),
	); err != nil {
		return Package{}, err
	}
	return p, nil
}

func (p Package) Name() string {
	return p.name
}

func (p Package) DeliveryDays() int {
	return p.deliveryDays
}

// Revisions is the revision allowance of the package.
func (p Package) Revisions() int {
	return p.revisions
}

func (p Package) Price() kernel.Money {
	return p.price
}

func (p *Package) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("package name")
	}
	p.name = name
	return nil
}

func (p *Package) setDeliveryDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery days", fmt.Errorf("%d is not greater than 0", days))
	}
	p.deliveryDays = days
	return nil
}

func (p *Package) setRevisions(revisions int) error {
	if revisions < 0 {
		return errs.NewValueIsInvalidErrorWithCause("revisions", fmt.Errorf("%d is negative", revisions))
	}
	p.revisions = revisions
	return nil
}

func (p *Package) setPrice(price kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("package price", errors.New("price must be greater than 0"))
	}
	if price.Cents() > MaxPackagePriceCents {
		return errs.NewValueIsOutOfRangeError("package price", price.Cents(), 1, MaxPackagePriceCents)
	}
	p.price = price
	return nil
}
