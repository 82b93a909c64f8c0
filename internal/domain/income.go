package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeBasis specifies household income in one of two modes: an after-tax
// figure, or a gross figure with an effective tax rate. When both are given
// the after-tax figure wins; the precedence is deterministic and tested.
type IncomeBasis struct {
	AfterTaxIncome *decimal.Decimal `yaml:"after_tax_income,omitempty" json:"after_tax_income,omitempty"`
	GrossIncome    *decimal.Decimal `yaml:"gross_income,omitempty" json:"gross_income,omitempty"`
	TaxRate        *decimal.Decimal `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
}

// AfterTaxBasis returns a basis specified directly as after-tax income.
func AfterTaxBasis(afterTax decimal.Decimal) IncomeBasis {
	return IncomeBasis{AfterTaxIncome: &afterTax}
}

// GrossBasis returns a basis specified as gross income with a tax rate.
func GrossBasis(gross, taxRate decimal.Decimal) IncomeBasis {
	return IncomeBasis{GrossIncome: &gross, TaxRate: &taxRate}
}

// Resolve returns the after-tax income implied by the basis and whether any
// income was supplied at all. An absent tax rate defaults to zero.
func (ib IncomeBasis) Resolve() (decimal.Decimal, bool) {
	if ib.AfterTaxIncome != nil {
		return *ib.AfterTaxIncome, true
	}
	if ib.GrossIncome != nil {
		rate := decimal.Zero
		if ib.TaxRate != nil {
			rate = *ib.TaxRate
		}
		return ib.GrossIncome.Mul(decimal.NewFromInt(1).Sub(rate)), true
	}
	return decimal.Zero, false
}
