package domain

import (
	"fmt"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TaxRuleConfig carries the tax rates the engine applies. It is passed explicitly to
// every calculation.
type TaxRuleConfig struct {
	DefaultGSTRate  decimal.Decimal `json:"defaultGstRate"`  // Per-head CGST/SGST percentage, e.g. 9
	HomeState       string          `json:"homeState"`       // Jurisdiction of the payer
	CustomerTaxRate decimal.Decimal `json:"customerTaxRate"` // Flat percentage on customer invoices
}

// Validate rejects negative rates.
func (c TaxRuleConfig) Validate() error {
	if c.DefaultGSTRate.IsNegative() {
		return fmt.Errorf("%w: default GST rate %s is negative", apperrors.ErrInvalidConfig, c.DefaultGSTRate)
	}
	if c.CustomerTaxRate.IsNegative() {
		return fmt.Errorf("%w: customer tax rate %s is negative", apperrors.ErrInvalidConfig, c.CustomerTaxRate)
	}
	return nil
}

// CounterpartyTaxProfile is the tax registration of a payee such as a transporter.
type CounterpartyTaxProfile struct {
	GSTEnabled bool                `json:"gstEnabled"`
	HomeState  string              `json:"homeState"`
	TDSRate    decimal.NullDecimal `json:"tdsRate"` // Percentage 0-100
}

// TDS returns the TDS percentage, or zero when absent.
func (p CounterpartyTaxProfile) TDS() decimal.Decimal {
	return valueOrZero(p.TDSRate)
}

// TaxRegime names the GST treatment applied to a counterparty.
type TaxRegime string

const (
	RegimeIntraState TaxRegime = "INTRA_STATE" // CGST + SGST
	RegimeInterState TaxRegime = "INTER_STATE" // IGST
	RegimeGSTExempt  TaxRegime = "GST_EXEMPT"  // Not GST registered, TDS only
)

// TaxLeg is one tax head with its applied rate and computed amount.
type TaxLeg struct {
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// TaxBreakup is the full tax computation for one taxable base.
// GST legs are informational (reverse charge); only TDS is deducted from the payable.
type TaxBreakup struct {
	CGST             TaxLeg          `json:"cgst"`
	SGST             TaxLeg          `json:"sgst"`
	IGST             TaxLeg          `json:"igst"`
	TDS              TaxLeg          `json:"tds"`
	TotalTaxDeducted decimal.Decimal `json:"totalTaxDeducted"`
}

// AdditionalCharge is a signed adjustment applied to a payment batch after tax.
// Positive amounts increase the payable.
type AdditionalCharge struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}
