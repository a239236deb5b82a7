package billing

import (
	"fmt"
	"strings"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// TaxBreakup computes GST and TDS on taxableBase for the given counterparty.
//
// TDS applies in every case. When the counterparty is GST registered the payer's home
// state decides the regime: same state splits the default rate into CGST and SGST,
// any other state charges IGST at twice the default rate. GST is reverse charge for the
// payer, so TotalTaxDeducted is the TDS amount only.
//
// A negative taxableBase is accepted and yields negative amounts.
func TaxBreakup(profile domain.CounterpartyTaxProfile, taxableBase decimal.Decimal, cfg domain.TaxRuleConfig) (domain.TaxBreakup, error) {
	if cfg.DefaultGSTRate.IsNegative() {
		return domain.TaxBreakup{}, fmt.Errorf("%w: default GST rate %s is negative", apperrors.ErrInvalidConfig, cfg.DefaultGSTRate)
	}
	tdsRate := profile.TDS()
	if tdsRate.IsNegative() || tdsRate.GreaterThan(hundred) {
		return domain.TaxBreakup{}, fmt.Errorf("%w: TDS rate %s outside 0-100", apperrors.ErrInvalidRecord, tdsRate)
	}

	tds := domain.TaxLeg{Rate: tdsRate, Amount: percentOf(taxableBase, tdsRate)}
	breakup := domain.TaxBreakup{
		CGST:             zeroLeg(),
		SGST:             zeroLeg(),
		IGST:             zeroLeg(),
		TDS:              tds,
		TotalTaxDeducted: tds.Amount,
	}
	if !profile.GSTEnabled {
		return breakup, nil
	}

	if Regime(profile, cfg) == domain.RegimeIntraState {
		leg := domain.TaxLeg{Rate: cfg.DefaultGSTRate, Amount: percentOf(taxableBase, cfg.DefaultGSTRate)}
		breakup.CGST = leg
		breakup.SGST = leg
	} else {
		igstRate := cfg.DefaultGSTRate.Mul(two)
		breakup.IGST = domain.TaxLeg{Rate: igstRate, Amount: percentOf(taxableBase, igstRate)}
	}
	return breakup, nil
}

// IsIntraState reports whether the counterparty sits in the payer's home state.
// States are compared case-insensitively.
func IsIntraState(profile domain.CounterpartyTaxProfile, cfg domain.TaxRuleConfig) bool {
	return strings.EqualFold(profile.HomeState, cfg.HomeState)
}

// Regime classifies which GST treatment TaxBreakup applies to the counterparty.
func Regime(profile domain.CounterpartyTaxProfile, cfg domain.TaxRuleConfig) domain.TaxRegime {
	switch {
	case !profile.GSTEnabled:
		return domain.RegimeGSTExempt
	case IsIntraState(profile, cfg):
		return domain.RegimeIntraState
	default:
		return domain.RegimeInterState
	}
}

func zeroLeg() domain.TaxLeg {
	return domain.TaxLeg{Rate: decimal.Zero, Amount: decimal.Zero}
}
