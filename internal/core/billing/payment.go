package billing

import (
	"fmt"

	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumFreightLines runs FreightLine over every trip and sums freight, expense and shortage
// independently. The components are summed rather than the netted lines so that each
// line item stays auditable, and partial results combine with PaymentTotals.Add.
func SumFreightLines(trips []domain.TripRecord) (domain.PaymentTotals, []domain.FreightLine, error) {
	totals := domain.PaymentTotals{
		TotalFreightAmount:  decimal.Zero,
		TotalExpense:        decimal.Zero,
		TotalShortageAmount: decimal.Zero,
	}
	lines := make([]domain.FreightLine, 0, len(trips))

	for i := range trips {
		line, err := FreightLine(&trips[i])
		if err != nil {
			return domain.PaymentTotals{}, nil, fmt.Errorf("freight line %d: %w", i, err)
		}
		totals.TripCount++
		totals.TotalFreightAmount = totals.TotalFreightAmount.Add(line.FreightAmount)
		totals.TotalExpense = totals.TotalExpense.Add(line.TotalExpense)
		totals.TotalShortageAmount = totals.TotalShortageAmount.Add(line.ShortageAmount)
		lines = append(lines, line)
	}
	return totals, lines, nil
}

// PaymentSummary computes the transporter payment for a batch of trips.
//
// Tax is levied on the gross freight total, not on the pre-tax income: tax is owed on
// billed freight regardless of the payer's expense recovery. Additional charges are
// layered on after tax with their sign as given.
func PaymentSummary(
	trips []domain.TripRecord,
	profile domain.CounterpartyTaxProfile,
	charges []domain.AdditionalCharge,
	cfg domain.TaxRuleConfig,
) (domain.PaymentSummary, error) {
	totals, lines, err := SumFreightLines(trips)
	if err != nil {
		return domain.PaymentSummary{}, err
	}

	taxBreakup, err := TaxBreakup(profile, totals.TotalFreightAmount, cfg)
	if err != nil {
		return domain.PaymentSummary{}, fmt.Errorf("tax breakup: %w", err)
	}

	totalCharges := SumAdditionalCharges(charges)
	preTaxIncome := totals.Net()

	return domain.PaymentSummary{
		PaymentTotals:          totals,
		PreTaxIncome:           preTaxIncome,
		TaxBreakup:             taxBreakup,
		TotalAdditionalCharges: totalCharges,
		NetIncome:              preTaxIncome.Sub(taxBreakup.TotalTaxDeducted).Add(totalCharges),
		Lines:                  lines,
	}, nil
}

// SumAdditionalCharges adds up signed charge amounts.
func SumAdditionalCharges(charges []domain.AdditionalCharge) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		total = total.Add(c.Amount)
	}
	return total
}
