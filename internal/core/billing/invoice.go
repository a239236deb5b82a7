package billing

import (
	"fmt"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLine computes the customer-side amount of one trip: rate times loading weight,
// less the shortage penalty.
func InvoiceLine(trip domain.TripRecord) (domain.InvoiceLine, error) {
	if err := checkLoadingWeight(&trip); err != nil {
		return domain.InvoiceLine{}, err
	}
	freightAmount := trip.Rate.Mul(trip.LoadingWeight)
	shortage := trip.Shortage()
	return domain.InvoiceLine{
		TripID:         trip.ID,
		FreightAmount:  freightAmount,
		ShortageAmount: shortage,
		TotalAmount:    freightAmount.Sub(shortage),
	}, nil
}

// InvoiceSummary computes a customer invoice over the invoiced trips. Customer invoices
// apply a single flat rate to the batch total; there is no jurisdiction split.
// A nil trip slice is rejected, an empty one yields a zero invoice.
func InvoiceSummary(trips []domain.TripRecord, customerTaxRate decimal.Decimal) (domain.InvoiceSummary, error) {
	if trips == nil {
		return domain.InvoiceSummary{}, fmt.Errorf("%w: invoiced trips are required", apperrors.ErrInvalidRecord)
	}
	if customerTaxRate.IsNegative() {
		return domain.InvoiceSummary{}, fmt.Errorf("%w: customer tax rate %s is negative", apperrors.ErrInvalidConfig, customerTaxRate)
	}

	summary := domain.InvoiceSummary{
		TotalAmountBeforeTax: decimal.Zero,
		TotalFreightAmount:   decimal.Zero,
		TotalShortageAmount:  decimal.Zero,
		TotalFreightWeight:   decimal.Zero,
		TotalShortageWeight:  decimal.Zero,
		TaxRate:              customerTaxRate,
		Lines:                make([]domain.InvoiceLine, 0, len(trips)),
	}

	for i, trip := range trips {
		line, err := InvoiceLine(trip)
		if err != nil {
			return domain.InvoiceSummary{}, fmt.Errorf("invoice line %d: %w", i, err)
		}
		summary.TotalAmountBeforeTax = summary.TotalAmountBeforeTax.Add(line.TotalAmount)
		summary.TotalFreightAmount = summary.TotalFreightAmount.Add(line.FreightAmount)
		summary.TotalShortageAmount = summary.TotalShortageAmount.Add(line.ShortageAmount)
		summary.TotalFreightWeight = summary.TotalFreightWeight.Add(trip.LoadingWeight)
		summary.TotalShortageWeight = summary.TotalShortageWeight.Add(trip.ShortageQty())
		summary.Lines = append(summary.Lines, line)
	}

	summary.TaxAmount = percentOf(summary.TotalAmountBeforeTax, customerTaxRate)
	summary.TotalAfterTax = summary.TotalAmountBeforeTax.Add(summary.TaxAmount)
	return summary, nil
}
