// Package billing holds the pure computations that turn trip records into freight
// payments, driver payroll and customer invoices. Nothing here performs I/O or keeps
// state; every function returns a freshly built value and leaves its inputs untouched.
package billing

import (
	"fmt"
	"math"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FreightLine computes the transporter-side breakdown of one trip.
// A nil trip yields a zero line so that partially populated batches can still be summed.
func FreightLine(trip *domain.TripRecord) (domain.FreightLine, error) {
	if trip == nil {
		return domain.FreightLine{
			EffectiveRate:  decimal.Zero,
			FreightAmount:  decimal.Zero,
			TotalExpense:   decimal.Zero,
			ShortageAmount: decimal.Zero,
			NetPayable:     decimal.Zero,
		}, nil
	}
	if err := checkLoadingWeight(trip); err != nil {
		return domain.FreightLine{}, err
	}

	effectiveRate := trip.FreightRate.Sub(trip.Commission())
	freightAmount := effectiveRate.Mul(trip.LoadingWeight)
	totalExpense := trip.TotalExpense()
	shortage := trip.Shortage()

	return domain.FreightLine{
		TripID:         trip.ID,
		EffectiveRate:  effectiveRate,
		FreightAmount:  freightAmount,
		TotalExpense:   totalExpense,
		ShortageAmount: shortage,
		NetPayable:     freightAmount.Sub(totalExpense).Sub(shortage),
	}, nil
}

// DecimalFromFloat converts a float coming from an upstream store into a decimal.
// NaN and infinities are rejected as invalid records; decimal.NewFromFloat would panic on them.
func DecimalFromFloat(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: %s is not a finite number", apperrors.ErrInvalidRecord, field)
	}
	return decimal.NewFromFloat(v), nil
}

func checkLoadingWeight(trip *domain.TripRecord) error {
	if trip.LoadingWeight.IsNegative() {
		return fmt.Errorf("%w: trip %s has negative loading weight %s", apperrors.ErrInvalidRecord, trip.ID, trip.LoadingWeight)
	}
	return nil
}

// percentOf returns base * rate / 100 without rounding.
func percentOf(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Shift(-2)
}
