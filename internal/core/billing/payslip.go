package billing

import (
	"fmt"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DriverSalaryForTrip is the driver's earning on one trip: the sum of the trip's
// expenses tagged driver-salary. It is not derived from the freight economics.
func DriverSalaryForTrip(trip domain.TripRecord) decimal.Decimal {
	return trip.ExpenseTotalByType(domain.ExpenseTypeDriverSalary)
}

// PayslipSummary folds trip earnings, salary components and loan installments into a
// driver's net salary.
func PayslipSummary(payslip *domain.Payslip) (domain.PayslipSummary, error) {
	if payslip == nil {
		return domain.PayslipSummary{}, fmt.Errorf("%w: payslip is required", apperrors.ErrInvalidRecord)
	}

	tripWise := decimal.Zero
	for _, trip := range payslip.SubtripComponents {
		tripWise = tripWise.Add(DriverSalaryForTrip(trip))
	}

	fixed := decimal.Zero
	deductions := decimal.Zero
	unclassified := decimal.Zero
	for _, c := range payslip.OtherSalaryComponents {
		switch c.PaymentType {
		case domain.FixedSalary:
			fixed = fixed.Add(c.Amount)
		case domain.PenaltyDeduction:
			deductions = deductions.Add(c.Amount)
		default:
			unclassified = unclassified.Add(c.Amount)
		}
	}

	repayments := decimal.Zero
	for _, loan := range payslip.SelectedLoans {
		repayments = repayments.Add(loan.InstallmentAmount)
	}

	return domain.PayslipSummary{
		TotalFixedIncome:    fixed,
		TotalTripWiseIncome: tripWise,
		TotalDeductions:     deductions,
		TotalRepayments:     repayments,
		NetSalary:           fixed.Add(tripWise).Sub(deductions).Sub(repayments),
		TotalUnclassified:   unclassified,
	}, nil
}
