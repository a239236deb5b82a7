package domain

import "github.com/shopspring/decimal"

// ExpenseTypeDriverSalary tags the expense entries that make up a driver's earning on a trip.
const ExpenseTypeDriverSalary = "driver-salary"

// ExpenseEntry is a single expense booked against a trip.
type ExpenseEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	ExpenseType string          `json:"expenseType"`
}

// TripRecord represents one freight movement leg (a "subtrip").
// Optional numerics are NullDecimal; use the accessor methods, which default to zero.
type TripRecord struct {
	ID             string              `json:"id"`
	FreightRate    decimal.Decimal     `json:"freightRate"`    // Transporter unit rate
	CommissionRate decimal.NullDecimal `json:"commissionRate"` // Deducted from FreightRate
	Rate           decimal.Decimal     `json:"rate"`           // Customer billing unit rate
	LoadingWeight  decimal.Decimal     `json:"loadingWeight"`  // Must be >= 0
	ShortageAmount decimal.NullDecimal `json:"shortageAmount"`
	ShortageWeight decimal.NullDecimal `json:"shortageWeight"`
	Expenses       []ExpenseEntry      `json:"expenses"`
}

// Commission returns the commission rate, or zero when absent.
func (t TripRecord) Commission() decimal.Decimal {
	return valueOrZero(t.CommissionRate)
}

// Shortage returns the shortage penalty, or zero when absent.
func (t TripRecord) Shortage() decimal.Decimal {
	return valueOrZero(t.ShortageAmount)
}

// ShortageQty returns the shortage weight, or zero when absent.
func (t TripRecord) ShortageQty() decimal.Decimal {
	return valueOrZero(t.ShortageWeight)
}

// TotalExpense sums every expense entry regardless of type.
func (t TripRecord) TotalExpense() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ExpenseTotalByType sums the expense entries tagged with expenseType.
func (t TripRecord) ExpenseTotalByType(expenseType string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Expenses {
		if e.ExpenseType == expenseType {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// NewOptional wraps a present value as a NullDecimal.
func NewOptional(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

func valueOrZero(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}
