package domain

import "github.com/shopspring/decimal"

// FreightLine is the monetary breakdown of a single trip for the transporter side.
type FreightLine struct {
	TripID         string          `json:"tripID"`
	EffectiveRate  decimal.Decimal `json:"effectiveRate"`
	FreightAmount  decimal.Decimal `json:"freightAmount"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	ShortageAmount decimal.Decimal `json:"shortageAmount"`
	NetPayable     decimal.Decimal `json:"netPayable"`
}

// PaymentTotals holds the independently summed line components of a payment batch.
type PaymentTotals struct {
	TripCount           int             `json:"tripCount"`
	TotalFreightAmount  decimal.Decimal `json:"totalFreightAmount"`
	TotalExpense        decimal.Decimal `json:"totalExpense"`
	TotalShortageAmount decimal.Decimal `json:"totalShortageAmount"`
}

// Add combines two partial batches.
func (t PaymentTotals) Add(other PaymentTotals) PaymentTotals {
	return PaymentTotals{
		TripCount:           t.TripCount + other.TripCount,
		TotalFreightAmount:  t.TotalFreightAmount.Add(other.TotalFreightAmount),
		TotalExpense:        t.TotalExpense.Add(other.TotalExpense),
		TotalShortageAmount: t.TotalShortageAmount.Add(other.TotalShortageAmount),
	}
}

// Net is freight minus expense minus shortage.
func (t PaymentTotals) Net() decimal.Decimal {
	return t.TotalFreightAmount.Sub(t.TotalExpense).Sub(t.TotalShortageAmount)
}

// PaymentSummary is the computed transporter payment for a batch of trips.
type PaymentSummary struct {
	PaymentTotals
	PreTaxIncome           decimal.Decimal `json:"preTaxIncome"`
	TaxBreakup             TaxBreakup      `json:"taxBreakup"`
	TotalAdditionalCharges decimal.Decimal `json:"totalAdditionalCharges"`
	NetIncome              decimal.Decimal `json:"netIncome"`
	Lines                  []FreightLine   `json:"lines"`
}

// PayslipSummary is the computed driver payroll.
type PayslipSummary struct {
	TotalFixedIncome    decimal.Decimal `json:"totalFixedIncome"`
	TotalTripWiseIncome decimal.Decimal `json:"totalTripWiseIncome"`
	TotalDeductions     decimal.Decimal `json:"totalDeductions"`
	TotalRepayments     decimal.Decimal `json:"totalRepayments"`
	NetSalary           decimal.Decimal `json:"netSalary"`
	// Components with a payment type outside Fixed Salary and Penalty Deduction.
	// Reported only; they do not move NetSalary.
	TotalUnclassified decimal.Decimal `json:"totalUnclassified"`
}

// InvoiceLine is the customer-side breakdown of one invoiced trip.
type InvoiceLine struct {
	TripID         string          `json:"tripID"`
	FreightAmount  decimal.Decimal `json:"freightAmount"`
	ShortageAmount decimal.Decimal `json:"shortageAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// InvoiceSummary is the computed customer invoice for a batch of trips.
type InvoiceSummary struct {
	TotalAmountBeforeTax decimal.Decimal `json:"totalAmountBeforeTax"`
	TotalFreightAmount   decimal.Decimal `json:"totalFreightAmount"`
	TotalShortageAmount  decimal.Decimal `json:"totalShortageAmount"`
	TotalFreightWeight   decimal.Decimal `json:"totalFreightWeight"`
	TotalShortageWeight  decimal.Decimal `json:"totalShortageWeight"`
	TaxRate              decimal.Decimal `json:"taxRate"`
	TaxAmount            decimal.Decimal `json:"taxAmount"`
	TotalAfterTax        decimal.Decimal `json:"totalAfterTax"`
	Lines                []InvoiceLine   `json:"lines"`
}
