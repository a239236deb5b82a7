package dto

import (
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseRequest is one expense booked against a trip.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	ExpenseType string          `json:"expenseType" binding:"required"`
}

// TripRecordRequest carries a trip ("subtrip") as stored by the back office.
// Decimals may be sent as JSON numbers or strings.
type TripRecordRequest struct {
	ID             string              `json:"id" binding:"max=64"`
	FreightRate    decimal.Decimal     `json:"freightRate"`
	CommissionRate decimal.NullDecimal `json:"commissionRate" binding:"omitempty,gte=0"`
	Rate           decimal.Decimal     `json:"rate" binding:"gte=0"`
	LoadingWeight  decimal.Decimal     `json:"loadingWeight" binding:"gte=0"`
	ShortageAmount decimal.NullDecimal `json:"shortageAmount" binding:"omitempty,gte=0"`
	ShortageWeight decimal.NullDecimal `json:"shortageWeight" binding:"omitempty,gte=0"`
	Expenses       []ExpenseRequest    `json:"expenses" binding:"omitempty,dive"`
}

// TaxProfileRequest is the counterparty's tax registration.
type TaxProfileRequest struct {
	GSTEnabled bool                `json:"gstEnabled"`
	HomeState  string              `json:"homeState"`
	TDSRate    decimal.NullDecimal `json:"tdsRate" binding:"omitempty,gte=0,lte=100"`
}

// AdditionalChargeRequest is a signed post-tax adjustment on a payment.
type AdditionalChargeRequest struct {
	Label  string          `json:"label" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// FreightLineRequest asks for the breakdown of one trip. A missing trip yields a zero line.
type FreightLineRequest struct {
	Trip *TripRecordRequest `json:"trip"`
}

// TaxBreakupRequest asks for GST and TDS on a taxable base.
type TaxBreakupRequest struct {
	Profile     TaxProfileRequest `json:"profile"`
	TaxableBase decimal.Decimal   `json:"taxableBase"`
}

// TransporterPaymentRequest asks for a transporter payment summary.
type TransporterPaymentRequest struct {
	Trips             []TripRecordRequest       `json:"trips" binding:"omitempty,dive"`
	Profile           TaxProfileRequest         `json:"profile"`
	AdditionalCharges []AdditionalChargeRequest `json:"additionalCharges" binding:"omitempty,dive"`
}

// SalaryComponentRequest is a fixed or ad-hoc payslip line.
type SalaryComponentRequest struct {
	PaymentType string          `json:"paymentType" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"gte=0"`
}

// LoanInstallmentRequest is a loan repayment withheld on a payslip.
type LoanInstallmentRequest struct {
	LoanID            string          `json:"loanID"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount" binding:"gte=0"`
}

// DriverPayslipRequest asks for a driver payslip summary.
type DriverPayslipRequest struct {
	DriverID              string                   `json:"driverID" binding:"required"`
	SubtripComponents     []TripRecordRequest      `json:"subtripComponents" binding:"omitempty,dive"`
	OtherSalaryComponents []SalaryComponentRequest `json:"otherSalaryComponents" binding:"omitempty,dive"`
	SelectedLoans         []LoanInstallmentRequest `json:"selectedLoans" binding:"omitempty,dive"`
}

// CustomerInvoiceRequest asks for a customer invoice summary. The trip list must be present.
type CustomerInvoiceRequest struct {
	InvoicedSubtrips []TripRecordRequest `json:"invoicedSubtrips" binding:"required,dive"`
}

// TaxBreakupResponse is a tax breakup labelled with the regime that produced it.
type TaxBreakupResponse struct {
	Regime domain.TaxRegime `json:"regime"`
	domain.TaxBreakup
}

// TransporterPaymentResponse is a payment summary labelled with its GST regime.
type TransporterPaymentResponse struct {
	Regime domain.TaxRegime `json:"regime"`
	domain.PaymentSummary
}

// ToDomain converts the request into a domain trip record.
func (r TripRecordRequest) ToDomain() domain.TripRecord {
	expenses := make([]domain.ExpenseEntry, len(r.Expenses))
	for i, e := range r.Expenses {
		expenses[i] = domain.ExpenseEntry{Amount: e.Amount, ExpenseType: e.ExpenseType}
	}
	return domain.TripRecord{
		ID:             r.ID,
		FreightRate:    r.FreightRate,
		CommissionRate: r.CommissionRate,
		Rate:           r.Rate,
		LoadingWeight:  r.LoadingWeight,
		ShortageAmount: r.ShortageAmount,
		ShortageWeight: r.ShortageWeight,
		Expenses:       expenses,
	}
}

// ToTripRecords converts a slice of trip requests, preserving nil.
func ToTripRecords(reqs []TripRecordRequest) []domain.TripRecord {
	if reqs == nil {
		return nil
	}
	trips := make([]domain.TripRecord, len(reqs))
	for i, r := range reqs {
		trips[i] = r.ToDomain()
	}
	return trips
}

// ToDomain converts the request into a domain tax profile.
func (r TaxProfileRequest) ToDomain() domain.CounterpartyTaxProfile {
	return domain.CounterpartyTaxProfile{
		GSTEnabled: r.GSTEnabled,
		HomeState:  r.HomeState,
		TDSRate:    r.TDSRate,
	}
}

// ToAdditionalCharges converts charge requests into domain charges.
func ToAdditionalCharges(reqs []AdditionalChargeRequest) []domain.AdditionalCharge {
	charges := make([]domain.AdditionalCharge, len(reqs))
	for i, r := range reqs {
		charges[i] = domain.AdditionalCharge{Label: r.Label, Amount: r.Amount}
	}
	return charges
}

// ToDomain converts the request into a domain payslip.
func (r DriverPayslipRequest) ToDomain() *domain.Payslip {
	components := make([]domain.SalaryComponent, len(r.OtherSalaryComponents))
	for i, c := range r.OtherSalaryComponents {
		components[i] = domain.SalaryComponent{PaymentType: domain.SalaryPaymentType(c.PaymentType), Amount: c.Amount}
	}
	loans := make([]domain.LoanInstallment, len(r.SelectedLoans))
	for i, l := range r.SelectedLoans {
		loans[i] = domain.LoanInstallment{LoanID: l.LoanID, InstallmentAmount: l.InstallmentAmount}
	}
	return &domain.Payslip{
		DriverID:              r.DriverID,
		SubtripComponents:     ToTripRecords(r.SubtripComponents),
		OtherSalaryComponents: components,
		SelectedLoans:         loans,
	}
}
