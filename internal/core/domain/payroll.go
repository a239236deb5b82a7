package domain

import "github.com/shopspring/decimal"

// SalaryPaymentType classifies an ad-hoc salary component on a payslip.
type SalaryPaymentType string

const (
	FixedSalary      SalaryPaymentType = "Fixed Salary"
	PenaltyDeduction SalaryPaymentType = "Penalty Deduction"
)

// SalaryComponent is a fixed or ad-hoc line on a driver payslip.
type SalaryComponent struct {
	PaymentType SalaryPaymentType `json:"paymentType"`
	Amount      decimal.Decimal   `json:"amount"`
}

// LoanInstallment is a loan repayment withheld on a payslip.
type LoanInstallment struct {
	LoanID            string          `json:"loanID"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
}

// Payslip gathers the inputs of one driver payroll computation.
type Payslip struct {
	DriverID              string            `json:"driverID"`
	SubtripComponents     []TripRecord      `json:"subtripComponents"`
	OtherSalaryComponents []SalaryComponent `json:"otherSalaryComponents"`
	SelectedLoans         []LoanInstallment `json:"selectedLoans"`
}
