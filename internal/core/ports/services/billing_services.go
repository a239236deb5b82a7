package services

import (
	"context"

	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillingService computes freight, tax, payroll and invoice figures from trip records.
// Every method is a pure computation over its arguments and the configured tax rules.
type BillingService interface {
	// TaxRules returns the tax configuration the service was built with.
	TaxRules() domain.TaxRuleConfig

	// ComputeFreightLine returns the transporter-side breakdown of a single trip.
	ComputeFreightLine(ctx context.Context, trip *domain.TripRecord) (*domain.FreightLine, error)

	// ComputeTaxBreakup returns GST and TDS on taxableBase for a counterparty.
	ComputeTaxBreakup(ctx context.Context, profile domain.CounterpartyTaxProfile, taxableBase decimal.Decimal) (*domain.TaxBreakup, error)

	// ComputeTransporterPayment aggregates trips and additional charges into a transporter payment.
	ComputeTransporterPayment(ctx context.Context, trips []domain.TripRecord, profile domain.CounterpartyTaxProfile, charges []domain.AdditionalCharge) (*domain.PaymentSummary, error)

	// ComputeDriverPayslip folds trip earnings, salary components and loan repayments into net salary.
	ComputeDriverPayslip(ctx context.Context, payslip *domain.Payslip) (*domain.PayslipSummary, error)

	// ComputeCustomerInvoice totals invoiced trips and applies the customer tax rate.
	ComputeCustomerInvoice(ctx context.Context, trips []domain.TripRecord) (*domain.InvoiceSummary, error)
}
