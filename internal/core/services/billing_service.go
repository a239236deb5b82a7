package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Alish-p/transport-rewrite-sub001/internal/core/billing"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	portssvc "github.com/Alish-p/transport-rewrite-sub001/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// billingService implements the BillingService interface on top of the billing engine.
type billingService struct {
	BaseService
	taxRules domain.TaxRuleConfig
}

// NewBillingService creates a billing service bound to the given tax rules.
// The rules are validated once here so that a misconfigured rate fails at startup.
func NewBillingService(taxRules domain.TaxRuleConfig) (portssvc.BillingService, error) {
	if err := taxRules.Validate(); err != nil {
		return nil, err
	}
	return &billingService{taxRules: taxRules}, nil
}

// Ensure billingService implements the BillingService interface
var _ portssvc.BillingService = (*billingService)(nil)

func (s *billingService) TaxRules() domain.TaxRuleConfig {
	return s.taxRules
}

// ComputeFreightLine returns the transporter-side breakdown of a single trip
func (s *billingService) ComputeFreightLine(ctx context.Context, trip *domain.TripRecord) (*domain.FreightLine, error) {
	line, err := billing.FreightLine(trip)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute freight line", slog.String("trip_id", tripID(trip)))
		return nil, fmt.Errorf("failed to compute freight line: %w", err)
	}

	s.LogDebug(ctx, "Freight line computed",
		slog.String("trip_id", line.TripID),
		slog.String("net_payable", line.NetPayable.String()))
	return &line, nil
}

// ComputeTaxBreakup returns GST and TDS on a taxable base
func (s *billingService) ComputeTaxBreakup(ctx context.Context, profile domain.CounterpartyTaxProfile, taxableBase decimal.Decimal) (*domain.TaxBreakup, error) {
	breakup, err := billing.TaxBreakup(profile, taxableBase, s.taxRules)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute tax breakup",
			slog.String("home_state", profile.HomeState),
			slog.Bool("gst_enabled", profile.GSTEnabled))
		return nil, fmt.Errorf("failed to compute tax breakup: %w", err)
	}

	s.LogDebug(ctx, "Tax breakup computed",
		slog.String("taxable_base", taxableBase.String()),
		slog.Bool("intra_state", billing.IsIntraState(profile, s.taxRules)),
		slog.String("total_tax_deducted", breakup.TotalTaxDeducted.String()))
	return &breakup, nil
}

// ComputeTransporterPayment aggregates trips and charges into a transporter payment
func (s *billingService) ComputeTransporterPayment(ctx context.Context, trips []domain.TripRecord, profile domain.CounterpartyTaxProfile, charges []domain.AdditionalCharge) (*domain.PaymentSummary, error) {
	summary, err := billing.PaymentSummary(trips, profile, charges, s.taxRules)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute transporter payment",
			slog.Int("trip_count", len(trips)),
			slog.Int("charge_count", len(charges)))
		return nil, fmt.Errorf("failed to compute transporter payment: %w", err)
	}

	s.LogInfo(ctx, "Transporter payment computed",
		slog.Int("trip_count", summary.TripCount),
		slog.String("total_freight", summary.TotalFreightAmount.String()),
		slog.String("net_income", summary.NetIncome.String()))
	return &summary, nil
}

// ComputeDriverPayslip folds a driver's trips, salary components and loans into net salary
func (s *billingService) ComputeDriverPayslip(ctx context.Context, payslip *domain.Payslip) (*domain.PayslipSummary, error) {
	summary, err := billing.PayslipSummary(payslip)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute driver payslip")
		return nil, fmt.Errorf("failed to compute driver payslip: %w", err)
	}

	if !summary.TotalUnclassified.IsZero() {
		s.LogInfo(ctx, "Payslip has salary components with unrecognised payment types",
			slog.String("driver_id", payslip.DriverID),
			slog.String("total_unclassified", summary.TotalUnclassified.String()))
	}
	s.LogInfo(ctx, "Driver payslip computed",
		slog.String("driver_id", payslip.DriverID),
		slog.String("net_salary", summary.NetSalary.String()))
	return &summary, nil
}

// ComputeCustomerInvoice totals invoiced trips under the configured customer tax rate
func (s *billingService) ComputeCustomerInvoice(ctx context.Context, trips []domain.TripRecord) (*domain.InvoiceSummary, error) {
	summary, err := billing.InvoiceSummary(trips, s.taxRules.CustomerTaxRate)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute customer invoice", slog.Int("trip_count", len(trips)))
		return nil, fmt.Errorf("failed to compute customer invoice: %w", err)
	}

	s.LogInfo(ctx, "Customer invoice computed",
		slog.Int("trip_count", len(summary.Lines)),
		slog.String("total_after_tax", summary.TotalAfterTax.String()))
	return &summary, nil
}

func tripID(trip *domain.TripRecord) string {
	if trip == nil {
		return ""
	}
	return trip.ID
}
