package domain_test

import (
	"testing"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTripRecord_OptionalAccessors(t *testing.T) {
	tests := []struct {
		name           string
		trip           domain.TripRecord
		wantCommission string
		wantShortage   string
		wantQty        string
	}{
		{
			name:           "absent optionals default to zero",
			trip:           domain.TripRecord{},
			wantCommission: "0",
			wantShortage:   "0",
			wantQty:        "0",
		},
		{
			name: "present optionals are returned",
			trip: domain.TripRecord{
				CommissionRate: domain.NewOptional(decimal.NewFromInt(25)),
				ShortageAmount: domain.NewOptional(decimal.NewFromInt(400)),
				ShortageWeight: domain.NewOptional(decimal.RequireFromString("0.35")),
			},
			wantCommission: "25",
			wantShortage:   "400",
			wantQty:        "0.35",
		},
		{
			name: "explicit zero is kept",
			trip: domain.TripRecord{
				CommissionRate: domain.NewOptional(decimal.Zero),
			},
			wantCommission: "0",
			wantShortage:   "0",
			wantQty:        "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCommission, tt.trip.Commission().String())
			assert.Equal(t, tt.wantShortage, tt.trip.Shortage().String())
			assert.Equal(t, tt.wantQty, tt.trip.ShortageQty().String())
		})
	}
}

func TestTripRecord_ExpenseTotals(t *testing.T) {
	trip := domain.TripRecord{
		Expenses: []domain.ExpenseEntry{
			{Amount: decimal.NewFromInt(1500), ExpenseType: domain.ExpenseTypeDriverSalary},
			{Amount: decimal.NewFromInt(4000), ExpenseType: "diesel"},
			{Amount: decimal.NewFromInt(500), ExpenseType: domain.ExpenseTypeDriverSalary},
			{Amount: decimal.NewFromInt(250), ExpenseType: "toll"},
		},
	}

	assert.Equal(t, "6250", trip.TotalExpense().String())
	assert.Equal(t, "2000", trip.ExpenseTotalByType(domain.ExpenseTypeDriverSalary).String())
	assert.Equal(t, "0", trip.ExpenseTotalByType("tyre").String())
	assert.Equal(t, "0", domain.TripRecord{}.TotalExpense().String())
}

func TestTaxRuleConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.TaxRuleConfig
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid rates",
			cfg:  domain.TaxRuleConfig{DefaultGSTRate: decimal.NewFromInt(9), CustomerTaxRate: decimal.NewFromInt(18)},
		},
		{
			name: "zero rates are allowed",
			cfg:  domain.TaxRuleConfig{},
		},
		{
			name:    "negative GST rate",
			cfg:     domain.TaxRuleConfig{DefaultGSTRate: decimal.NewFromInt(-9)},
			wantErr: true,
			errMsg:  "default GST rate -9 is negative",
		},
		{
			name:    "negative customer rate",
			cfg:     domain.TaxRuleConfig{CustomerTaxRate: decimal.NewFromInt(-1)},
			wantErr: true,
			errMsg:  "customer tax rate -1 is negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCounterpartyTaxProfile_TDS(t *testing.T) {
	assert.True(t, domain.CounterpartyTaxProfile{}.TDS().IsZero())

	profile := domain.CounterpartyTaxProfile{TDSRate: domain.NewOptional(decimal.RequireFromString("1.5"))}
	assert.Equal(t, "1.5", profile.TDS().String())
}

func TestPaymentTotals_AddAndNet(t *testing.T) {
	a := domain.PaymentTotals{
		TripCount:           2,
		TotalFreightAmount:  decimal.NewFromInt(20000),
		TotalExpense:        decimal.NewFromInt(3000),
		TotalShortageAmount: decimal.NewFromInt(500),
	}
	b := domain.PaymentTotals{
		TripCount:           1,
		TotalFreightAmount:  decimal.NewFromInt(5000),
		TotalExpense:        decimal.NewFromInt(1000),
		TotalShortageAmount: decimal.Zero,
	}

	sum := a.Add(b)

	assert.Equal(t, 3, sum.TripCount)
	assert.Equal(t, "25000", sum.TotalFreightAmount.String())
	assert.Equal(t, "20500", sum.Net().String())
	assert.True(t, sum.Net().Equal(a.Net().Add(b.Net())))
}
