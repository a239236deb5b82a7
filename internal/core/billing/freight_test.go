package billing_test

import (
	"math"
	"testing"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/billing"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreightLine(t *testing.T) {
	tests := []struct {
		name         string
		trip         domain.TripRecord
		wantRate     string
		wantFreight  string
		wantExpense  string
		wantShortage string
		wantNet      string
	}{
		{
			name:         "rate times weight with optional fields absent",
			trip:         simpleTrip("t1"),
			wantRate:     "1000",
			wantFreight:  "10000",
			wantExpense:  "0",
			wantShortage: "0",
			wantNet:      "10000",
		},
		{
			name: "commission reduces the effective rate",
			trip: domain.TripRecord{
				ID:             "t2",
				FreightRate:    dec("1000"),
				CommissionRate: opt("50"),
				LoadingWeight:  dec("10"),
			},
			wantRate:     "950",
			wantFreight:  "9500",
			wantExpense:  "0",
			wantShortage: "0",
			wantNet:      "9500",
		},
		{
			name: "all expense types and shortage are netted",
			trip: domain.TripRecord{
				ID:             "t3",
				FreightRate:    dec("1200.50"),
				CommissionRate: opt("0.50"),
				LoadingWeight:  dec("20.5"),
				ShortageAmount: opt("300"),
				Expenses: []domain.ExpenseEntry{
					{Amount: dec("1500"), ExpenseType: "diesel"},
					{Amount: dec("800"), ExpenseType: domain.ExpenseTypeDriverSalary},
					{Amount: dec("120.25"), ExpenseType: "toll"},
				},
			},
			wantRate:     "1200",
			wantFreight:  "24600",
			wantExpense:  "2420.25",
			wantShortage: "300",
			wantNet:      "21879.75",
		},
		{
			name: "fractional weight stays exact",
			trip: domain.TripRecord{
				ID:            "t4",
				FreightRate:   dec("0.1"),
				LoadingWeight: dec("0.2"),
			},
			wantRate:     "0.1",
			wantFreight:  "0.02",
			wantExpense:  "0",
			wantShortage: "0",
			wantNet:      "0.02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := billing.FreightLine(&tt.trip)
			require.NoError(t, err)
			assert.Equal(t, tt.trip.ID, line.TripID)
			assertDecimal(t, tt.wantRate, line.EffectiveRate, "effective rate")
			assertDecimal(t, tt.wantFreight, line.FreightAmount, "freight amount")
			assertDecimal(t, tt.wantExpense, line.TotalExpense, "total expense")
			assertDecimal(t, tt.wantShortage, line.ShortageAmount, "shortage")
			assertDecimal(t, tt.wantNet, line.NetPayable, "net payable")
		})
	}
}

func TestFreightLine_NilTripYieldsZeroLine(t *testing.T) {
	line, err := billing.FreightLine(nil)
	require.NoError(t, err)
	assertDecimal(t, "0", line.EffectiveRate)
	assertDecimal(t, "0", line.FreightAmount)
	assertDecimal(t, "0", line.TotalExpense)
	assertDecimal(t, "0", line.ShortageAmount)
	assertDecimal(t, "0", line.NetPayable)
}

func TestFreightLine_NegativeWeightIsInvalidRecord(t *testing.T) {
	trip := simpleTrip("bad")
	trip.LoadingWeight = dec("-1")

	_, err := billing.FreightLine(&trip)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecord)
	assert.Contains(t, err.Error(), "bad")
}

func TestFreightLine_DoesNotMutateInput(t *testing.T) {
	trip := domain.TripRecord{
		ID:            "t1",
		FreightRate:   dec("100"),
		LoadingWeight: dec("3"),
		Expenses:      []domain.ExpenseEntry{{Amount: dec("10"), ExpenseType: "toll"}},
	}
	before := mustJSON(t, trip)

	_, err := billing.FreightLine(&trip)
	require.NoError(t, err)
	assert.Equal(t, before, mustJSON(t, trip))
}

func TestDecimalFromFloat(t *testing.T) {
	d, err := billing.DecimalFromFloat("freightRate", 12.5)
	require.NoError(t, err)
	assertDecimal(t, "12.5", d)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := billing.DecimalFromFloat("loadingWeight", v)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRecord)
		assert.Contains(t, err.Error(), "loadingWeight")
	}
}
