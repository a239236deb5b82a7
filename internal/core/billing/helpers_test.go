package billing_test

import (
	"encoding/json"
	"testing"

	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func opt(s string) decimal.NullDecimal {
	return domain.NewOptional(dec(s))
}

// assertDecimal compares by value so that 900 and 900.00 are equal.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func karnatakaConfig() domain.TaxRuleConfig {
	return domain.TaxRuleConfig{
		DefaultGSTRate:  dec("9"),
		HomeState:       "Karnataka",
		CustomerTaxRate: dec("18"),
	}
}

func simpleTrip(id string) domain.TripRecord {
	return domain.TripRecord{
		ID:            id,
		FreightRate:   dec("1000"),
		LoadingWeight: dec("10"),
	}
}
