package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterDecimalTypes teaches the validator to read decimal fields as numbers so that
// numeric tags such as gte and lte apply to them. An absent NullDecimal reads as nil,
// which omitempty skips.
func RegisterDecimalTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
}

func decimalValue(field reflect.Value) interface{} {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		return d.InexactFloat64()
	case decimal.NullDecimal:
		if !d.Valid {
			return nil
		}
		return d.Decimal.InexactFloat64()
	}
	return nil
}
