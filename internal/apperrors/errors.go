package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidRecord indicates that a required input record (trip, payslip, invoice batch)
// is missing or malformed. It is a caller contract violation and is never recovered locally.
var ErrInvalidRecord = errors.New("invalid record")

// ErrInvalidConfig indicates that a tax configuration value is outside its valid domain.
// It is never defaulted silently.
var ErrInvalidConfig = errors.New("invalid configuration")
