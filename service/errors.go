package service

import "errors"

var (
	// ErrInvalidInput marks a request that is missing a required field or
	// carries a value outside its allowed range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownLoanType marks a loan type with no priority order.
	ErrUnknownLoanType = errors.New("unknown loan type")

	// ErrConfigurationGap marks a hole in the static catalog. It is a
	// programming error and must never be swallowed.
	ErrConfigurationGap = errors.New("configuration gap")
)
