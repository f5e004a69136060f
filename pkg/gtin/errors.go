package gtin

import "errors"

var (
	// ErrNilInput is returned when a required input is absent, e.g. scanning a NULL column.
	ErrNilInput = errors.New("gtin: nil input")

	// ErrInvalidFormat is returned when a string is not a valid GTIN or partial GTIN.
	ErrInvalidFormat = errors.New("gtin: invalid format")

	// ErrUnknownFormat is returned when a length or name does not match any known format.
	ErrUnknownFormat = errors.New("gtin: unknown format")

	// ErrIndexOutOfRange is returned by DigitAt for positions outside the code.
	ErrIndexOutOfRange = errors.New("gtin: index out of range")
)
