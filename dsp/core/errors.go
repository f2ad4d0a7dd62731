package core

import "errors"

// Error kinds shared by every analysis stage. Stages wrap them with
// fmt.Errorf("...: %w", ...) so callers can test with errors.Is.
var (
	ErrLengthMismatch     = errors.New("length mismatch")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrEmptyRange         = errors.New("no data in range")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrOutOfBounds        = errors.New("index out of bounds")
	ErrEmptyInput         = errors.New("empty input")
)
