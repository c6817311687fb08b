package cloak

import "errors"

var (
	ErrEmptyInput        = errors.New("input is empty")
	ErrReadFailure       = errors.New("failed to read input")
	ErrTooSmall          = errors.New("input is too small")
	ErrTooLarge          = errors.New("input is too large")
	ErrSignatureMismatch = errors.New("signature not found")
	ErrWriteFailure      = errors.New("failed to write output")
	ErrCorrupt           = errors.New("container doesn't match its header")
)
