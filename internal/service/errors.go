package service

import "errors"

var (
	// ErrValidationFailed is matched by every [*ValidationError].
	ErrValidationFailed = errors.New("validation failed")

	// ErrSuperseded is returned by a transaction load whose result was
	// dropped because a newer load started.
	ErrSuperseded = errors.New("load superseded by a newer one")
	// ErrLoadInProgress is returned by LoadNext while another load runs.
	ErrLoadInProgress = errors.New("load already in progress")

	// ErrNotEnoughData is returned when a chart has fewer than two points.
	ErrNotEnoughData = errors.New("not enough data for a chart")
)
