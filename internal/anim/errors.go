package anim

import "errors"

var (
	// ErrInvalidSize indicates a surface with a non-positive dimension.
	ErrInvalidSize = errors.New("anim: surface size must be positive")

	// ErrInvalidVariations indicates a phase step count below one.
	ErrInvalidVariations = errors.New("anim: variations must be at least 1")

	// ErrInvalidInterval indicates a non-positive tick interval.
	ErrInvalidInterval = errors.New("anim: interval must be positive")

	// ErrNoRule indicates a driver built without a rule.
	ErrNoRule = errors.New("anim: rule is required")
)
