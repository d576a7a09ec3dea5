package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNegativeCount = errors.New("counts must be non-negative")
	ErrCountExceeded = errors.New("successes exceed total")
	ErrInvalidLevel  = errors.New("level must be in (0, 1)")
)

// NewCountError reports an out-of-contract count pair for a group.
func NewCountError(group string, successes, total int) error {
	if successes < 0 || total < 0 {
		return fmt.Errorf("%w: group %s got (%d, %d)", ErrNegativeCount, group, successes, total)
	}
	return fmt.Errorf("%w: group %s got (%d, %d)", ErrCountExceeded, group, successes, total)
}

// IsValidationError reports whether err stems from out-of-contract input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNegativeCount) ||
		errors.Is(err, ErrCountExceeded) ||
		errors.Is(err, ErrInvalidLevel)
}
