package kernel

import (
	"fmt"

	"vetpickup/internal/pkg/errs"
)

type knowledge uint8

const (
	unsettled knowledge = iota
	known
	unknown
)

// Knowable is a value that is either Known or explicitly flagged as Unknown.
//
// The zero value is unsettled: it is neither known nor unknown. Constructors
// reject it; restored records may still carry it, so completeness checks go
// through IsSettled.
type Knowable[T any] struct {
	value T
	state knowledge
}

// Known wraps a value that is available.
func Known[T any](value T) Knowable[T] {
	return Knowable[T]{value: value, state: known}
}

// Unknown marks the value as explicitly unknown.
func Unknown[T any]() Knowable[T] {
	return Knowable[T]{state: unknown}
}

// IsKnown reports whether a value is present.
func (k Knowable[T]) IsKnown() bool {
	return k.state == known
}

// IsUnknown reports whether the value was flagged as unknown.
func (k Knowable[T]) IsUnknown() bool {
	return k.state == unknown
}

// IsSettled reports whether the value is either known or flagged as unknown.
func (k Knowable[T]) IsSettled() bool {
	return k.state == known || k.state == unknown
}

// Value returns the wrapped value and true when it is known.
func (k Knowable[T]) Value() (T, bool) {
	if k.state != known {
		var zero T
		return zero, false
	}
	return k.value, true
}

// ValueOr returns the known value or fallback.
func (k Knowable[T]) ValueOr(fallback T) T {
	if k.state != known {
		return fallback
	}
	return k.value
}

// Validate returns an InvariantViolationError when the value is unsettled.
func (k Knowable[T]) Validate(paramName string) error {
	if !k.IsSettled() {
		return errs.NewInvariantViolationError(fmt.Sprintf("%s must be given or flagged as unknown", paramName))
	}
	return nil
}

func (k Knowable[T]) String() string {
	switch k.state {
	case known:
		return fmt.Sprint(k.value)
	case unknown:
		return "<unknown>"
	default:
		return "<unsettled>"
	}
}
