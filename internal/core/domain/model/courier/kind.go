package courier

import (
	"fmt"

	"vetpickup/internal/pkg/errs"
)

// Kind tells whether a courier takes automatic assignments.
type Kind string

const (
	// Fixed couriers work a regular route and are picked by the dispatcher.
	Fixed Kind = "fixed"
	// Complementary couriers cover peaks and are only assigned by hand.
	Complementary Kind = "complementary"
)

// ParseKind converts a stored or submitted string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	if k != Fixed && k != Complementary {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a courier kind", string(k)))
	}
	return nil
}

func (k Kind) String() string {
	return string(k)
}
