package requester

import (
	"fmt"

	"vetpickup/internal/pkg/errs"
)

// Kind classifies who is asking for a pickup.
type Kind string

const (
	Medico      Kind = "medico"
	Veterinaria Kind = "veterinaria"
	Tecnico     Kind = "tecnico"
	Ayudante    Kind = "ayudante"
	Tutor       Kind = "tutor"
)

// Kinds lists every valid kind in display order.
func Kinds() []Kind {
	return []Kind{Medico, Veterinaria, Tecnico, Ayudante, Tutor}
}

// ParseKind converts a stored or submitted string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	switch k {
	case Medico, Veterinaria, Tecnico, Ayudante, Tutor:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a requester kind", string(k)))
	}
}

func (k Kind) String() string {
	return string(k)
}
