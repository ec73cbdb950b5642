package zone

import (
	"errors"
	"strings"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/errs"
	"vetpickup/internal/pkg/guard"
)

// MaxNameLength matches the width of the name column.
const MaxNameLength = 50

var (
	// ErrNameIsRequired is returned for a blank zone name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrZoneIsNotConstructed is returned when using a zero-value Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
)

// Zone is a named geographic area. Requesters live in exactly one zone and
// couriers declare the zones they cover. Zone names are unique across the
// system; uniqueness is enforced by the store.
type Zone struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewZone creates a zone. Surrounding whitespace of the name is dropped.
func NewZone(id kernel.UUID, name string) (*Zone, error) {
	z := &Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone rebuilds a zone loaded from the store.
func RestoreZone(id kernel.UUID, name string) (*Zone, error) {
	return NewZone(id, name)
}

func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

func (z *Zone) IsEqual(other *Zone) bool {
	return other != nil && z.id.IsEqual(other.id)
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

// Rename changes the display name of the zone. Requesters and couriers
// reference zones by ID, so they follow the rename automatically.
func (z *Zone) Rename(name string) error {
	return z.setName(name)
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if len([]rune(name)) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len([]rune(name)), 1, MaxNameLength)
	}
	z.name = name
	return nil
}
