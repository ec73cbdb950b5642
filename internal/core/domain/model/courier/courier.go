package courier

import (
	"errors"
	"strings"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/errs"
	"vetpickup/internal/pkg/guard"
)

// MaxNameLength matches the width of the name column.
const MaxNameLength = 100

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a person who picks up samples from requesters.
//
// Key responsibilities:
//   - Managing courier identity (ID, name, kind)
//   - Declaring which zones the courier usually covers
//   - Answering whether it is eligible for a request in a given zone
//
// Business rules:
//   - Courier must have a valid UUID, a non-empty name and a valid kind
//   - Preferred zones must be valid identifiers; duplicates are dropped and
//     the first occurrence keeps its position
//   - A courier without preferred zones is valid but never eligible
//
// Example usage:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Rosa Muñoz", courier.Fixed, []kernel.UUID{valparaisoID})
//	if err != nil {
//	    // Handle construction error
//	}
//	c.Covers(valparaisoID) // true
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// kind decides whether the dispatcher may pick this courier
	kind Kind
	// preferredZones is an ordered set of covered zone IDs
	preferredZones []kernel.UUID
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier, aggregating every validation failure.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - kind: Fixed or Complementary
//   - preferredZones: Zones the courier covers, may be empty
func NewCourier(id kernel.UUID, name string, kind Kind, preferredZones []kernel.UUID) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setKind(kind),
		courier.SetPreferredZones(preferredZones),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// The same rules as NewCourier apply; couriers have no legacy states.
func RestoreCourier(id kernel.UUID, name string, kind Kind, preferredZones []kernel.UUID) (*Courier, error) {
	return NewCourier(id, name, kind, preferredZones)
}

// IsEqual compares two couriers by identifier only.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed using the NewCourier constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Kind returns whether the courier is fixed or complementary.
func (c *Courier) Kind() Kind {
	return c.kind
}

// IsFixed reports whether the dispatcher may assign this courier automatically.
func (c *Courier) IsFixed() bool {
	return c.kind == Fixed
}

// PreferredZones returns a copy of the covered zone IDs in declaration order.
func (c *Courier) PreferredZones() []kernel.UUID {
	zones := make([]kernel.UUID, len(c.preferredZones))
	copy(zones, c.preferredZones)
	return zones
}

// Covers reports whether zoneID is one of the courier's preferred zones.
//
// Coverage is what makes an unassigned request visible on the courier's
// schedule, independently of the courier kind.
func (c *Courier) Covers(zoneID kernel.UUID) bool {
	return containsZone(c.preferredZones, zoneID)
}

// Update replaces name, kind and preferred zones. Nothing changes on failure.
func (c *Courier) Update(name string, kind Kind, preferredZones []kernel.UUID) error {
	updated, err := NewCourier(c.id, name, kind, preferredZones)
	if err != nil {
		return err
	}

	c.name = updated.name
	c.kind = updated.kind
	c.preferredZones = updated.preferredZones
	return nil
}

// SetPreferredZones replaces the covered zones. Duplicates are collapsed.
func (c *Courier) SetPreferredZones(zoneIDs []kernel.UUID) error {
	zones := make([]kernel.UUID, 0, len(zoneIDs))
	for _, id := range zoneIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("preferred zones", err)
		}
		if containsZone(zones, id) {
			continue
		}
		zones = append(zones, id)
	}

	c.preferredZones = zones
	return nil
}

// setID sets the courier's unique identifier with validation.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if n := len([]rune(name)); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}

	c.name = name
	return nil
}

func (c *Courier) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func containsZone(zones []kernel.UUID, id kernel.UUID) bool {
	for _, z := range zones {
		if z.IsEqual(id) {
			return true
		}
	}
	return false
}
