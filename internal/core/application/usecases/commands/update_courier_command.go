package commands

import (
	"errors"
	"slices"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand replaces name, kind and the full preferred zone set.
type UpdateCourierCommand struct {
	courierID kernel.UUID
	name      string
	kind      courier.Kind
	zoneIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateCourierCommand(
	courierID kernel.UUID,
	name string,
	kind courier.Kind,
	zoneIDs []kernel.UUID,
) (UpdateCourierCommand, error) {
	if err := errors.Join(
		courierID.Validate(),
		kind.Validate(),
	); err != nil {
		return UpdateCourierCommand{}, err
	}

	return UpdateCourierCommand{
		courierID: courierID,
		name:      name,
		kind:      kind,
		zoneIDs:   slices.Clone(zoneIDs),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

func (c UpdateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateCourierCommand) Name() string {
	return c.name
}

func (c UpdateCourierCommand) Kind() courier.Kind {
	return c.kind
}

func (c UpdateCourierCommand) ZoneIDs() []kernel.UUID {
	return slices.Clone(c.zoneIDs)
}
