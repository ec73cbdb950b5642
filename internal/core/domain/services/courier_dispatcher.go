package services

import (
	"fmt"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/pkg/errs"
)

// Outcome tells what Dispatch did with a request.
type Outcome int

const (
	// AlreadyAssigned means the request already had a courier and was left untouched.
	AlreadyAssigned Outcome = iota + 1
	// Assigned means a courier was attached and the request has to be saved.
	Assigned
	// NoEligibleCourier means no fixed courier covers the zone; the request stays pending.
	NoEligibleCourier
)

func (o Outcome) String() string {
	switch o {
	case AlreadyAssigned:
		return "already_assigned"
	case Assigned:
		return "assigned"
	case NoEligibleCourier:
		return "no_eligible_courier"
	default:
		return "unknown"
	}
}

// Assignment is the result of Dispatch.
type Assignment struct {
	Outcome Outcome
	// CourierID is set for AlreadyAssigned and Assigned.
	CourierID *kernel.UUID
	// Courier is the selected courier. It is nil for AlreadyAssigned when the
	// assigned courier is not among the candidates.
	Courier *courier.Courier
	// ZoneName is the name of the requester's zone.
	ZoneName string
}

// RequiresSave reports whether the request was changed.
func (a Assignment) RequiresSave() bool {
	return a.Outcome == Assigned
}

// Message is the text shown to staff after an assignment attempt.
func (a Assignment) Message() string {
	switch a.Outcome {
	case AlreadyAssigned:
		return "already assigned"
	case Assigned:
		return fmt.Sprintf("assigned to %s", a.Courier.Name())
	case NoEligibleCourier:
		return fmt.Sprintf("no courier available in zone %s", a.ZoneName)
	default:
		return ""
	}
}

// CourierDispatcher is a domain service that resolves a courier for a pickup
// request from zone coverage.
//
// Business rules:
//   - A request that already has a courier keeps it and nothing is written
//   - Only fixed couriers whose preferred zones contain the requester's zone are eligible
//   - Candidates are examined in the order given, which is the store's natural
//     order, and the first eligible courier wins; there is no load balancing
//   - Finding nobody is an outcome, not an error: the request stays pending
//
// Example usage:
//
//	assignment, err := services.NewCourierDispatcher().Dispatch(req, owner, z, couriers)
//	if err != nil {
//	    return err
//	}
//	if assignment.RequiresSave() {
//	    // persist req
//	}
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch decides the courier of req. owner must be the requester of req and
// z the zone of owner. On the Assigned outcome req is mutated in memory and
// the caller must save it once.
func (d CourierDispatcher) Dispatch(
	req *request.Request,
	owner *requester.Requester,
	z *zone.Zone,
	couriers []*courier.Courier,
) (Assignment, error) {
	if err := req.Validate(); err != nil {
		return Assignment{}, err
	}
	if err := owner.Validate(); err != nil {
		return Assignment{}, err
	}
	if err := z.Validate(); err != nil {
		return Assignment{}, err
	}
	if !req.RequesterID().IsEqual(owner.ID()) {
		return Assignment{}, errs.NewValueIsInvalidErrorWithCause(
			"requester", fmt.Errorf("requester %s does not own request %s", owner.ID(), req.ID()))
	}
	if !owner.ZoneID().IsEqual(z.ID()) {
		return Assignment{}, errs.NewValueIsInvalidErrorWithCause(
			"zone", fmt.Errorf("zone %s is not the zone of requester %s", z.ID(), owner.ID()))
	}

	if courierID := req.CourierID(); courierID != nil {
		return Assignment{
			Outcome:   AlreadyAssigned,
			CourierID: courierID,
			Courier:   findCourier(couriers, *courierID),
			ZoneName:  z.Name(),
		}, nil
	}

	if err := req.Status().ValidateAssign(); err != nil {
		return Assignment{}, err
	}

	selected, err := d.findFirstEligible(z.ID(), couriers)
	if err != nil {
		return Assignment{}, err
	}
	if selected == nil {
		return Assignment{Outcome: NoEligibleCourier, ZoneName: z.Name()}, nil
	}

	if err = req.Assign(selected.ID()); err != nil {
		return Assignment{}, err
	}

	courierID := selected.ID()
	return Assignment{
		Outcome:   Assigned,
		CourierID: &courierID,
		Courier:   selected,
		ZoneName:  z.Name(),
	}, nil
}

// findFirstEligible returns the first fixed courier covering zoneID, or nil.
func (d CourierDispatcher) findFirstEligible(zoneID kernel.UUID, couriers []*courier.Courier) (*courier.Courier, error) {
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if c.IsFixed() && c.Covers(zoneID) {
			return c, nil
		}
	}
	return nil, nil
}

func findCourier(couriers []*courier.Courier, id kernel.UUID) *courier.Courier {
	for _, c := range couriers {
		if c != nil && c.ID().IsEqual(id) {
			return c
		}
	}
	return nil
}
