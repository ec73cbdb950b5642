package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/pkg/errs"
	"vetpickup/internal/pkg/guard"
)

var (
	// ErrPickupAddressIsRequired is returned when neither the request nor its
	// requester provides an address.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickup address")
	// ErrRequestIsNotConstructed is returned when using a zero-value Request.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// Details are the attributes staff may edit after a request is registered.
type Details struct {
	UseRequesterAddress bool
	PickupAddress       string
	PickupDate          kernel.Date
	Notes               string
}

// Request is a pickup of veterinary samples at a requester's place.
//
// A request is registered as Pending, becomes Assigned once a courier is
// resolved and ends as Completed or Cancelled. The request date and time are
// stamped at registration and never change.
//
// When UseRequesterAddress is set, ApplyRequesterAddress copies the requester's
// address into the pickup address. The copy happens every time the request is
// about to be saved, so later edits of the requester never reach requests that
// are not saved again.
type Request struct {
	id                  kernel.UUID
	requesterID         kernel.UUID
	useRequesterAddress bool
	pickupAddress       string
	requestDate         kernel.Date
	requestTime         kernel.TimeOfDay
	pickupDate          kernel.Date
	courierID           *kernel.UUID
	status              Status
	notes               string
	guard               guard.ConstructorGuard
}

// NewRequest registers a Pending request. registeredAt must already be in the
// local time zone; its calendar day and wall clock time become the request
// date and time.
func NewRequest(id, requesterID kernel.UUID, details Details, registeredAt time.Time) (*Request, error) {
	r := &Request{
		status:      Pending,
		requestDate: kernel.DateOf(registeredAt),
		requestTime: kernel.TimeOfDayOf(registeredAt),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setRequesterID(requesterID),
		r.setDetails(details),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest rebuilds a request loaded from the store. An Assigned request
// may come back without a courier when that courier was deleted.
func RestoreRequest(
	id, requesterID kernel.UUID,
	details Details,
	requestDate kernel.Date,
	requestTime kernel.TimeOfDay,
	status Status,
	courierID *kernel.UUID,
) (*Request, error) {
	r := &Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setRequesterID(requesterID),
		r.setDetails(details),
		requestDate.Validate(),
		requestTime.Validate(),
		status.Validate(),
		r.setCourierID(courierID),
	); err != nil {
		return nil, err
	}
	r.requestDate = requestDate
	r.requestTime = requestTime
	r.status = status

	return r, nil
}

func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Request) ID() kernel.UUID               { return r.id }
func (r *Request) RequesterID() kernel.UUID      { return r.requesterID }
func (r *Request) UsesRequesterAddress() bool    { return r.useRequesterAddress }
func (r *Request) PickupAddress() string         { return r.pickupAddress }
func (r *Request) RequestDate() kernel.Date      { return r.requestDate }
func (r *Request) RequestTime() kernel.TimeOfDay { return r.requestTime }
func (r *Request) PickupDate() kernel.Date       { return r.pickupDate }
func (r *Request) Status() Status                { return r.status }
func (r *Request) Notes() string                 { return r.notes }

// CourierID returns a copy of the assigned courier's ID, nil when unassigned.
func (r *Request) CourierID() *kernel.UUID {
	if r.courierID == nil {
		return nil
	}
	id := *r.courierID
	return &id
}

// IsAssigned reports whether a courier is attached to the request.
func (r *Request) IsAssigned() bool {
	return r.courierID != nil
}

// IsAssignedTo reports whether courierID is the attached courier.
func (r *Request) IsAssignedTo(courierID kernel.UUID) bool {
	return r.courierID != nil && r.courierID.IsEqual(courierID)
}

// IsActive reports whether the request is still Pending or Assigned.
func (r *Request) IsActive() bool {
	return r.status.IsActive()
}

// Details returns a copy of the editable attributes.
func (r *Request) Details() Details {
	return Details{
		UseRequesterAddress: r.useRequesterAddress,
		PickupAddress:       r.pickupAddress,
		PickupDate:          r.pickupDate,
		Notes:               r.notes,
	}
}

// Assign attaches a courier and moves the request to Assigned.
// Reassigning an Assigned request replaces the courier.
func (r *Request) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.courierID = &courierID
	return nil
}

// Complete marks the samples as picked up.
func (r *Request) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel drops the pickup. The courier, if any, stays recorded.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// UnassignCourier detaches the courier without touching the status. It runs
// when the courier is deleted.
func (r *Request) UnassignCourier() {
	r.courierID = nil
}

// UpdateDetails replaces the editable attributes. Nothing changes on failure.
func (r *Request) UpdateDetails(details Details) error {
	updated := *r
	if err := updated.setDetails(details); err != nil {
		return err
	}

	r.useRequesterAddress = updated.useRequesterAddress
	r.pickupAddress = updated.pickupAddress
	r.pickupDate = updated.pickupDate
	r.notes = updated.notes
	return nil
}

// ApplyRequesterAddress runs right before every save. When the request uses
// the requester's address and the requester has one, that address is copied
// into the pickup address. Afterwards a pickup address must exist.
func (r *Request) ApplyRequesterAddress(owner *requester.Requester) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if !owner.ID().IsEqual(r.requesterID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"requester",
			fmt.Errorf("requester %s does not own request %s", owner.ID(), r.id),
		)
	}

	if r.useRequesterAddress {
		if address, ok := owner.PickupAddress(); ok {
			r.pickupAddress = address
		}
	}

	if r.pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requester", err)
	}
	r.requesterID = requesterID
	return nil
}

func (r *Request) setDetails(details Details) error {
	if err := details.PickupDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup date", err)
	}

	r.useRequesterAddress = details.UseRequesterAddress
	r.pickupAddress = strings.TrimSpace(details.PickupAddress)
	r.pickupDate = details.PickupDate
	r.notes = strings.TrimSpace(details.Notes)
	return nil
}

func (r *Request) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		r.courierID = nil
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	id := *courierID
	r.courierID = &id
	return nil
}
