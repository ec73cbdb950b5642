package request

import (
	"fmt"

	"vetpickup/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup request.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──┬──> Completed
//	          │      │  ▲     └──> Cancelled
//	          │      └──┘
//	          │ (reassignment allowed)
//	          ├──> Completed
//	          └──> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: no courier has been resolved yet.
	Pending

	// Assigned indicates a courier was resolved for the request.
	Assigned

	// Completed means the samples were picked up.
	Completed

	// Cancelled means the pickup will not happen.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Assigned:  "assigned",
	Completed: "completed",
	Cancelled: "cancelled",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, Completed, Cancelled}
}

// ParseStatus converts the stored name of a status back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsActive reports whether the request still shows up on schedules.
func (s Status) IsActive() bool {
	return s == Pending || s == Assigned
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateAssign checks if the status allows assignment without performing the transition.
// Pending requests can be assigned and Assigned requests can be reassigned.
func (s Status) ValidateAssign() error {
	return s.validateTransition("assign")
}

// Assign transitions the status to Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}

// Complete transitions an active status to Completed. Completing a request
// that never got a courier is allowed: staff may pick samples up themselves.
func (s Status) Complete() (Status, error) {
	if err := s.validateTransition("complete"); err != nil {
		return Unknown, err
	}
	return Completed, nil
}

// Cancel transitions an active status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.validateTransition("cancel"); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

func (s Status) validateTransition(action string) error {
	if !s.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to %s", s, action),
		)
	}
	return nil
}
