package requester

import (
	"fmt"
	"strings"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/errs"
)

// ServiceHours tells couriers when the requester can hand over samples.
// Start and end come together or not at all; notes are free text.
type ServiceHours struct {
	start   kernel.TimeOfDay
	end     kernel.TimeOfDay
	hasTime bool
	notes   string
}

// NewServiceHours rejects a window with only one end given and a window
// that ends before it starts.
func NewServiceHours(start, end *kernel.TimeOfDay, notes string) (ServiceHours, error) {
	hours := ServiceHours{notes: strings.TrimSpace(notes)}

	if (start == nil) != (end == nil) {
		return ServiceHours{}, errs.NewInvariantViolationError("service hours start and end must both be given or both be empty")
	}
	if start == nil {
		return hours, nil
	}

	if err := start.Validate(); err != nil {
		return ServiceHours{}, err
	}
	if err := end.Validate(); err != nil {
		return ServiceHours{}, err
	}
	if end.Before(*start) {
		return ServiceHours{}, errs.NewValueIsInvalidErrorWithCause(
			"service hours",
			fmt.Errorf("end %s is before start %s", end, start),
		)
	}

	hours.start = *start
	hours.end = *end
	hours.hasTime = true
	return hours, nil
}

// Window returns the start and end times when both are set.
func (s ServiceHours) Window() (start, end kernel.TimeOfDay, ok bool) {
	return s.start, s.end, s.hasTime
}

func (s ServiceHours) Notes() string {
	return s.notes
}

func (s ServiceHours) IsZero() bool {
	return !s.hasTime && s.notes == ""
}

func (s ServiceHours) String() string {
	var parts []string
	if s.hasTime {
		parts = append(parts, fmt.Sprintf("%s-%s", s.start, s.end))
	}
	if s.notes != "" {
		parts = append(parts, s.notes)
	}
	return strings.Join(parts, " ")
}
