package schedule

import (
	"errors"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/model/zone"
)

// ErrEntryIsIncomplete is returned when an entry is missing one of its parts.
var ErrEntryIsIncomplete = errors.New("schedule entry needs a request, its requester and the requester's zone")

// Entry is one line of a day schedule: the request together with the
// requester and zone needed to decide who may see it.
type Entry struct {
	Request   *request.Request
	Requester *requester.Requester
	Zone      *zone.Zone
}

// NewEntry checks that the parts belong together.
func NewEntry(req *request.Request, owner *requester.Requester, z *zone.Zone) (Entry, error) {
	if req.Validate() != nil || owner.Validate() != nil || z.Validate() != nil {
		return Entry{}, ErrEntryIsIncomplete
	}
	if !req.RequesterID().IsEqual(owner.ID()) || !owner.ZoneID().IsEqual(z.ID()) {
		return Entry{}, ErrEntryIsIncomplete
	}
	return Entry{Request: req, Requester: owner, Zone: z}, nil
}

// ZoneID is the zone the pickup happens in.
func (e Entry) ZoneID() kernel.UUID {
	return e.Requester.ZoneID()
}

// IsScheduledOn reports whether the request is still to be done on date.
func (e Entry) IsScheduledOn(date kernel.Date) bool {
	return e.Request.IsActive() && e.Request.PickupDate().IsEqual(date)
}

// VisibleTo reports whether c should see the request on its schedule: it is
// assigned to c, or it is unassigned and c covers the requester's zone.
//
// An unassigned request in a zone covered by several couriers is visible to
// all of them.
func (e Entry) VisibleTo(c *courier.Courier) bool {
	if courierID := e.Request.CourierID(); courierID != nil {
		return courierID.IsEqual(c.ID())
	}
	return c.Covers(e.ZoneID())
}
