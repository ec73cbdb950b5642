package queries

import (
	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/model/schedule"
	"vetpickup/internal/core/domain/model/zone"
)

type ZoneResponse struct {
	ID   kernel.UUID
	Name string
}

func zoneResponse(z *zone.Zone) ZoneResponse {
	return ZoneResponse{ID: z.ID(), Name: z.Name()}
}

type CourierResponse struct {
	ID             kernel.UUID
	Name           string
	Kind           courier.Kind
	PreferredZones []kernel.UUID
}

func courierResponse(c *courier.Courier) CourierResponse {
	return CourierResponse{
		ID:             c.ID(),
		Name:           c.Name(),
		Kind:           c.Kind(),
		PreferredZones: c.PreferredZones(),
	}
}

// RequesterResponse flattens a requester for display. IsComplete and
// MissingData are computed on read.
type RequesterResponse struct {
	ID           kernel.UUID
	Name         string
	Kind         requester.Kind
	Phone        string
	Email        kernel.Knowable[string]
	Address      kernel.Knowable[string]
	ServiceHours requester.ServiceHours
	ZoneID       kernel.UUID
	IsComplete   bool
	MissingData  []string
}

func requesterResponse(r *requester.Requester) RequesterResponse {
	return RequesterResponse{
		ID:           r.ID(),
		Name:         r.Name(),
		Kind:         r.Kind(),
		Phone:        r.Phone(),
		Email:        r.Email(),
		Address:      r.Address(),
		ServiceHours: r.ServiceHours(),
		ZoneID:       r.ZoneID(),
		IsComplete:   r.IsComplete(),
		MissingData:  r.MissingData(),
	}
}

// RequestResponse is one row of a schedule. CourierName is empty when the
// request has no courier or the courier is unknown to the caller.
type RequestResponse struct {
	ID            kernel.UUID
	RequesterID   kernel.UUID
	RequesterName string
	ZoneID        kernel.UUID
	ZoneName      string
	PickupAddress string
	PickupDate    kernel.Date
	RequestDate   kernel.Date
	RequestTime   kernel.TimeOfDay
	Status        request.Status
	CourierID     *kernel.UUID
	CourierName   string
	Notes         string
}

func requestResponses(entries []schedule.Entry, couriers []*courier.Courier) []RequestResponse {
	names := make(map[kernel.UUID]string, len(couriers))
	for _, c := range couriers {
		names[c.ID()] = c.Name()
	}

	result := make([]RequestResponse, 0, len(entries))
	for _, e := range entries {
		row := RequestResponse{
			ID:            e.Request.ID(),
			RequesterID:   e.Requester.ID(),
			RequesterName: e.Requester.Name(),
			ZoneID:        e.Zone.ID(),
			ZoneName:      e.Zone.Name(),
			PickupAddress: e.Request.PickupAddress(),
			PickupDate:    e.Request.PickupDate(),
			RequestDate:   e.Request.RequestDate(),
			RequestTime:   e.Request.RequestTime(),
			Status:        e.Request.Status(),
			CourierID:     e.Request.CourierID(),
			Notes:         e.Request.Notes(),
		}
		if row.CourierID != nil {
			row.CourierName = names[*row.CourierID]
		}
		result = append(result, row)
	}
	return result
}
