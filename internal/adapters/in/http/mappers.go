package http

import (
	"fmt"
	"strings"

	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/services"
	"vetpickup/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func apiDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

// clock renders a time of day as HH:MM.
func clock(t kernel.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDOf(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func uuids(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	result := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		parsed, err := kernel.UUIDOf(id)
		if err != nil {
			return nil, err
		}
		result = append(result, parsed)
	}
	return result, nil
}

func toZone(z queries.ZoneResponse) servers.Zone {
	return servers.Zone{Id: z.ID.Bytes(), Name: z.Name}
}

func toCourier(c queries.CourierResponse) servers.Courier {
	zones := make([]openapi_types.UUID, 0, len(c.PreferredZones))
	for _, id := range c.PreferredZones {
		zones = append(zones, id.Bytes())
	}
	return servers.Courier{
		Id:             c.ID.Bytes(),
		Kind:           servers.CourierKind(c.Kind),
		Name:           c.Name,
		PreferredZones: zones,
	}
}

func toRequester(r queries.RequesterResponse) servers.Requester {
	result := servers.Requester{
		AddressUnknown: r.Address.IsUnknown(),
		EmailUnknown:   r.Email.IsUnknown(),
		Id:             r.ID.Bytes(),
		IsComplete:     r.IsComplete,
		Kind:           servers.RequesterKind(r.Kind),
		MissingData:    append([]string{}, r.MissingData...),
		Name:           r.Name,
		Phone:          r.Phone,
		ZoneId:         r.ZoneID.Bytes(),
	}
	if email, ok := r.Email.Value(); ok {
		result.Email = &email
	}
	if address, ok := r.Address.Value(); ok {
		result.Address = &address
	}
	if start, end, ok := r.ServiceHours.Window(); ok {
		result.ServiceHoursStart = optionalString(clock(start))
		result.ServiceHoursEnd = optionalString(clock(end))
	}
	result.ServiceHoursNotes = optionalString(r.ServiceHours.Notes())
	return result
}

func toRequesters(rows []queries.RequesterResponse) []servers.Requester {
	result := make([]servers.Requester, 0, len(rows))
	for _, r := range rows {
		result = append(result, toRequester(r))
	}
	return result
}

func toPickupRequest(r queries.RequestResponse) servers.PickupRequest {
	result := servers.PickupRequest{
		CourierName:   optionalString(r.CourierName),
		Id:            r.ID.Bytes(),
		Notes:         optionalString(r.Notes),
		PickupAddress: r.PickupAddress,
		PickupDate:    apiDate(r.PickupDate),
		RequestDate:   apiDate(r.RequestDate),
		RequestTime:   r.RequestTime.String(),
		RequesterId:   r.RequesterID.Bytes(),
		RequesterName: r.RequesterName,
		Status:        servers.RequestStatus(r.Status.String()),
		ZoneId:        r.ZoneID.Bytes(),
		ZoneName:      r.ZoneName,
	}
	if r.CourierID != nil {
		id := r.CourierID.Bytes()
		result.CourierId = &id
	}
	return result
}

func toPickupRequests(rows []queries.RequestResponse) []servers.PickupRequest {
	result := make([]servers.PickupRequest, 0, len(rows))
	for _, r := range rows {
		result = append(result, toPickupRequest(r))
	}
	return result
}

func toAssignment(requestID kernel.UUID, a services.Assignment) servers.Assignment {
	result := servers.Assignment{
		Message:   a.Message(),
		Outcome:   servers.AssignmentOutcome(a.Outcome.String()),
		RequestId: requestID.Bytes(),
	}
	if a.CourierID != nil {
		id := a.CourierID.Bytes()
		result.CourierId = &id
	}
	return result
}

// profileOf builds a requester profile from the form. Contact fields come as
// a value plus an "unknown" flag; exactly one of them must be set.
func profileOf(in servers.RequesterInput) (requester.Profile, error) {
	kind, err := requester.ParseKind(string(in.Kind))
	if err != nil {
		return requester.Profile{}, err
	}

	zoneID, err := kernel.UUIDOf(in.ZoneId)
	if err != nil {
		return requester.Profile{}, err
	}

	email, err := requester.ContactField(requester.FieldEmail, in.Email, valueOf(in.EmailUnknown))
	if err != nil {
		return requester.Profile{}, err
	}

	address, err := requester.ContactField(requester.FieldAddress, in.Address, valueOf(in.AddressUnknown))
	if err != nil {
		return requester.Profile{}, err
	}

	hours, err := serviceHoursOf(in.ServiceHoursStart, in.ServiceHoursEnd, valueOf(in.ServiceHoursNotes))
	if err != nil {
		return requester.Profile{}, err
	}

	return requester.Profile{
		Name:    in.Name,
		Kind:    kind,
		Phone:   in.Phone,
		Email:   email,
		Address: address,
		Hours:   hours,
		ZoneID:  zoneID,
	}, nil
}

func serviceHoursOf(start, end *string, notes string) (requester.ServiceHours, error) {
	from, err := optionalTimeOfDay(start)
	if err != nil {
		return requester.ServiceHours{}, err
	}
	to, err := optionalTimeOfDay(end)
	if err != nil {
		return requester.ServiceHours{}, err
	}
	return requester.NewServiceHours(from, to, notes)
}

func optionalTimeOfDay(s *string) (*kernel.TimeOfDay, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := kernel.ParseTimeOfDay(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func detailsOf(pickupDate openapi_types.Date, useRequesterAddress bool, address, notes *string) request.Details {
	return request.Details{
		UseRequesterAddress: useRequesterAddress,
		PickupAddress:       strings.TrimSpace(valueOf(address)),
		PickupDate:          kernel.DateOf(pickupDate.Time),
		Notes:               valueOf(notes),
	}
}

func courierKindOf(kind servers.CourierKind) (courier.Kind, error) {
	return courier.ParseKind(string(kind))
}
