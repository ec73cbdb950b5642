package services_test

import (
	"testing"
	"time"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/model/schedule"
	"vetpickup/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

// world is a small in-memory data set for exercising the domain services.
type world struct {
	t          *testing.T
	zones      map[string]*zone.Zone
	requesters map[string]*requester.Requester
	entries    []schedule.Entry
}

func newWorld(t *testing.T, zoneNames ...string) *world {
	t.Helper()
	w := &world{
		t:          t,
		zones:      make(map[string]*zone.Zone),
		requesters: make(map[string]*requester.Requester),
	}
	for _, name := range zoneNames {
		z, err := zone.NewZone(kernel.NewUUID(), name)
		require.NoError(t, err)
		w.zones[name] = z
	}
	return w
}

func (w *world) zoneID(name string) kernel.UUID {
	w.t.Helper()
	z, ok := w.zones[name]
	require.True(w.t, ok, "unknown zone %s", name)
	return z.ID()
}

func (w *world) courier(name string, kind courier.Kind, zoneNames ...string) *courier.Courier {
	w.t.Helper()
	ids := make([]kernel.UUID, 0, len(zoneNames))
	for _, zn := range zoneNames {
		ids = append(ids, w.zoneID(zn))
	}
	c, err := courier.NewCourier(kernel.NewUUID(), name, kind, ids)
	require.NoError(w.t, err)
	return c
}

func (w *world) requester(name, zoneName string) *requester.Requester {
	w.t.Helper()
	if r, ok := w.requesters[name]; ok {
		return r
	}
	r, err := requester.NewRequester(kernel.NewUUID(), requester.Profile{
		Name:    name,
		Kind:    requester.Veterinaria,
		Phone:   "+56911112222",
		Email:   kernel.Known("contacto@vet.cl"),
		Address: kernel.Known("Calle " + name),
		ZoneID:  w.zoneID(zoneName),
	})
	require.NoError(w.t, err)
	w.requesters[name] = r
	return r
}

// request registers a pending request of requesterName, picked up on pickupDate
// and registered at clock (HH:MM) on the same day.
func (w *world) request(requesterName, zoneName, pickupDate, clock string) schedule.Entry {
	w.t.Helper()
	owner := w.requester(requesterName, zoneName)

	date, err := kernel.ParseDate(pickupDate)
	require.NoError(w.t, err)
	registeredAt, err := time.Parse("2006-01-02 15:04", pickupDate+" "+clock)
	require.NoError(w.t, err)

	req, err := request.NewRequest(kernel.NewUUID(), owner.ID(), request.Details{
		UseRequesterAddress: true,
		PickupDate:          date,
	}, registeredAt)
	require.NoError(w.t, err)
	require.NoError(w.t, req.ApplyRequesterAddress(owner))

	entry, err := schedule.NewEntry(req, owner, w.zones[zoneName])
	require.NoError(w.t, err)
	w.entries = append(w.entries, entry)
	return entry
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func requestIDs(entries []schedule.Entry) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Request.ID())
	}
	return ids
}
