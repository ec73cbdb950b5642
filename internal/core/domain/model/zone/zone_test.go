package zone_test

import (
	"strings"
	"testing"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZone(t *testing.T) {
	t.Run("should create zone with trimmed name", func(t *testing.T) {
		id := kernel.NewUUID()

		z, err := zone.NewZone(id, "  Providencia ")

		require.NoError(t, err)
		require.NoError(t, z.Validate())
		assert.True(t, z.ID().IsEqual(id))
		assert.Equal(t, "Providencia", z.Name())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		z, err := zone.NewZone(kernel.UUID{}, "   ")

		require.Error(t, err)
		assert.Nil(t, z)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, zone.ErrNameIsRequired)
	})

	t.Run("should reject names longer than the column", func(t *testing.T) {
		_, err := zone.NewZone(kernel.NewUUID(), strings.Repeat("z", zone.MaxNameLength+1))

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestZone_Rename(t *testing.T) {
	z, err := zone.NewZone(kernel.NewUUID(), "Ñuñoa")
	require.NoError(t, err)

	require.NoError(t, z.Rename("Ñuñoa Norte"))
	assert.Equal(t, "Ñuñoa Norte", z.Name())

	assert.ErrorIs(t, z.Rename(""), zone.ErrNameIsRequired)
	assert.Equal(t, "Ñuñoa Norte", z.Name())
}

func TestZone_Validate(t *testing.T) {
	var zero zone.Zone
	var nilZone *zone.Zone

	assert.Equal(t, zone.ErrZoneIsNotConstructed, zero.Validate())
	assert.Equal(t, zone.ErrZoneIsNotConstructed, nilZone.Validate())
}

func TestZone_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := zone.NewZone(id, "Centro")
	b, _ := zone.RestoreZone(id, "Centro Histórico")
	c, _ := zone.NewZone(kernel.NewUUID(), "Centro")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
