// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// A courier row carries its name and kind; preferred zones live in courier_zones,
// one row per zone, in the order staff listed them.
package courierrepo

import (
	"errors"

	"vetpickup/internal/adapters/out/postgres/zonerepo"
	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// CreatedAt keeps the natural order couriers are listed and dispatched in.
type CourierDTO struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name      string           `gorm:"type:varchar(100);not null"`
	Kind      string           `gorm:"type:varchar(20);not null;index"`
	CreatedAt int64            `gorm:"autoCreateTime:nano;not null;index"`
	Zones     []CourierZoneDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// CourierZoneDTO links a courier to one preferred zone. Deleting the zone
// drops the link.
type CourierZoneDTO struct {
	CourierID uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ZoneID    uuid.UUID        `gorm:"type:uuid;primaryKey;index"`
	Position  int              `gorm:"type:int;not null"`
	Zone      zonerepo.ZoneDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
}

func (CourierZoneDTO) TableName() string {
	return "courier_zones"
}

func fromDomain(c *courier.Courier) CourierDTO {
	courierID := c.ID().Bytes()
	zones := make([]CourierZoneDTO, 0, len(c.PreferredZones()))
	for i, zoneID := range c.PreferredZones() {
		zones = append(zones, CourierZoneDTO{
			CourierID: courierID,
			ZoneID:    zoneID.Bytes(),
			Position:  i,
		})
	}

	return CourierDTO{
		ID:    courierID,
		Name:  c.Name(),
		Kind:  c.Kind().String(),
		Zones: zones,
	}
}

// ToDomain rebuilds a courier from a row loaded with its zones.
func ToDomain(dto CourierDTO) (*courier.Courier, error) {
	id, idErr := kernel.UUIDOf(dto.ID)
	kind, kindErr := courier.ParseKind(dto.Kind)
	if err := errors.Join(idErr, kindErr); err != nil {
		return nil, err
	}

	zoneIDs := make([]kernel.UUID, 0, len(dto.Zones))
	for _, z := range dto.Zones {
		zoneID, err := kernel.UUIDOf(z.ZoneID)
		if err != nil {
			return nil, err
		}
		zoneIDs = append(zoneIDs, zoneID)
	}

	return courier.RestoreCourier(id, dto.Name, kind, zoneIDs)
}
