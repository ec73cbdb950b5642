// Package zonerepo persists zone aggregates with GORM.
package zonerepo

import (
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO is a row of the zones table. Names are unique.
type ZoneDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(50);not null;uniqueIndex"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

func FromDomain(z *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:   z.ID().Bytes(),
		Name: z.Name(),
	}
}

func ToDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDOf(dto.ID)
	if err != nil {
		return nil, err
	}
	return zone.RestoreZone(id, dto.Name)
}
