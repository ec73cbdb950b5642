// Package requesterrepo persists requester aggregates with GORM.
package requesterrepo

import (
	"errors"

	"vetpickup/internal/adapters/out/postgres/zonerepo"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"

	"github.com/google/uuid"
)

// RequesterDTO is a row of the requesters table. Email and address are stored
// as a nullable value plus an "unknown" flag. Rows with neither set come from
// before the flags existed and load as incomplete requesters.
type RequesterDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name           string           `gorm:"type:varchar(100);not null;index"`
	Kind           string           `gorm:"type:varchar(20);not null"`
	Phone          string           `gorm:"type:varchar(20);not null"`
	Email          *string          `gorm:"type:varchar(255)"`
	EmailUnknown   bool             `gorm:"not null;default:false"`
	Address        *string          `gorm:"type:varchar(255)"`
	AddressUnknown bool             `gorm:"not null;default:false"`
	HoursStart     *string          `gorm:"type:varchar(8)"`
	HoursEnd       *string          `gorm:"type:varchar(8)"`
	HoursNotes     string           `gorm:"type:text;not null;default:''"`
	ZoneID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Zone           zonerepo.ZoneDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
}

func (RequesterDTO) TableName() string {
	return "requesters"
}

func FromDomain(r *requester.Requester) RequesterDTO {
	dto := RequesterDTO{
		ID:             r.ID().Bytes(),
		Name:           r.Name(),
		Kind:           r.Kind().String(),
		Phone:          r.Phone(),
		Email:          knownValue(r.Email()),
		EmailUnknown:   r.Email().IsUnknown(),
		Address:        knownValue(r.Address()),
		AddressUnknown: r.Address().IsUnknown(),
		HoursNotes:     r.ServiceHours().Notes(),
		ZoneID:         r.ZoneID().Bytes(),
	}

	if start, end, ok := r.ServiceHours().Window(); ok {
		s, e := start.String(), end.String()
		dto.HoursStart, dto.HoursEnd = &s, &e
	}
	return dto
}

func ToDomain(dto RequesterDTO) (*requester.Requester, error) {
	id, idErr := kernel.UUIDOf(dto.ID)
	zoneID, zoneErr := kernel.UUIDOf(dto.ZoneID)
	kind, kindErr := requester.ParseKind(dto.Kind)
	hours, hoursErr := serviceHours(dto)
	if err := errors.Join(idErr, zoneErr, kindErr, hoursErr); err != nil {
		return nil, err
	}

	return requester.RestoreRequester(id, requester.Profile{
		Name:    dto.Name,
		Kind:    kind,
		Phone:   dto.Phone,
		Email:   knowable(dto.Email, dto.EmailUnknown),
		Address: knowable(dto.Address, dto.AddressUnknown),
		Hours:   hours,
		ZoneID:  zoneID,
	})
}

func knownValue(k kernel.Knowable[string]) *string {
	if v, ok := k.Value(); ok {
		return &v
	}
	return nil
}

func knowable(value *string, unknown bool) kernel.Knowable[string] {
	switch {
	case value != nil:
		return kernel.Known(*value)
	case unknown:
		return kernel.Unknown[string]()
	default:
		return kernel.Knowable[string]{}
	}
}

func serviceHours(dto RequesterDTO) (requester.ServiceHours, error) {
	var start, end *kernel.TimeOfDay
	if dto.HoursStart != nil {
		t, err := kernel.ParseTimeOfDay(*dto.HoursStart)
		if err != nil {
			return requester.ServiceHours{}, err
		}
		start = &t
	}
	if dto.HoursEnd != nil {
		t, err := kernel.ParseTimeOfDay(*dto.HoursEnd)
		if err != nil {
			return requester.ServiceHours{}, err
		}
		end = &t
	}
	return requester.NewServiceHours(start, end, dto.HoursNotes)
}
