// Package requestrepo persists pickup requests with GORM.
package requestrepo

import (
	"errors"

	"vetpickup/internal/adapters/out/postgres/courierrepo"
	"vetpickup/internal/adapters/out/postgres/requesterrepo"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO is a row of the requests table. Dates are stored as
// "2006-01-02" and times as "15:04:05" so the session time zone never shifts
// them. CreatedAt keeps the natural order of the day schedule.
type RequestDTO struct {
	ID                  uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	RequesterID         uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Requester           requesterrepo.RequesterDTO `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	UseRequesterAddress bool                       `gorm:"not null"`
	PickupAddress       string                     `gorm:"type:varchar(255);not null"`
	PickupDate          string                     `gorm:"type:varchar(10);not null;index"`
	RequestDate         string                     `gorm:"type:varchar(10);not null"`
	RequestTime         string                     `gorm:"type:varchar(8);not null"`
	Status              string                     `gorm:"type:varchar(16);not null;index"`
	CourierID           *uuid.UUID                 `gorm:"type:uuid;index"`
	Courier             *courierrepo.CourierDTO    `gorm:"foreignKey:CourierID;constraint:OnDelete:SET NULL"`
	Notes               string                     `gorm:"type:text;not null;default:''"`
	CreatedAt           int64                      `gorm:"autoCreateTime:nano;not null;index"`
}

func (RequestDTO) TableName() string {
	return "requests"
}

func fromDomain(r *request.Request) RequestDTO {
	var courierID *uuid.UUID
	if id := r.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return RequestDTO{
		ID:                  r.ID().Bytes(),
		RequesterID:         r.RequesterID().Bytes(),
		UseRequesterAddress: r.UsesRequesterAddress(),
		PickupAddress:       r.PickupAddress(),
		PickupDate:          r.PickupDate().String(),
		RequestDate:         r.RequestDate().String(),
		RequestTime:         r.RequestTime().String(),
		Status:              r.Status().String(),
		CourierID:           courierID,
		Notes:               r.Notes(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	id, idErr := kernel.UUIDOf(dto.ID)
	requesterID, requesterErr := kernel.UUIDOf(dto.RequesterID)
	pickupDate, pickupErr := kernel.ParseDate(dto.PickupDate)
	requestDate, dateErr := kernel.ParseDate(dto.RequestDate)
	requestTime, timeErr := kernel.ParseTimeOfDay(dto.RequestTime)
	status, statusErr := request.ParseStatus(dto.Status)
	if err := errors.Join(idErr, requesterErr, pickupErr, dateErr, timeErr, statusErr); err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, err := kernel.UUIDOf(*dto.CourierID)
		if err != nil {
			return nil, err
		}
		courierID = &cID
	}

	return request.RestoreRequest(
		id,
		requesterID,
		request.Details{
			UseRequesterAddress: dto.UseRequesterAddress,
			PickupAddress:       dto.PickupAddress,
			PickupDate:          pickupDate,
			Notes:               dto.Notes,
		},
		requestDate,
		requestTime,
		status,
		courierID,
	)
}
