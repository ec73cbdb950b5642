package requestrepo

import (
	"context"

	"vetpickup/internal/adapters/out/postgres/pgerrs"
	"vetpickup/internal/adapters/out/postgres/requesterrepo"
	"vetpickup/internal/adapters/out/postgres/zonerepo"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/schedule"
	"vetpickup/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request. Unknown requesters and couriers are reported as
// ObjectNotFound.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column but the insertion order.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.Translate(result.Error, "request", aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.Translate(err, "request", id.String())
	}

	return toDomain(dto)
}

// ListActiveByPickupDate returns pending and assigned requests picked up on
// date, joined with their requester and zone, in the order they were
// registered.
func (r *GormRequestRepository) ListActiveByPickupDate(ctx context.Context, date kernel.Date) ([]schedule.Entry, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Preload("Requester.Zone").
		Where("pickup_date = ?", date.String()).
		Where("status IN ?", []string{request.Pending.String(), request.Assigned.String()}).
		Order("created_at").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]schedule.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := entryOf(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CountByZoneAndPickupDate counts requests of any status whose requester
// lives in zoneID.
func (r *GormRequestRepository) CountByZoneAndPickupDate(
	ctx context.Context,
	zoneID kernel.UUID,
	date kernel.Date,
) (int, error) {
	if err := zoneID.Validate(); err != nil {
		return 0, err
	}
	if err := date.Validate(); err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Joins("JOIN requesters ON requesters.id = requests.requester_id").
		Where("requesters.zone_id = ? AND requests.pickup_date = ?", zoneID.Bytes(), date.String()).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func entryOf(dto RequestDTO) (schedule.Entry, error) {
	req, err := toDomain(dto)
	if err != nil {
		return schedule.Entry{}, err
	}
	owner, err := requesterrepo.ToDomain(dto.Requester)
	if err != nil {
		return schedule.Entry{}, err
	}
	z, err := zonerepo.ToDomain(dto.Requester.Zone)
	if err != nil {
		return schedule.Entry{}, err
	}
	return schedule.NewEntry(req, owner, z)
}
