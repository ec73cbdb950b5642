package courierrepo

import (
	"context"

	"vetpickup/internal/adapters/out/postgres/pgerrs"
	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier together with its preferred zones.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "courier", aggregate.ID().String())
	}
	if err := r.insertZones(ctx, dto.Zones); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves name and kind and replaces the preferred zones.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "kind": dto.Kind})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).Delete(&CourierZoneDTO{}, "courier_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if err := r.insertZones(ctx, dto.Zones); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the courier. Requests it was assigned to keep their status
// and lose the courier reference through the foreign key.
func (r *GormCourierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CourierDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id.String())
	}
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.withZones(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.Translate(err, "courier", id.String())
	}

	return ToDomain(dto)
}

// List returns every courier in the order they were registered.
func (r *GormCourierRepository) List(ctx context.Context) ([]*courier.Courier, error) {
	return r.find(r.withZones(ctx))
}

// FindByZoneAndKind returns couriers of kind covering zoneID, in the order
// they were registered. The dispatcher takes the first one.
//
// Example:
//
//	fixed, err := repo.FindByZoneAndKind(ctx, zoneID, courier.Fixed)
//	if err != nil {
//		return fmt.Errorf("failed to find couriers: %w", err)
//	}
//	for _, c := range fixed {
//		fmt.Printf("Candidate courier: %s\n", c.Name())
//	}
func (r *GormCourierRepository) FindByZoneAndKind(
	ctx context.Context,
	zoneID kernel.UUID,
	kind courier.Kind,
) ([]*courier.Courier, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	covering := r.db.WithContext(ctx).
		Model(&CourierZoneDTO{}).
		Select("courier_id").
		Where("zone_id = ?", zoneID.Bytes())

	return r.find(r.withZones(ctx).
		Where("kind = ?", kind.String()).
		Where("id IN (?)", covering))
}

func (r *GormCourierRepository) CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error) {
	if err := zoneID.Validate(); err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(&CourierZoneDTO{}).Where("zone_id = ?", zoneID.Bytes()).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *GormCourierRepository) withZones(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Zones", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormCourierRepository) find(query *gorm.DB) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := query.Order("created_at").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

// insertZones writes the links of a courier. An unknown zone is reported as
// ObjectNotFound.
func (r *GormCourierRepository) insertZones(ctx context.Context, zones []CourierZoneDTO) error {
	if len(zones) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&zones).Error; err != nil {
		return pgerrs.Translate(err, "courier", zones[0].CourierID.String())
	}
	return nil
}
