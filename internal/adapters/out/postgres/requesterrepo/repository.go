package requesterrepo

import (
	"context"
	"strings"

	"vetpickup/internal/adapters/out/postgres/pgerrs"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const unknownDataCondition = "email_unknown OR address_unknown"

// GormRequesterRepository implements RequesterRepository using GORM.
type GormRequesterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRequesterRepository(db *gorm.DB, tracker aggregateTracker) *GormRequesterRepository {
	return &GormRequesterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new requester. An unknown zone is reported as ObjectNotFound.
func (r *GormRequesterRepository) Add(ctx context.Context, aggregate *requester.Requester) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "requester", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column, so values cleared in the aggregate are
// cleared in the row too.
func (r *GormRequesterRepository) Update(ctx context.Context, aggregate *requester.Requester) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RequesterDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.Translate(result.Error, "requester", aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("requester", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the requester and, through the foreign key, its requests.
func (r *GormRequesterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RequesterDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("requester", id.String())
	}
	return nil
}

func (r *GormRequesterRepository) Get(ctx context.Context, id kernel.UUID) (*requester.Requester, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequesterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.Translate(err, "requester", id.String())
	}

	return ToDomain(dto)
}

// Search matches term case-insensitively against name, phone, email and
// address. A negative limit returns every match.
func (r *GormRequesterRepository) Search(ctx context.Context, term string, limit int) ([]*requester.Requester, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"
	query := r.db.WithContext(ctx).Where(
		"name ILIKE @p OR phone ILIKE @p OR COALESCE(email, '') ILIKE @p OR COALESCE(address, '') ILIKE @p",
		map[string]any{"p": pattern},
	)
	if limit >= 0 {
		query = query.Limit(limit)
	}
	return r.find(query)
}

func (r *GormRequesterRepository) ListWithUnknownData(ctx context.Context) ([]*requester.Requester, error) {
	return r.find(r.db.WithContext(ctx).Where(unknownDataCondition))
}

func (r *GormRequesterRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(r.db.WithContext(ctx))
}

func (r *GormRequesterRepository) CountWithUnknownData(ctx context.Context) (int, error) {
	return r.count(r.db.WithContext(ctx).Where(unknownDataCondition))
}

func (r *GormRequesterRepository) CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error) {
	if err := zoneID.Validate(); err != nil {
		return 0, err
	}
	return r.count(r.db.WithContext(ctx).Where("zone_id = ?", zoneID.Bytes()))
}

// find loads the requesters matched by query, ordered by name.
func (r *GormRequesterRepository) find(query *gorm.DB) ([]*requester.Requester, error) {
	var dtos []RequesterDTO
	if err := query.Order(`name COLLATE "C"`).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	result := make([]*requester.Requester, 0, len(dtos))
	for _, dto := range dtos {
		found, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, found)
	}
	return result, nil
}

func (r *GormRequesterRepository) count(query *gorm.DB) (int, error) {
	var n int64
	if err := query.Model(&RequesterDTO{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
