package alerts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, alert *Alert) error
	ListLatest(ctx context.Context, hospitalID uuid.UUID, limit int) ([]Alert, error)
	CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, alert *Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *repository) ListLatest(ctx context.Context, hospitalID uuid.UUID, limit int) ([]Alert, error) {
	var list []Alert
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *repository) CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Alert{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}
