package patients

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

const maxListLimit = 100

type Repository interface {
	Create(ctx context.Context, patient *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Patient, error)
	List(ctx context.Context, hospitalID uuid.UUID, query ListQuery) ([]Patient, error)
	CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, patient *Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	var patient Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Patient, error) {
	var patient Patient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&patient).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *repository) List(ctx context.Context, hospitalID uuid.UUID, query ListQuery) ([]Patient, error) {
	db := r.db.WithContext(ctx).Where("hospital_id = ?", hospitalID)

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ?", searchTerm)
	}

	limit := query.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	var list []Patient
	err := db.Order("name ASC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *repository) CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Patient{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}
