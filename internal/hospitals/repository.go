package hospitals

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrHospitalNotFound = errors.New("hospital not found")

type Repository interface {
	Create(ctx context.Context, hospital *Hospital) error
	GetByCode(ctx context.Context, code string) (*Hospital, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, hospital *Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Hospital, error) {
	var hospital Hospital
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	var hospital Hospital
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}
