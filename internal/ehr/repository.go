package ehr

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, record *Record) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Record, error) {
	var list []Record
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
