package prescriptions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, prescription *Prescription) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Prescription, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, prescription *Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *repository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Prescription, error) {
	var list []Prescription
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
