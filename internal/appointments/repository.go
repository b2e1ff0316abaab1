package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

const frontDeskListLimit = 50

type Repository interface {
	Create(ctx context.Context, appointment *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, status Status, limit int) ([]Appointment, error)
	ListInWindow(ctx context.Context, hospitalID uuid.UUID, doctorID *uuid.UUID, from, to time.Time) ([]Appointment, error)
	CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, appointment *Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	var appointment Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Appointment, error) {
	result := r.db.WithContext(ctx).Model(&Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAppointmentNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Appointment, error) {
	var list []Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("start_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error) {
	var list []Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("start_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListByHospital(ctx context.Context, hospitalID uuid.UUID, status Status, limit int) ([]Appointment, error) {
	db := r.db.WithContext(ctx).Where("hospital_id = ?", hospitalID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if limit <= 0 || limit > frontDeskListLimit {
		limit = frontDeskListLimit
	}

	var list []Appointment
	err := db.Order("start_at DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *repository) ListInWindow(ctx context.Context, hospitalID uuid.UUID, doctorID *uuid.UUID, from, to time.Time) ([]Appointment, error) {
	db := r.db.WithContext(ctx).
		Where("hospital_id = ? AND start_at >= ? AND start_at < ?", hospitalID, from, to)
	if doctorID != nil {
		db = db.Where("doctor_id = ?", *doctorID)
	}

	var list []Appointment
	err := db.Order("start_at ASC").Find(&list).Error
	return list, err
}

func (r *repository) CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Appointment{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}
