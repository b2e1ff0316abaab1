package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mediflow/internal/patients"
	"mediflow/internal/users"
)

type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*users.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *users.User) error
	// CreateUserWithPatient creates the account and its linked patient record
	// atomically; a failure in either leaves nothing behind.
	CreateUserWithPatient(ctx context.Context, user *users.User, patient *patients.Patient) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&users.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CreateUser(ctx context.Context, user *users.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) CreateUserWithPatient(ctx context.Context, user *users.User, patient *patients.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			return err
		}
		user.PatientID = &patient.ID
		return tx.Create(user).Error
	})
}
