package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]User, error)
	ListByRole(ctx context.Context, hospitalID uuid.UUID, role Role) ([]User, error)
	CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]User, error) {
	var list []User
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListByRole(ctx context.Context, hospitalID uuid.UUID, role Role) ([]User, error) {
	var list []User
	err := r.db.WithContext(ctx).
		Where("hospital_id = ? AND role = ?", hospitalID, role).
		Order("email ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) CountByHospital(ctx context.Context, hospitalID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("hospital_id = ?", hospitalID).
		Count(&count).Error
	return count, err
}
