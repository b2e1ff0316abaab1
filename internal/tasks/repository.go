package tasks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Task, error)
	ListByAssignee(ctx context.Context, assigneeID uuid.UUID, status Status) ([]Task, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, task *Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	var task Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Task, error) {
	result := r.db.WithContext(ctx).Model(&Task{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) ListByAssignee(ctx context.Context, assigneeID uuid.UUID, status Status) ([]Task, error) {
	db := r.db.WithContext(ctx).Where("assignee_id = ?", assigneeID)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var list []Task
	err := db.Order("due_at ASC NULLS LAST, created_at ASC").Find(&list).Error
	return list, err
}
