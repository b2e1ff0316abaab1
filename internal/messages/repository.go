package messages

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, message *Message) error
	ListByThread(ctx context.Context, threadID uuid.UUID) ([]Message, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]Message, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, message *Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *repository) ListByThread(ctx context.Context, threadID uuid.UUID) ([]Message, error) {
	var list []Message
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]Message, error) {
	var list []Message
	err := r.db.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
