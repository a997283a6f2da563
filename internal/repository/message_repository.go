package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"miniboard/internal/models"
	"miniboard/internal/storage"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindByID(ctx context.Context, id uint) (*models.Message, error)
	// FindPage 依建立時間由新到舊取出第 page 頁（從 1 開始），並帶出作者
	FindPage(ctx context.Context, page, pageSize int) ([]models.Message, int64, error)
}

type messageRepository struct {
	db *storage.DB
}

func NewMessageRepository(db *storage.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create 只寫入留言本身，不連帶寫入作者
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).Preload("User", withDeletedUsers).First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindPage(ctx context.Context, page, pageSize int) ([]models.Message, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Message{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", err)
	}

	messages := make([]models.Message, 0, pageSize)
	err := db.Preload("User", withDeletedUsers).
		Order("created_at DESC").
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("fetch messages page %d: %w", page, err)
	}

	return messages, total, nil
}

// 已軟刪除的用戶仍需顯示在舊留言上
func withDeletedUsers(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
