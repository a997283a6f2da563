package repository

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"miniboard/internal/models"
	"miniboard/internal/storage"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	db *storage.DB
}

func NewUserRepository(db *storage.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 名稱重複時回傳 gorm.ErrDuplicatedKey
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return gorm.ErrDuplicatedKey
	}
	return err
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll 依註冊順序列出所有用戶
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}
