package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"miniboard/internal/models"
	"miniboard/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 建立新用戶，密碼以 bcrypt 雜湊後儲存
func (s *UserService) Register(ctx context.Context, name, password, comment string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.userRepo.FindByName(ctx, name); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user %q: %w", name, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Password: string(hashedPassword),
		Comment:  comment,
	}
	// 查詢與寫入之間可能有同名註冊搶先完成，由唯一索引判定
	if err := s.userRepo.Create(ctx, user); errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrUserExists
	} else if err != nil {
		return nil, fmt.Errorf("create user %q: %w", name, err)
	}
	return user, nil
}

// Authenticate 驗證帳號密碼，成功時回傳登入身分
func (s *UserService) Authenticate(ctx context.Context, name, password string) (*models.Login, error) {
	user, err := s.userRepo.FindByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user %q: %w", name, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.Login{ID: user.ID, Name: user.Name}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}
