package service

import (
	"context"
	"math"
	"strings"

	"miniboard/internal/models"
	"miniboard/internal/repository"
)

// Notifier 在新留言寫入後接收通知
type Notifier interface {
	BroadcastMessage(message *models.Message)
}

// Page 是留言列表的一頁
type Page struct {
	Messages   []models.Message
	Pagination models.Pagination
}

type BoardService struct {
	messageRepo repository.MessageRepository
	notifier    Notifier
	pageSize    int
}

func NewBoardService(messageRepo repository.MessageRepository, notifier Notifier, pageSize int) *BoardService {
	return &BoardService{
		messageRepo: messageRepo,
		notifier:    notifier,
		pageSize:    pageSize,
	}
}

// ListPage 取得第 page 頁的留言，page 小於 1 時視為 1
// 超過最後一頁時回傳空列表，頁碼上限為 (page-1)*pageSize 不會溢位的最大值
func (s *BoardService) ListPage(ctx context.Context, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt/s.pageSize + 1; page > maxPage {
		page = maxPage
	}

	messages, total, err := s.messageRepo.FindPage(ctx, page, s.pageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Messages:   messages,
		Pagination: models.NewPagination(page, s.pageSize, total),
	}, nil
}

// PostMessage 以登入用戶身分新增一則留言
func (s *BoardService) PostMessage(ctx context.Context, login models.Login, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	message := &models.Message{
		Message: text,
		UserID:  login.ID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	// 重新讀取以帶出作者，讀取失敗時以登入身分填入
	if stored, err := s.messageRepo.FindByID(ctx, message.ID); err == nil {
		message = stored
	} else {
		message.User.ID = login.ID
		message.User.Name = login.Name
	}

	if s.notifier != nil {
		s.notifier.BroadcastMessage(message)
	}
	return message, nil
}
