package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"miniboard/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrUserExists         = errors.New("user already exists")
	ErrEmptyMessage       = errors.New("message must not be empty")
)

type Services struct {
	UserService  *UserService
	BoardService *BoardService
	Hub          *Hub
}

func NewServices(repos *repository.Repositories, pageSize int, log *logrus.Logger) *Services {
	hub := NewHub(log)

	return &Services{
		UserService:  NewUserService(repos.User),
		BoardService: NewBoardService(repos.Message, hub, pageSize),
		Hub:          hub,
	}
}
