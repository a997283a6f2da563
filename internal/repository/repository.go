package repository

import "miniboard/internal/storage"

type Repositories struct {
	User    UserRepository
	Message MessageRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Message: NewMessageRepository(db),
	}
}
