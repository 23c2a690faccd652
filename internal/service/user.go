package service

import (
	"context"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

type UserRepository interface {
	Exists(ctx context.Context, userID int64) (bool, error)
	Save(ctx context.Context, user *entities.User) (bool, error)
}

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	exists, err := s.repository.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.repository.Save(ctx, entities.NewUser(userID, chatID))
	return err
}
