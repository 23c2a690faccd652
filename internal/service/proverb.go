package service

import (
	"context"
	"time"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
	"github.com/aminkakar/pashto-matal-bot/internal/repository"
)

type ProverbRepository interface {
	GetByNumber(ctx context.Context, number int) (*entities.Proverb, error)
	GetRandom(ctx context.Context) (*entities.Proverb, error)
	GetAll(ctx context.Context) ([]*entities.Proverb, error)
}

type ProverbService struct {
	repository ProverbRepository
}

func NewProverbService(repository ProverbRepository) *ProverbService {
	return &ProverbService{repository: repository}
}

// Daily returns the proverb for the UTC calendar day of at. The mapping
// depends only on the civil date, so every caller sees the same proverb
// for the same UTC day and consecutive days advance by one modulo the
// collection length.
func (s *ProverbService) Daily(ctx context.Context, at time.Time) (*entities.Proverb, error) {
	proverbs, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(proverbs) == 0 {
		return nil, repository.ErrEmptyCollection
	}

	return proverbs[DailyIndex(at, len(proverbs))], nil
}

func (s *ProverbService) Random(ctx context.Context) (*entities.Proverb, error) {
	return s.repository.GetRandom(ctx)
}

func (s *ProverbService) ByNumber(ctx context.Context, number int) (*entities.Proverb, error) {
	return s.repository.GetByNumber(ctx, number)
}

func (s *ProverbService) All(ctx context.Context) ([]*entities.Proverb, error) {
	return s.repository.GetAll(ctx)
}
