package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

var (
	ErrEmptyCollection = errors.New("proverb collection is empty")
	ErrInvalidNumber   = errors.New("invalid proverb number")
)

// ProverbRepository serves the proverb collection loaded from the JSON
// data file. The collection is read once at startup and never mutated
// afterwards; file order determines the daily mapping.
type ProverbRepository struct {
	proverbs []*entities.Proverb
}

// NewProverbRepository loads the collection from the JSON file at path.
func NewProverbRepository(path string) (*ProverbRepository, error) {
	proverbs, err := loadProverbs(path)
	if err != nil {
		return nil, err
	}

	return &ProverbRepository{
		proverbs: proverbs,
	}, nil
}

// NewEmptyProverbRepository returns a repository with no proverbs. It is
// the fallback when the data file cannot be loaded: every selection
// reports ErrEmptyCollection instead of taking the process down.
func NewEmptyProverbRepository() *ProverbRepository {
	return &ProverbRepository{}
}

// GetByNumber retrieves a proverb by its 1-based number.
func (r *ProverbRepository) GetByNumber(_ context.Context, number int) (*entities.Proverb, error) {
	if len(r.proverbs) == 0 {
		return nil, ErrEmptyCollection
	}

	if number < 1 || number > len(r.proverbs) {
		return nil, ErrInvalidNumber
	}

	return r.proverbs[number-1], nil
}

// GetRandom retrieves a uniformly random proverb.
func (r *ProverbRepository) GetRandom(_ context.Context) (*entities.Proverb, error) {
	if len(r.proverbs) == 0 {
		return nil, ErrEmptyCollection
	}

	idx := rand.Intn(len(r.proverbs))
	return r.proverbs[idx], nil
}

// GetAll retrieves the whole collection in data file order.
func (r *ProverbRepository) GetAll(_ context.Context) ([]*entities.Proverb, error) {
	return r.proverbs, nil
}

func loadProverbs(path string) ([]*entities.Proverb, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var proverbs []*entities.Proverb
	if err = json.Unmarshal(data, &proverbs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal proverbs JSON: %w", err)
	}

	for i, p := range proverbs {
		if p == nil || p.Proverb == "" || p.Translation == "" || p.Meaning == "" {
			return nil, fmt.Errorf("proverb %d: missing proverb, translation or meaning", i+1)
		}
		p.Number = i + 1
	}

	return proverbs, nil
}
