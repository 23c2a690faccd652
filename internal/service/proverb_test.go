package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
	"github.com/aminkakar/pashto-matal-bot/internal/repository"
)

// fakeProverbRepo serves a fixed slice, standing in for the JSON-backed
// repository.
type fakeProverbRepo struct {
	proverbs []*entities.Proverb
}

func (f *fakeProverbRepo) GetByNumber(_ context.Context, number int) (*entities.Proverb, error) {
	if len(f.proverbs) == 0 {
		return nil, repository.ErrEmptyCollection
	}
	if number < 1 || number > len(f.proverbs) {
		return nil, repository.ErrInvalidNumber
	}
	return f.proverbs[number-1], nil
}

func (f *fakeProverbRepo) GetRandom(_ context.Context) (*entities.Proverb, error) {
	if len(f.proverbs) == 0 {
		return nil, repository.ErrEmptyCollection
	}
	return f.proverbs[0], nil
}

func (f *fakeProverbRepo) GetAll(_ context.Context) ([]*entities.Proverb, error) {
	return f.proverbs, nil
}

func threeProverbs() []*entities.Proverb {
	return []*entities.Proverb{
		{Number: 1, Proverb: "الف", Translation: "A", Meaning: "MA"},
		{Number: 2, Proverb: "ب", Translation: "B", Meaning: "MB"},
		{Number: 3, Proverb: "ج", Translation: "C", Meaning: "MC"},
	}
}

func TestDaily(t *testing.T) {
	ctx := context.Background()
	svc := NewProverbService(&fakeProverbRepo{proverbs: threeProverbs()})

	tests := []struct {
		name       string
		at         time.Time
		wantNumber int
	}{
		{"jan 1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"jan 4 wraps", time.Date(2024, 1, 4, 9, 15, 0, 0, time.UTC), 1},
		{"jan 5", time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.Daily(ctx, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, p.Number)
		})
	}
}

func TestDailyDeterministicWithinDay(t *testing.T) {
	ctx := context.Background()
	svc := NewProverbService(&fakeProverbRepo{proverbs: threeProverbs()})

	morning, err := svc.Daily(ctx, time.Date(2024, 6, 10, 0, 0, 1, 0, time.UTC))
	require.NoError(t, err)
	night, err := svc.Daily(ctx, time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, morning, night)
}

func TestDailyEmptyCollection(t *testing.T) {
	ctx := context.Background()
	svc := NewProverbService(&fakeProverbRepo{})

	_, err := svc.Daily(ctx, time.Now())
	assert.ErrorIs(t, err, repository.ErrEmptyCollection)

	_, err = svc.Random(ctx)
	assert.ErrorIs(t, err, repository.ErrEmptyCollection)
}
