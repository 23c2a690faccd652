package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
	"github.com/aminkakar/pashto-matal-bot/internal/infra/postgres"
	"github.com/aminkakar/pashto-matal-bot/internal/service"
)

// SubscriptionRepository manages daily digest subscriptions.
type SubscriptionRepository struct {
	db postgres.DBTX
}

// NewSubscriptionRepository creates a new SubscriptionRepository.
func NewSubscriptionRepository(db postgres.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// SetEnabled turns the digest on or off for a user, creating the
// subscription row on first use.
func (r *SubscriptionRepository) SetEnabled(ctx context.Context, userID, chatID int64, enabled bool) error {
	query := `
		INSERT INTO subscriptions (user_id, chat_id, enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			enabled = EXCLUDED.enabled,
			updated_at = now()
	`

	_, err := r.db.Exec(ctx, query, userID, chatID, enabled)
	if err != nil {
		return fmt.Errorf("set subscription enabled: %w", err)
	}

	return nil
}

// Get retrieves a user's subscription.
func (r *SubscriptionRepository) Get(ctx context.Context, userID int64) (*entities.Subscription, error) {
	query := `
		SELECT user_id, chat_id, enabled, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`

	var sub entities.Subscription
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&sub.UserID,
		&sub.ChatID,
		&sub.Enabled,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}

	return &sub, nil
}

// GetEnabledBatch retrieves a page of enabled subscriptions ordered by
// user ID, for the digest broadcast loop.
func (r *SubscriptionRepository) GetEnabledBatch(ctx context.Context, limit, offset int) ([]*entities.Subscription, error) {
	query := `
		SELECT user_id, chat_id, enabled, created_at, updated_at
		FROM subscriptions
		WHERE enabled
		ORDER BY user_id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get enabled subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*entities.Subscription
	for rows.Next() {
		var sub entities.Subscription
		if err := rows.Scan(
			&sub.UserID,
			&sub.ChatID,
			&sub.Enabled,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, &sub)
	}

	return subs, rows.Err()
}
