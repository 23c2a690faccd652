package entities

import "time"

// Subscription is a user's opt-in to the daily proverb digest.
type Subscription struct {
	UserID    int64
	ChatID    int64
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
