package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

type fakeSubscriptionRepo struct {
	subs []*entities.Subscription
}

func (f *fakeSubscriptionRepo) SetEnabled(_ context.Context, userID, chatID int64, enabled bool) error {
	for _, s := range f.subs {
		if s.UserID == userID {
			s.Enabled = enabled
			return nil
		}
	}
	f.subs = append(f.subs, &entities.Subscription{UserID: userID, ChatID: chatID, Enabled: enabled})
	return nil
}

func (f *fakeSubscriptionRepo) Get(_ context.Context, userID int64) (*entities.Subscription, error) {
	for _, s := range f.subs {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, ErrSubscriptionNotFound
}

func (f *fakeSubscriptionRepo) GetEnabledBatch(_ context.Context, limit, offset int) ([]*entities.Subscription, error) {
	var enabled []*entities.Subscription
	for _, s := range f.subs {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}

	if offset >= len(enabled) {
		return nil, nil
	}
	end := offset + limit
	if end > len(enabled) {
		end = len(enabled)
	}
	return enabled[offset:end], nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	chatIDs []int64
}

func (n *recordingNotifier) SendDaily(chatID int64, _ entities.Proverb) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chatIDs = append(n.chatIDs, chatID)
	return nil
}

func TestSendDailyDigest(t *testing.T) {
	ctx := context.Background()

	subRepo := &fakeSubscriptionRepo{}
	require.NoError(t, subRepo.SetEnabled(ctx, 1, 101, true))
	require.NoError(t, subRepo.SetEnabled(ctx, 2, 102, false))
	require.NoError(t, subRepo.SetEnabled(ctx, 3, 103, true))

	proverbs := NewProverbService(&fakeProverbRepo{proverbs: threeProverbs()})
	digest := NewDigestService(subRepo, proverbs, "0 0 * * *", zap.NewNop())

	notifier := &recordingNotifier{}
	digest.SetNotifier(notifier)

	require.NoError(t, digest.sendDailyDigest(ctx))

	// Only enabled subscriptions receive the digest.
	assert.ElementsMatch(t, []int64{101, 103}, notifier.chatIDs)
}

func TestSendDailyDigestEmptyCollection(t *testing.T) {
	ctx := context.Background()

	subRepo := &fakeSubscriptionRepo{}
	require.NoError(t, subRepo.SetEnabled(ctx, 1, 101, true))

	proverbs := NewProverbService(&fakeProverbRepo{})
	digest := NewDigestService(subRepo, proverbs, "0 0 * * *", zap.NewNop())
	digest.SetNotifier(&recordingNotifier{})

	// An empty collection skips the broadcast without failing.
	require.NoError(t, digest.sendDailyDigest(ctx))
}

func TestSubscriptionService(t *testing.T) {
	ctx := context.Background()

	svc := NewSubscriptionService(&fakeSubscriptionRepo{})

	subscribed, err := svc.IsSubscribed(ctx, 7)
	require.NoError(t, err)
	assert.False(t, subscribed)

	require.NoError(t, svc.Subscribe(ctx, 7, 700))
	subscribed, err = svc.IsSubscribed(ctx, 7)
	require.NoError(t, err)
	assert.True(t, subscribed)

	require.NoError(t, svc.Unsubscribe(ctx, 7, 700))
	subscribed, err = svc.IsSubscribed(ctx, 7)
	require.NoError(t, err)
	assert.False(t, subscribed)
}
