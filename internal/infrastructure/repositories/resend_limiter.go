package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sachinkumar2222/Productr/domain"
)

// ResendLimiterImpl implements domain.ResendLimiter using Redis TTL keys.
type ResendLimiterImpl struct {
	client *redis.Client
	window time.Duration
}

// NewResendLimiter creates a new Redis-backed resend limiter.
func NewResendLimiter(client *redis.Client, window time.Duration) *ResendLimiterImpl {
	return &ResendLimiterImpl{client: client, window: window}
}

// Reserve implements domain.ResendLimiter. SETNX claims the window
// atomically; a held window reports its remaining TTL.
func (l *ResendLimiterImpl) Reserve(ctx context.Context, key domain.RecipientKey) (bool, time.Duration, error) {
	redisKey := fmt.Sprintf("otp:res:%s:%s", key.Channel, key.Value)

	set, err := l.client.SetNX(ctx, redisKey, 1, l.window).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to set resend throttle: %w", err)
	}
	if set {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return false, ttl, nil
}

var _ domain.ResendLimiter = (*ResendLimiterImpl)(nil)
