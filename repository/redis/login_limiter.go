package redis

import (
	"context"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository"
)

type loginLimiter struct {
	client      *redislib.Client
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a Redis-backed failed-login counter. Each address
// gets a counter that expires after the window; once it reaches maxAttempts
// further logins are refused until the window lapses.
func NewLoginLimiter(client *redislib.Client, maxAttempts int, window time.Duration) repository.LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &loginLimiter{
		client:      client,
		prefix:      "login_attempts:",
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *loginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	count, err := l.client.Get(ctx, l.key(email)).Int()
	if err != nil {
		if err == redislib.Nil {
			return true, nil
		}
		return false, domain.WrapError(domain.ErrCodeInternal, "read login attempts", err)
	}
	return count < l.maxAttempts, nil
}

func (l *loginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "record login attempt", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "expire login attempts", err)
		}
	}
	return nil
}

func (l *loginLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "reset login attempts", err)
	}
	return nil
}

func (l *loginLimiter) key(email string) string {
	return fmt.Sprintf("%s%s", l.prefix, domain.NormalizeEmail(email))
}
