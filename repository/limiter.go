package repository

import "context"

// LoginLimiter throttles repeated failed logins per email address.
type LoginLimiter interface {
	// Allow reports whether another attempt for the address is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts a failed attempt inside the sliding window.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
