// Package auth implements registration and credential verification.
package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/pkg/token"
	"github.com/taskforge/backend/repository"
)

// dummy bcrypt digest compared against when the email is unknown, so a
// lookup miss costs the same as a password mismatch.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UseCase struct {
	users      repository.UserRepository
	limiter    repository.LoginLimiter
	issuer     *token.Issuer
	bcryptCost int
	logger     *zap.Logger
}

func New(users repository.UserRepository, limiter repository.LoginLimiter, issuer *token.Issuer, bcryptCost int, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UseCase{
		users:      users,
		limiter:    limiter,
		issuer:     issuer,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register validates the candidate identity, enforces email uniqueness and
// persists the new user with a bcrypt password hash. The plaintext password
// never leaves this function and is never logged.
func (uc *UseCase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "hash password", err)
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login verifies the credentials and mints a session token. Unknown email
// and wrong password produce the same error; repeated failures for one
// address are throttled through the limiter.
func (uc *UseCase) Login(ctx context.Context, email, password string) (string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(ctx, email)
		if err != nil {
			uc.logger.Error("login limiter unavailable", zap.Error(err))
		} else if !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return "", uc.failedAttempt(ctx, email)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", uc.failedAttempt(ctx, email)
	}

	if uc.limiter != nil {
		if err := uc.limiter.Reset(ctx, email); err != nil {
			uc.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}

	signed, err := uc.issuer.Issue(user.ID)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeInternal, "sign token", err)
	}
	return signed, nil
}

func (uc *UseCase) failedAttempt(ctx context.Context, email string) error {
	if uc.limiter != nil {
		if err := uc.limiter.RecordFailure(ctx, email); err != nil {
			uc.logger.Error("failed to record login attempt", zap.Error(err))
		}
	}
	return domain.ErrInvalidCredentials
}
