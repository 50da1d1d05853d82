// Package profile exposes the caller's own identity record.
package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository"
	"github.com/taskforge/backend/usecase"
)

// Patch is the whitelist of mutable profile fields. Email is immutable
// post-registration and has no place here.
type Patch struct {
	FirstName *string
	LastName  *string
}

type UseCase struct {
	users  repository.UserRepository
	audit  usecase.AuditTrail
	logger *zap.Logger
}

func New(users repository.UserRepository, audit usecase.AuditTrail, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		audit:  audit,
		logger: logger,
	}
}

// Get returns the caller's identity. The password hash is excluded from
// serialization at the domain type, not here.
func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// Update merges the patch into the stored identity, re-validates the name
// constraints and persists the result.
func (uc *UseCase) Update(ctx context.Context, userID string, patch Patch) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		user.LastName = strings.TrimSpace(*patch.LastName)
	}

	if err := user.ValidateNames(); err != nil {
		return nil, err
	}

	if err := uc.users.UpdateName(ctx, user); err != nil {
		return nil, err
	}

	uc.record(ctx, usecase.OperationUpdate, user)
	return user, nil
}

func (uc *UseCase) record(ctx context.Context, operation string, user *domain.User) {
	if uc.audit == nil {
		return
	}
	if err := uc.audit.RecordProfile(ctx, operation, user); err != nil {
		uc.logger.Warn("failed to record profile mutation", zap.Error(err))
	}
}
