// Package task implements the owner-scoped task CRUD contract.
package task

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskforge/backend/domain"
	"github.com/taskforge/backend/repository"
	"github.com/taskforge/backend/usecase"
)

// Patch is the whitelist of mutable task fields. A nil field is left
// untouched; anything outside this set is rejected at the transport layer.
type Patch struct {
	Title       *string
	Description *string
	Status      *string
}

type UseCase struct {
	tasks  repository.TaskRepository
	audit  usecase.AuditTrail
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, audit usecase.AuditTrail, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		audit:  audit,
		logger: logger,
	}
}

// Create validates and persists a new task for the caller.
func (uc *UseCase) Create(ctx context.Context, userID, title, description, status string) (*domain.Task, error) {
	task, vErr := domain.NewTask(userID, title, description, status)
	if vErr != nil {
		return nil, vErr
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	uc.record(ctx, usecase.OperationCreate, created)
	return created, nil
}

// List returns the caller's tasks newest-first, optionally filtered by
// status. An invalid filter value is rejected rather than ignored.
func (uc *UseCase) List(ctx context.Context, userID, status string) ([]domain.Task, error) {
	filter := repository.TaskFilter{UserID: userID}
	if status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}
	return uc.tasks.List(ctx, filter)
}

// Get returns the task only when owned by the caller; a foreign or missing
// id yields the same not-found error.
func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, userID, id)
}

// Update applies merge-patch semantics over the whitelisted fields and
// re-validates the merged task before persisting.
func (uc *UseCase) Update(ctx context.Context, userID, id string, patch Patch) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil {
		parsed, vErr := domain.ParseStatus(*patch.Status)
		if vErr != nil {
			return nil, vErr
		}
		task.Status = parsed
	}

	if vErr := task.Validate(); vErr != nil {
		return nil, vErr
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	uc.record(ctx, usecase.OperationUpdate, task)
	return task, nil
}

// Delete removes the caller's task. Deleting an already-deleted or foreign
// task fails with not-found, never with a crash.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	if err := uc.tasks.Delete(ctx, userID, id); err != nil {
		return err
	}
	uc.record(ctx, usecase.OperationDelete, &domain.Task{ID: id, UserID: userID})
	return nil
}

func (uc *UseCase) record(ctx context.Context, operation string, task *domain.Task) {
	if uc.audit == nil {
		return
	}
	if err := uc.audit.RecordTask(ctx, operation, task); err != nil {
		uc.logger.Warn("failed to record task mutation",
			zap.String("operation", operation), zap.Error(err))
	}
}
