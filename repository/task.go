package repository

import (
	"context"

	"github.com/taskforge/backend/domain"
)

// TaskFilter narrows a listing to one owner and, optionally, one status.
// UserID is mandatory: there is no unscoped task query.
type TaskFilter struct {
	UserID string
	Status domain.TaskStatus
}

// TaskRepository is the persistence contract for tasks. Every operation
// takes the owning user ID and matches it in the query itself, so a task
// belonging to another user is indistinguishable from a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, userID, id string) error
}
