package usecase

import (
	"context"

	"github.com/taskforge/backend/domain"
)

// Mutation operation names recorded in the audit trail.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// AuditTrail abstracts the mutation journal so use cases stay storage-agnostic.
// Implementations must never fail a request: recording errors are logged and
// swallowed on the implementation side.
type AuditTrail interface {
	RecordProfile(ctx context.Context, operation string, user *domain.User) error
	RecordTask(ctx context.Context, operation string, task *domain.Task) error
}
