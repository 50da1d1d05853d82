package repository

import (
	"context"

	"github.com/taskforge/backend/domain"
)

// UserRepository is the persistence contract for identities. Email lookups
// are case-insensitive; Create fails with domain.ErrEmailTaken on a
// duplicate address.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateName(ctx context.Context, user *domain.User) error
}
