package profile

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforge/backend/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(seed ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, user := range seed {
		copied := *user
		repo.users[user.ID] = &copied
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == domain.NormalizeEmail(email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateName(_ context.Context, user *domain.User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.UpdatedAt = time.Now()
	return nil
}

func seedUser() *domain.User {
	return &domain.User{
		ID:           "user-1",
		FirstName:    "Ann",
		LastName:     "Lee",
		Email:        "a@x.com",
		PasswordHash: "$2a$04$hash",
	}
}

func TestGet_OwnProfile(t *testing.T) {
	uc := New(newFakeUserRepo(seedUser()), nil, nil)

	user, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FirstName)
}

func TestGet_MissingIdentity(t *testing.T) {
	uc := New(newFakeUserRepo(), nil, nil)

	_, err := uc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdate_MergesAndPersists(t *testing.T) {
	repo := newFakeUserRepo(seedUser())
	uc := New(repo, nil, nil)

	first := "Anna"
	user, err := uc.Update(context.Background(), "user-1", Patch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.FirstName)
	assert.Equal(t, "Lee", user.LastName)

	stored, err := repo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", stored.FirstName)
}

func TestUpdate_RevalidatesNames(t *testing.T) {
	repo := newFakeUserRepo(seedUser())
	uc := New(repo, nil, nil)

	tooLong := strings.Repeat("x", 51)
	_, err := uc.Update(context.Background(), "user-1", Patch{LastName: &tooLong})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	// the failed patch must not be persisted
	stored, err := repo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Lee", stored.LastName)
}

func TestUpdate_MissingIdentity(t *testing.T) {
	uc := New(newFakeUserRepo(), nil, nil)

	first := "Anna"
	_, err := uc.Update(context.Background(), "ghost", Patch{FirstName: &first})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
