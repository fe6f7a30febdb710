package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-management-api/internal/domain/user"
	pkgerrors "user-management-api/pkg/errors"
)

// UserStore implements the user repository over an insertion-ordered slice.
// All access goes through mu; callers only ever receive copies.
type UserStore struct {
	mu    sync.RWMutex
	users []user.User
	log   *zap.Logger
}

// NewUserStore creates an empty UserStore.
func NewUserStore(log *zap.Logger) *UserStore {
	return &UserStore{
		users: make([]user.User, 0),
		log:   log,
	}
}

// Create assigns a fresh id to u and appends it to the collection.
func (s *UserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	record := user.User{
		ID:    uuid.New(),
		Name:  u.Name,
		Email: u.Email,
	}

	s.mu.Lock()
	s.users = append(s.users, record)
	count := len(s.users)
	s.mu.Unlock()

	s.log.Debug("user stored", zap.String("id", record.ID.String()), zap.Int("count", count))
	return &record, nil
}

// List returns the users covered by page in insertion order.
func (s *UserStore) List(ctx context.Context, page user.Page) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start, end := page.Bounds(len(s.users))
	out := make([]user.User, end-start)
	copy(out, s.users[start:end])
	return out, nil
}

// GetByID retrieves a user by id.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}
	record := s.users[i]
	return &record, nil
}

// Update replaces name and email of the stored user with u.ID.
func (s *UserStore) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(u.ID)
	if i < 0 {
		return nil, notFound(u.ID)
	}
	s.users[i].Name = u.Name
	s.users[i].Email = u.Email

	record := s.users[i]
	return &record, nil
}

// Delete removes the user with the given id, keeping the order of the rest.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.users = append(s.users[:i], s.users[i+1:]...)

	s.log.Debug("user removed", zap.String("id", id.String()))
	return nil
}

// Count returns the number of stored users.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// indexOf must be called with mu held.
func (s *UserStore) indexOf(id uuid.UUID) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id uuid.UUID) error {
	return pkgerrors.NewNotFoundError("user", "user not found: id="+id.String())
}
