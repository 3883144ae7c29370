package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"supplydesk/internal/core"
)

// UserStore holds user records in a map keyed by id.
type UserStore struct {
	mu      sync.RWMutex
	records map[string]core.User
}

var _ core.UserStore = (*UserStore)(nil)

func NewUserStore() *UserStore {
	return &UserStore{records: make(map[string]core.User)}
}

func (s *UserStore) Create(ctx context.Context, user core.User) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.Username == user.Username {
			return nil, core.ValidationError{Field: "username", Reason: "already taken"}
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.records[user.ID] = user
	return &user, nil
}

func (s *UserStore) Get(ctx context.Context, id string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.records[id]
	if !ok {
		return nil, core.NotFoundError{Entity: core.EntityUser, ID: id}
	}
	return &user, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.records {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, core.NotFoundError{Entity: core.EntityUser, ID: username}
}
