package user

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// InMemoryStore is a user store backed by process memory, used when no
// database is configured and in tests
type InMemoryStore struct {
	users  map[int64]*User
	nextID uint
	mu     sync.RWMutex
}

// NewInMemoryStore creates a new in-memory user store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:  make(map[int64]*User),
		nextID: 1,
	}
}

// CreateUser creates a new user in memory
func (s *InMemoryStore) CreateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; exists {
		return fmt.Errorf("user id %d: %w", user.UserID, ErrDuplicate)
	}

	s.insert(user)
	return nil
}

// GetUserByUserID retrieves a user by its external user id
func (s *InMemoryStore) GetUserByUserID(ctx context.Context, userID int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, fmt.Errorf("user id %d: %w", userID, ErrNotFound)
	}

	// Return a copy to avoid race conditions
	copied := *user
	return &copied, nil
}

// ListUsers retrieves all users ordered by external id
func (s *InMemoryStore) ListUsers(ctx context.Context) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*User, 0, len(s.users))
	for _, user := range s.users {
		copied := *user
		users = append(users, &copied)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].UserID < users[j].UserID
	})

	return users, nil
}

// UpdateUser updates an existing user's fields
func (s *InMemoryStore) UpdateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.users[user.UserID]
	if !exists {
		return fmt.Errorf("user id %d: %w", user.UserID, ErrNotFound)
	}

	existing.Name = user.Name
	existing.UpdatedAt = time.Now().UTC()
	*user = *existing

	return nil
}

// UpsertUser updates a user by external id, creating it if absent
func (s *InMemoryStore) UpsertUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.users[user.UserID]; exists {
		existing.Name = user.Name
		existing.UpdatedAt = time.Now().UTC()
		*user = *existing
		return nil
	}

	s.insert(user)
	return nil
}

// DeleteUser deletes a user by external id
func (s *InMemoryStore) DeleteUser(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[userID]; !exists {
		return fmt.Errorf("user id %d: %w", userID, ErrNotFound)
	}

	delete(s.users, userID)
	return nil
}

// insert stores a user, assigning timestamps and a primary key.
// Caller must hold the write lock
func (s *InMemoryStore) insert(user *User) {
	now := time.Now().UTC()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.nextID++

	copied := *user
	s.users[user.UserID] = &copied
}
