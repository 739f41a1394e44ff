package storage

import (
	"context"

	"go.uber.org/zap"
)

// ============================================================================
// User Operations
// ============================================================================

// GetUser looks up a user by id
func (s *MemStorage) GetUser(ctx context.Context, id int) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.get(id)
	if !ok {
		return User{}, notFoundID("user", id)
	}
	return user, nil
}

// GetUserByUsername returns the first user whose username matches exactly (case-sensitive)
func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.first(func(u User) bool { return u.Username == username })
	if !ok {
		return User{}, ErrNotFound{Entity: "user", Key: username}
	}
	return user, nil
}

// CreateUser stores a new user. Usernames are not checked for uniqueness.
func (s *MemStorage) CreateUser(ctx context.Context, in NewUser) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := User{
		ID:          s.users.allocate(),
		Username:    in.Username,
		Password:    in.Password,
		DisplayName: in.DisplayName,
		Email:       in.Email,
		AvatarURL:   in.AvatarURL,
		Role:        in.Role,
		CreatedAt:   s.now(),
	}
	s.users.put(user.ID, user)

	s.logger.Debug("User created", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return cloneUser(user), nil
}
