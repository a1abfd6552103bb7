package repositories

import (
	"fmt"
	"sync"

	"forum/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user. Like the real store it enforces unique usernames
// and emails at insert time.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("duplicate key: username or email already exists")
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = *user
	return nil
}

// GetByUsernameOrEmail returns a user matching the identifier as either
// username or email.
func (r *MockUserRepository) GetByUsernameOrEmail(identifier string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", identifier, ErrNotFound)
}

// GetByEmail returns a user by email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// GetByID returns a user by ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether the username or email is taken.
func (r *MockUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// UpdateFields merges the given fields into an existing user.
func (r *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}

	for k, v := range fields {
		switch k {
		case "username":
			if s, ok := v.(string); ok {
				user.Username = s
			}
		case "email":
			if s, ok := v.(string); ok {
				user.Email = s
			}
		case "bio":
			if s, ok := v.(string); ok {
				user.Bio = s
			}
		case "picture":
			if s, ok := v.(string); ok {
				user.Picture = s
			}
		case "verified":
			if b, ok := v.(bool); ok {
				user.Verified = b
			}
		}
	}

	r.users[id] = user
	return &user, nil
}
