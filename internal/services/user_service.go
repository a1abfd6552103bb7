package services

import (
	"fmt"

	"forum/internal/models"
	"forum/internal/repositories"

	"github.com/google/uuid"
)

// updatableUserFields are the profile fields a partial update may touch.
// Anything else in the request (notably the password hash) is dropped.
var updatableUserFields = map[string]bool{
	"username": true,
	"email":    true,
	"bio":      true,
	"picture":  true,
	"verified": true,
}

// UserService handles profile reads and partial updates.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUser retrieves a user by ID. A malformed identifier fails with
// ErrInvalidID before the store is queried.
func (s *UserService) GetUser(id string) (*models.User, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return s.userRepo.GetByID(id)
}

// UpdateUser merges the given fields into the user record and returns the
// post-update record. A malformed identifier fails with ErrInvalidID before
// the store is touched.
func (s *UserService) UpdateUser(id string, fields map[string]interface{}) (*models.User, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	filtered := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if updatableUserFields[k] {
			filtered[k] = v
		}
	}

	return s.userRepo.UpdateFields(id, filtered)
}
