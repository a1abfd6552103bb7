package services

import (
	"fmt"

	"forum/internal/models"
	"forum/internal/repositories"

	"github.com/google/uuid"
)

// ThreadService handles business logic related to threads.
type ThreadService struct {
	threadRepo repositories.ThreadRepository
}

// NewThreadService creates a new ThreadService.
func NewThreadService(threadRepo repositories.ThreadRepository) *ThreadService {
	return &ThreadService{
		threadRepo: threadRepo,
	}
}

// GetAllThreads retrieves all threads.
func (s *ThreadService) GetAllThreads() ([]models.Thread, error) {
	return s.threadRepo.GetAll()
}

// GetThreadByID retrieves a single thread by its ID.
func (s *ThreadService) GetThreadByID(id string) (*models.Thread, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return s.threadRepo.GetByID(id)
}

// CreateThread creates a new thread.
func (s *ThreadService) CreateThread(thread *models.Thread) error {
	return s.threadRepo.Create(thread)
}

// UpdateThread updates an existing thread.
func (s *ThreadService) UpdateThread(thread *models.Thread) error {
	if err := uuid.Validate(thread.ID); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, thread.ID)
	}
	return s.threadRepo.Update(thread)
}

// DeleteThread deletes a thread by its ID.
func (s *ThreadService) DeleteThread(id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return s.threadRepo.Delete(id)
}
