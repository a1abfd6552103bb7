package repositories

import (
	"fmt"
	"sync"

	"forum/internal/models"

	"github.com/google/uuid"
)

// MockThreadRepository is an in-memory implementation of ThreadRepository.
type MockThreadRepository struct {
	threads map[string]models.Thread
	mu      sync.RWMutex
}

// NewMockThreadRepository creates a new instance of MockThreadRepository.
func NewMockThreadRepository() *MockThreadRepository {
	return &MockThreadRepository{
		threads: make(map[string]models.Thread),
	}
}

// GetAll returns all threads.
func (r *MockThreadRepository) GetAll() ([]models.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	threadList := make([]models.Thread, 0, len(r.threads))
	for _, t := range r.threads {
		threadList = append(threadList, t)
	}
	return threadList, nil
}

// GetByID returns a thread by its ID.
func (r *MockThreadRepository) GetByID(id string) (*models.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	thread, ok := r.threads[id]
	if !ok {
		return nil, fmt.Errorf("thread with ID %s: %w", id, ErrNotFound)
	}
	return &thread, nil
}

// Create adds a new thread.
func (r *MockThreadRepository) Create(thread *models.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if thread.ID == "" {
		thread.ID = uuid.New().String()
	}
	r.threads[thread.ID] = *thread
	return nil
}

// Update modifies an existing thread.
func (r *MockThreadRepository) Update(thread *models.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.threads[thread.ID]
	if !ok {
		return fmt.Errorf("thread with ID %s: %w", thread.ID, ErrNotFound)
	}
	existing.Name = thread.Name
	existing.Description = thread.Description
	r.threads[thread.ID] = existing
	return nil
}

// Delete removes a thread by its ID.
func (r *MockThreadRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.threads[id]; !ok {
		return fmt.Errorf("thread with ID %s: %w", id, ErrNotFound)
	}
	delete(r.threads, id)
	return nil
}
