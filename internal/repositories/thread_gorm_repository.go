package repositories

import (
	"errors"
	"fmt"

	"forum/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMThreadRepository is a GORM implementation of ThreadRepository.
type GORMThreadRepository struct {
	db *gorm.DB
}

// NewGORMThreadRepository creates a new instance of GORMThreadRepository.
func NewGORMThreadRepository(db *gorm.DB) *GORMThreadRepository {
	return &GORMThreadRepository{
		db: db,
	}
}

// GetAll retrieves all threads from the database.
func (r *GORMThreadRepository) GetAll() ([]models.Thread, error) {
	var threads []models.Thread
	if err := r.db.Find(&threads).Error; err != nil {
		return nil, fmt.Errorf("failed to get all threads: %w", err)
	}
	return threads, nil
}

// GetByID retrieves a single thread by its ID from the database.
func (r *GORMThreadRepository) GetByID(id string) (*models.Thread, error) {
	var thread models.Thread
	if err := r.db.First(&thread, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("thread with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get thread by ID %s: %w", id, err)
	}
	return &thread, nil
}

// Create creates a new thread in the database.
func (r *GORMThreadRepository) Create(thread *models.Thread) error {
	if thread.ID == "" {
		thread.ID = uuid.New().String()
	}
	if err := r.db.Create(thread).Error; err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}
	return nil
}

// Update updates an existing thread in the database.
func (r *GORMThreadRepository) Update(thread *models.Thread) error {
	res := r.db.Model(&models.Thread{}).Where("id = ?", thread.ID).
		Updates(map[string]interface{}{
			"name":        thread.Name,
			"description": thread.Description,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update thread: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("thread with ID %s: %w", thread.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a thread by its ID from the database.
func (r *GORMThreadRepository) Delete(id string) error {
	res := r.db.Delete(&models.Thread{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete thread: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("thread with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
