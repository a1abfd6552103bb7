package repositories

import (
	"errors"
	"fmt"

	"forum/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// GetAll retrieves all comments from the database.
func (r *GORMCommentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all comments: %w", err)
	}
	return comments, nil
}

// GetByPost retrieves all comments attached to the given post.
func (r *GORMCommentRepository) GetByPost(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Find(&comments, "post_id = ?", postID).Error; err != nil {
		return nil, fmt.Errorf("failed to get comments for post %s: %w", postID, err)
	}
	return comments, nil
}

// GetByID retrieves a single comment by its ID from the database.
func (r *GORMCommentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment by ID %s: %w", id, err)
	}
	return &comment, nil
}

// Create creates a new comment in the database.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// Update updates the content of an existing comment.
func (r *GORMCommentRepository) Update(comment *models.Comment) error {
	res := r.db.Model(&models.Comment{}).Where("id = ?", comment.ID).
		Update("content", comment.Content)
	if res.Error != nil {
		return fmt.Errorf("failed to update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %s: %w", comment.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a comment by its ID from the database.
func (r *GORMCommentRepository) Delete(id string) error {
	res := r.db.Delete(&models.Comment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
