package repositories

import "forum/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	GetAll() ([]models.Comment, error)
	GetByPost(postID string) ([]models.Comment, error)
	GetByID(id string) (*models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(id string) error
}
