package services

import (
	"fmt"
	"log"

	"forum/internal/models"
	"forum/internal/repositories"
	"forum/pkg/rabbitmq"

	"github.com/google/uuid"
)

// CommentService handles business logic related to comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	mqClient    *rabbitmq.Client // may be nil, events are then skipped
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, mqClient *rabbitmq.Client) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		mqClient:    mqClient,
	}
}

// GetAllComments retrieves all comments.
func (s *CommentService) GetAllComments() ([]models.Comment, error) {
	return s.commentRepo.GetAll()
}

// GetCommentsByPost retrieves all comments attached to the given post.
func (s *CommentService) GetCommentsByPost(postID string) ([]models.Comment, error) {
	if err := uuid.Validate(postID); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, postID)
	}
	return s.commentRepo.GetByPost(postID)
}

// GetCommentByID retrieves a single comment by its ID.
func (s *CommentService) GetCommentByID(id string) (*models.Comment, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return s.commentRepo.GetByID(id)
}

// CreateComment creates a new comment and publishes a content event for it.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := s.commentRepo.Create(comment); err != nil {
		return err
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishContentEvent("comment.created", map[string]interface{}{
			"commentID": comment.ID,
			"postID":    comment.PostID,
			"authorID":  comment.AuthorID,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish comment created event for comment %s: %v", comment.ID, err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}
	return nil
}

// UpdateComment updates an existing comment.
func (s *CommentService) UpdateComment(comment *models.Comment) error {
	if err := uuid.Validate(comment.ID); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, comment.ID)
	}
	return s.commentRepo.Update(comment)
}

// DeleteComment deletes a comment by its ID.
func (s *CommentService) DeleteComment(id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return s.commentRepo.Delete(id)
}
