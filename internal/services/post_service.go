package services

import (
	"fmt"
	"log"

	"forum/internal/models"
	"forum/internal/repositories"
	"forum/pkg/rabbitmq"

	"github.com/google/uuid"
)

// PostService handles business logic related to posts.
type PostService struct {
	postRepo repositories.PostRepository
	mqClient *rabbitmq.Client // may be nil, events are then skipped
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, mqClient *rabbitmq.Client) *PostService {
	return &PostService{
		postRepo: postRepo,
		mqClient: mqClient,
	}
}

// GetAllPosts retrieves all posts.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.postRepo.GetAll()
}

// GetPostsByThread retrieves all posts in the given thread.
func (s *PostService) GetPostsByThread(threadID string) ([]models.Post, error) {
	if err := uuid.Validate(threadID); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, threadID)
	}
	return s.postRepo.GetByThread(threadID)
}

// GetPostByID retrieves a single post by its ID.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return s.postRepo.GetByID(id)
}

// CreatePost creates a new post and publishes a content event for it.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := s.postRepo.Create(post); err != nil {
		return err
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishContentEvent("post.created", map[string]interface{}{
			"postID":   post.ID,
			"threadID": post.ThreadID,
			"authorID": post.AuthorID,
		})
		if err != nil {
			log.Printf("Warning: Failed to publish post created event for post %s: %v", post.ID, err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}
	return nil
}

// UpdatePost updates an existing post.
func (s *PostService) UpdatePost(post *models.Post) error {
	if err := uuid.Validate(post.ID); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, post.ID)
	}
	return s.postRepo.Update(post)
}

// DeletePost deletes a post by its ID.
func (s *PostService) DeletePost(id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return s.postRepo.Delete(id)
}
