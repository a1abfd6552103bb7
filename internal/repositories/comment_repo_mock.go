package repositories

import (
	"fmt"
	"sync"

	"forum/internal/models"

	"github.com/google/uuid"
)

// MockCommentRepository is an in-memory implementation of CommentRepository.
type MockCommentRepository struct {
	comments map[string]models.Comment
	mu       sync.RWMutex
}

// NewMockCommentRepository creates a new instance of MockCommentRepository.
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[string]models.Comment),
	}
}

// GetAll returns all comments.
func (r *MockCommentRepository) GetAll() ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commentList := make([]models.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		commentList = append(commentList, c)
	}
	return commentList, nil
}

// GetByPost returns all comments attached to the given post.
func (r *MockCommentRepository) GetByPost(postID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var commentList []models.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			commentList = append(commentList, c)
		}
	}
	return commentList, nil
}

// GetByID returns a comment by its ID.
func (r *MockCommentRepository) GetByID(id string) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment with ID %s: %w", id, ErrNotFound)
	}
	return &comment, nil
}

// Create adds a new comment.
func (r *MockCommentRepository) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	r.comments[comment.ID] = *comment
	return nil
}

// Update modifies an existing comment.
func (r *MockCommentRepository) Update(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.comments[comment.ID]
	if !ok {
		return fmt.Errorf("comment with ID %s: %w", comment.ID, ErrNotFound)
	}
	existing.Content = comment.Content
	r.comments[comment.ID] = existing
	return nil
}

// Delete removes a comment by its ID.
func (r *MockCommentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("comment with ID %s: %w", id, ErrNotFound)
	}
	delete(r.comments, id)
	return nil
}
