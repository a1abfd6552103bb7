package handlers

import (
	"errors"
	"fmt"
	"log"

	"forum/internal/middleware"
	"forum/internal/models"
	"forum/internal/repositories"
	"forum/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service  *services.CommentService
	validate *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the comment routes with the Fiber app. Reads are
// public; writes go through the session guard.
func (h *CommentHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	commentRoutes := router.Group("/comments")
	commentRoutes.Get("/", h.HandleGetComments)
	commentRoutes.Get("/post/:postId", h.HandleGetCommentsByPost)
	commentRoutes.Get("/:id", h.HandleGetCommentByID)
	commentRoutes.Post("/", authRequired, h.HandleCreateComment)
	commentRoutes.Put("/:id", authRequired, h.HandleUpdateComment)
	commentRoutes.Delete("/:id", authRequired, h.HandleDeleteComment)
}

// HandleGetComments retrieves all comments.
func (h *CommentHandler) HandleGetComments(c *fiber.Ctx) error {
	comments, err := h.service.GetAllComments()
	if err != nil {
		log.Printf("Error getting all comments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve comments",
			"error":   err.Error(),
		})
	}
	return c.JSON(comments)
}

// HandleGetCommentsByPost retrieves all comments attached to a post.
func (h *CommentHandler) HandleGetCommentsByPost(c *fiber.Ctx) error {
	postID := c.Params("postId")
	comments, err := h.service.GetCommentsByPost(postID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No post with id: %s", postID),
			})
		}
		log.Printf("Error getting comments for post %s: %v", postID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve comments",
			"error":   err.Error(),
		})
	}
	return c.JSON(comments)
}

// HandleGetCommentByID retrieves a single comment by its ID.
func (h *CommentHandler) HandleGetCommentByID(c *fiber.Ctx) error {
	id := c.Params("id")
	comment, err := h.service.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) || errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No comment with id: %s", id),
			})
		}
		log.Printf("Error getting comment by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve comment",
			"error":   err.Error(),
		})
	}
	return c.JSON(comment)
}

// HandleCreateComment creates a new comment authored by the authenticated user.
func (h *CommentHandler) HandleCreateComment(c *fiber.Ctx) error {
	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil {
		log.Printf("Error parsing create comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(comment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if userID, ok := c.Locals(middleware.LocalUserID).(string); ok {
		comment.AuthorID = userID
	}

	if err := h.service.CreateComment(&comment); err != nil {
		log.Printf("Error creating comment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create comment",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleUpdateComment updates an existing comment.
func (h *CommentHandler) HandleUpdateComment(c *fiber.Ctx) error {
	var comment models.Comment
	if err := c.BodyParser(&comment); err != nil {
		log.Printf("Error parsing update comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	comment.ID = c.Params("id")

	if err := h.service.UpdateComment(&comment); err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No comment with id: %s", comment.ID),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "No updated comment",
			})
		}
		log.Printf("Error updating comment %s: %v", comment.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update comment",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Comment updated successfully",
	})
}

// HandleDeleteComment deletes a comment by its ID.
func (h *CommentHandler) HandleDeleteComment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteComment(id); err != nil {
		if errors.Is(err, services.ErrInvalidID) || errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No comment with id: %s", id),
			})
		}
		log.Printf("Error deleting comment %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete comment",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}
