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

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service  *services.PostService
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the post routes with the Fiber app. Reads are
// public; writes go through the session guard.
func (h *PostHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Get("/thread/:threadId", h.HandleGetPostsByThread)
	postRoutes.Get("/:id", h.HandleGetPostByID)
	postRoutes.Post("/", authRequired, h.HandleCreatePost)
	postRoutes.Put("/:id", authRequired, h.HandleUpdatePost)
	postRoutes.Delete("/:id", authRequired, h.HandleDeletePost)
}

// HandleGetPosts retrieves all posts.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		log.Printf("Error getting all posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleGetPostsByThread retrieves all posts in a thread.
func (h *PostHandler) HandleGetPostsByThread(c *fiber.Ctx) error {
	threadID := c.Params("threadId")
	posts, err := h.service.GetPostsByThread(threadID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No thread with id: %s", threadID),
			})
		}
		log.Printf("Error getting posts for thread %s: %v", threadID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(posts)
}

// HandleGetPostByID retrieves a single post by its ID.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	id := c.Params("id")
	post, err := h.service.GetPostByID(id)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) || errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No post with id: %s", id),
			})
		}
		log.Printf("Error getting post by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve post",
			"error":   err.Error(),
		})
	}
	return c.JSON(post)
}

// HandleCreatePost creates a new post authored by the authenticated user.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		log.Printf("Error parsing create post request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if userID, ok := c.Locals(middleware.LocalUserID).(string); ok {
		post.AuthorID = userID
	}

	if err := h.service.CreatePost(&post); err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create post",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost updates an existing post.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		log.Printf("Error parsing update post request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	post.ID = c.Params("id")

	if err := h.service.UpdatePost(&post); err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No post with id: %s", post.ID),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "No updated post",
			})
		}
		log.Printf("Error updating post %s: %v", post.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update post",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
	})
}

// HandleDeletePost deletes a post by its ID.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeletePost(id); err != nil {
		if errors.Is(err, services.ErrInvalidID) || errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No post with id: %s", id),
			})
		}
		log.Printf("Error deleting post %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete post",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
