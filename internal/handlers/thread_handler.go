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

// ThreadHandler handles HTTP requests for threads.
type ThreadHandler struct {
	service  *services.ThreadService
	validate *validator.Validate
}

// NewThreadHandler creates a new ThreadHandler.
func NewThreadHandler(service *services.ThreadService) *ThreadHandler {
	return &ThreadHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the thread routes with the Fiber app. Reads are
// public; writes go through the session guard.
func (h *ThreadHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	threadRoutes := router.Group("/threads")
	threadRoutes.Get("/", h.HandleGetThreads)
	threadRoutes.Get("/:id", h.HandleGetThreadByID)
	threadRoutes.Post("/", authRequired, h.HandleCreateThread)
	threadRoutes.Put("/:id", authRequired, h.HandleUpdateThread)
	threadRoutes.Delete("/:id", authRequired, h.HandleDeleteThread)
}

// HandleGetThreads retrieves all threads.
func (h *ThreadHandler) HandleGetThreads(c *fiber.Ctx) error {
	threads, err := h.service.GetAllThreads()
	if err != nil {
		log.Printf("Error getting all threads: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve threads",
			"error":   err.Error(),
		})
	}
	return c.JSON(threads)
}

// HandleGetThreadByID retrieves a single thread by its ID.
func (h *ThreadHandler) HandleGetThreadByID(c *fiber.Ctx) error {
	id := c.Params("id")
	thread, err := h.service.GetThreadByID(id)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) || errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No thread with id: %s", id),
			})
		}
		log.Printf("Error getting thread by ID %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve thread",
			"error":   err.Error(),
		})
	}
	return c.JSON(thread)
}

// HandleCreateThread creates a new thread owned by the authenticated user.
func (h *ThreadHandler) HandleCreateThread(c *fiber.Ctx) error {
	var thread models.Thread
	if err := c.BodyParser(&thread); err != nil {
		log.Printf("Error parsing create thread request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(thread); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if userID, ok := c.Locals(middleware.LocalUserID).(string); ok {
		thread.CreatorID = userID
	}

	if err := h.service.CreateThread(&thread); err != nil {
		log.Printf("Error creating thread: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create thread",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(thread)
}

// HandleUpdateThread updates an existing thread.
func (h *ThreadHandler) HandleUpdateThread(c *fiber.Ctx) error {
	var thread models.Thread
	if err := c.BodyParser(&thread); err != nil {
		log.Printf("Error parsing update thread request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	thread.ID = c.Params("id")

	if err := h.service.UpdateThread(&thread); err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No thread with id: %s", thread.ID),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "No updated thread",
			})
		}
		log.Printf("Error updating thread %s: %v", thread.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update thread",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Thread updated successfully",
	})
}

// HandleDeleteThread deletes a thread by its ID.
func (h *ThreadHandler) HandleDeleteThread(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteThread(id); err != nil {
		if errors.Is(err, services.ErrInvalidID) || errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No thread with id: %s", id),
			})
		}
		log.Printf("Error deleting thread %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete thread",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Thread deleted successfully",
	})
}
