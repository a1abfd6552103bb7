package handlers

import (
	"errors"
	"fmt"
	"log"

	"forum/internal/middleware"
	"forum/internal/models"
	"forum/internal/repositories"
	"forum/internal/services"
	"forum/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for accounts and authentication.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
	sessions    *session.Manager
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService, sessions *session.Manager) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
		sessions:    sessions,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/signup", h.HandleSignup)
	userRoutes.Post("/login", middleware.LocalStrategy(h.authService, h.sessions), h.HandleLogin)
	userRoutes.Post("/logout", h.HandleLogout)
	userRoutes.Post("/google-signup", h.HandleGoogleSignup)
	userRoutes.Post("/google-login", h.HandleGoogleLogin)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Put("/update", h.HandleUpdateUser)
}

// SignupRequest represents the request body for local signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleSignup handles new account registration with local credentials.
func (h *UserHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	user, err := h.authService.SignupLocal(req.Email, req.Username, req.Password)
	if err != nil {
		log.Printf("Error signing up user %s: %v", req.Username, err)
		if errors.Is(err, services.ErrUserExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Username or email already taken",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	// The persisted record; the hash is never serialized.
	return c.Status(fiber.StatusOK).JSON(user)
}

// HandleLogin responds to the outcome of the local strategy, which has
// already verified credentials and established the session.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	if authed, ok := c.Locals(middleware.LocalAuthenticated).(bool); ok && authed {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Login Successful",
		})
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Login Unsuccessful",
	})
}

// HandleLogout terminates the current session unconditionally.
func (h *UserHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c); err != nil {
		log.Printf("Error destroying session: %v", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout Successful",
	})
}

// GoogleSignupRequest represents the request body for Google signup. The
// profile is already verified by Google; only username and bio come from the
// client itself.
type GoogleSignupRequest struct {
	Username string               `json:"username" validate:"required,min=3,max=100"`
	Bio      string               `json:"bio" validate:"omitempty,max=500"`
	Profile  models.GoogleProfile `json:"profile" validate:"required"`
}

// HandleGoogleSignup creates an account from pre-verified Google profile data.
func (h *UserHandler) HandleGoogleSignup(c *fiber.Ctx) error {
	var req GoogleSignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing google signup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	user, err := h.authService.SignupGoogle(req.Username, req.Bio, req.Profile)
	if err != nil {
		log.Printf("Error signing up google user %s: %v", req.Username, err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GoogleLoginRequest represents the request body for Google login.
type GoogleLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleGoogleLogin looks a user up by email and returns it. No password
// verification: the external provider already vouched for the identity.
// An unknown email returns 200 with a null body, matching the store's
// find-one semantics.
func (h *UserHandler) HandleGoogleLogin(c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing google login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.authService.LoginGoogle(req.Email)
	if err != nil {
		log.Printf("Error during google login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// HandleGetUser retrieves a user by ID. A malformed identifier is rejected
// before the store is touched.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No user with id: %s", id),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No user found",
			})
		}
		log.Printf("Error getting user %s: %v", id, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUserRequest represents the request body for a partial user update.
type UpdateUserRequest struct {
	ID   string                 `json:"_id"`
	User map[string]interface{} `json:"user"`
}

// HandleUpdateUser applies a partial field merge and returns the post-update
// record.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.userService.UpdateUser(req.ID, req.User)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No user with id: %s", req.ID),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "No updated user",
			})
		}
		log.Printf("Error updating user %s: %v", req.ID, err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// validationMessages flattens validator errors into a field → message map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
