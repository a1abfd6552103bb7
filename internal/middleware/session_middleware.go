package middleware

import (
	"log"

	"forum/internal/services"
	"forum/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Locals keys shared between middleware and handlers.
const (
	LocalAuthenticated = "authenticated"
	LocalUserID        = "user_id"
)

// LocalStrategy verifies the credentials in the request body and, on success,
// establishes a session before the login handler runs. The handler only
// inspects the outcome; verification failures are never surfaced directly so
// the response cannot reveal which of username or password was wrong.
func LocalStrategy(authService *services.AuthService, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&creds); err != nil {
			c.Locals(LocalAuthenticated, false)
			return c.Next()
		}

		user, err := authService.VerifyLocal(creds.Username, creds.Password)
		if err != nil {
			log.Printf("Local strategy rejected login for %q: %v", creds.Username, err)
			c.Locals(LocalAuthenticated, false)
			return c.Next()
		}

		if err := sessions.Establish(c, user.ID); err != nil {
			log.Printf("Failed to establish session for user %s: %v", user.ID, err)
			c.Locals(LocalAuthenticated, false)
			return c.Next()
		}

		c.Locals(LocalAuthenticated, true)
		c.Locals(LocalUserID, user.ID)
		return c.Next()
	}
}

// SessionRequired guards routes that need an authenticated session. Expired
// or absent sessions behave as anonymous and are rejected.
func SessionRequired(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := sessions.UserID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		// Store the user id in Fiber context for subsequent handlers
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}
