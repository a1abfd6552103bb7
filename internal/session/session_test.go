package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forum/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds a minimal app exercising the full session lifecycle.
func newTestApp(cfg session.Config) *fiber.App {
	sessions := session.NewManager(cfg)
	app := fiber.New()

	app.Post("/login", func(c *fiber.Ctx) error {
		if err := sessions.Establish(c, "user-123"); err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		userID, ok := sessions.UserID(c)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(userID)
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		if err := sessions.Destroy(c); err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

// sessionCookie extracts the session cookie from a response, if any.
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "login must set the session cookie")
	return cookie
}

func TestSessionLifecycle(t *testing.T) {
	app := newTestApp(session.Config{
		Duration:       time.Hour,
		ActiveDuration: 5 * time.Minute,
	})

	// Anonymous access is rejected.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Login issues an HTTP-only cookie named "session".
	cookie := login(t, app)
	assert.True(t, cookie.HttpOnly)

	// The cookie authenticates subsequent requests.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout destroys the session; the old cookie is anonymous again.
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionAbsoluteExpiry(t *testing.T) {
	app := newTestApp(session.Config{
		Duration:       200 * time.Millisecond,
		ActiveDuration: 50 * time.Millisecond,
	})

	cookie := login(t, app)

	time.Sleep(300 * time.Millisecond)

	// The lifetime has passed; the session behaves as anonymous.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionSlidingExtension(t *testing.T) {
	app := newTestApp(session.Config{
		Duration:       600 * time.Millisecond,
		ActiveDuration: 400 * time.Millisecond,
	})

	cookie := login(t, app)

	// Access inside the active window pushes the deadline out.
	time.Sleep(300 * time.Millisecond)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Past the original 600ms lifetime but inside the extension.
	time.Sleep(400 * time.Millisecond)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Long after the last extension the session finally expires.
	time.Sleep(time.Second)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
