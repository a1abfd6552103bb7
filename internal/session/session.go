package session

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CookieName is the session cookie. The name matters to clients, keep it stable.
const CookieName = "session"

const (
	keyUserID    = "user_id"
	keyExpiresAt = "expires_at"
)

// Config controls the session lifecycle.
type Config struct {
	// Duration is the absolute session lifetime, counted from login.
	Duration time.Duration
	// ActiveDuration is the sliding window: an access within this long of
	// expiry pushes the deadline out by the same amount.
	ActiveDuration time.Duration
	// CookieSecure restricts the cookie to SSL connections.
	CookieSecure bool
}

// Manager issues, verifies and destroys cookie-backed sessions. The cookie
// and server-side storage mechanics come from Fiber's session middleware; the
// Manager only adds the absolute-plus-sliding expiry bookkeeping.
type Manager struct {
	store *session.Store
	cfg   Config
}

// NewManager creates a session manager. The cookie is HTTP-only and cleared
// when the browser closes; the server-side entry carries its own expiry so
// storage TTL is only garbage collection.
func NewManager(cfg Config) *Manager {
	store := session.New(session.Config{
		KeyLookup:         "cookie:" + CookieName,
		Expiration:        cfg.Duration,
		CookieHTTPOnly:    true,
		CookieSecure:      cfg.CookieSecure,
		CookieSessionOnly: true,
	})
	return &Manager{
		store: store,
		cfg:   cfg,
	}
}

// Establish creates an authenticated session for the given user. Any prior
// session on the request is replaced with a fresh ID.
func (m *Manager) Establish(c *fiber.Ctx, userID string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("failed to regenerate session: %w", err)
	}
	sess.Set(keyUserID, userID)
	sess.Set(keyExpiresAt, time.Now().Add(m.cfg.Duration).UnixNano())
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// UserID returns the authenticated user's id for the request, or false for an
// anonymous request. Expired sessions are destroyed and treated as anonymous.
// An access close to expiry extends the session by the active duration.
func (m *Manager) UserID(c *fiber.Ctx) (string, bool) {
	sess, err := m.store.Get(c)
	if err != nil {
		return "", false
	}

	userID, ok := sess.Get(keyUserID).(string)
	if !ok || userID == "" {
		return "", false
	}

	now := time.Now()
	expiresAt := readUnixNano(sess.Get(keyExpiresAt))
	if expiresAt.IsZero() || now.After(expiresAt) {
		_ = sess.Destroy()
		return "", false
	}

	if expiresAt.Sub(now) < m.cfg.ActiveDuration {
		sess.Set(keyExpiresAt, expiresAt.Add(m.cfg.ActiveDuration).UnixNano())
		if err := sess.Save(); err != nil {
			// The session is still valid for this request; only the
			// extension was lost.
			return userID, true
		}
	}

	return userID, true
}

// Destroy terminates the session for the request. Destroying an absent
// session is not an error.
func (m *Manager) Destroy(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	return sess.Destroy()
}

// readUnixNano decodes a session value written as a nanosecond unix
// timestamp. Storage backends may round-trip integers as different widths.
func readUnixNano(v interface{}) time.Time {
	switch t := v.(type) {
	case int64:
		return time.Unix(0, t)
	case int:
		return time.Unix(0, int64(t))
	case float64:
		return time.Unix(0, int64(t))
	default:
		return time.Time{}
	}
}
