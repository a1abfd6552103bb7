package repositories

import "forum/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	// GetByUsernameOrEmail looks a user up by a single identifier that may be
	// either their username or their email address.
	GetByUsernameOrEmail(identifier string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds the
	// given username or email. This is a separate query from Create; two
	// concurrent signups can both pass it, and the store's unique indexes
	// are the only backstop.
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	// UpdateFields applies a partial field merge to the user with the given
	// ID and returns the post-update record. A merge that matched no record
	// returns ErrNotFound.
	UpdateFields(id string, fields map[string]interface{}) (*models.User, error)
}
