package services

import (
	"errors"
	"fmt"
	"log"

	"forum/internal/models"
	"forum/internal/repositories"
	"forum/pkg/rabbitmq"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt cost factor used for account passwords.
// Deliberately slow; change it only together with a rehash migration.
const DefaultHashCost = 14

// AuthService handles account creation and credential verification.
type AuthService struct {
	userRepo repositories.UserRepository
	mqClient *rabbitmq.Client // may be nil, events are then skipped
	hashCost int
}

// NewAuthService creates a new AuthService with the given bcrypt cost.
func NewAuthService(userRepo repositories.UserRepository, mqClient *rabbitmq.Client, hashCost int) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mqClient: mqClient,
		hashCost: hashCost,
	}
}

// SignupLocal creates an account from local credentials. The password is
// hashed before anything touches the store. The existence check and the
// insert are two separate store operations; concurrent signups with the same
// identity race between them and the store's unique indexes decide the winner.
func (s *AuthService) SignupLocal(email, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	taken, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.publishUserEvent("user.signup", user)
	return user, nil
}

// SignupGoogle creates an account from a pre-verified Google profile plus the
// client-supplied username and bio. There is no existence pre-check; the
// store's uniqueness enforcement is the only duplicate guard, and its error
// is passed through to the caller.
func (s *AuthService) SignupGoogle(username, bio string, profile models.GoogleProfile) (*models.User, error) {
	user := &models.User{
		Email:    profile.Email,
		Verified: profile.EmailVerified,
		Username: username,
		Bio:      bio,
		Picture:  profile.Picture,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.publishUserEvent("user.google_signup", user)
	return user, nil
}

// LoginGoogle looks a user up purely by email. No password verification
// happens here; trust is assumed to have been established by Google.
// An unknown email is not an error and returns (nil, nil).
func (s *AuthService) LoginGoogle(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// VerifyLocal implements the local strategy: look the user up by username or
// email and compare the stored hash against the supplied password. Every
// failure collapses into ErrInvalidCredentials.
func (s *AuthService) VerifyLocal(identifier, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsernameOrEmail(identifier)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	// Accounts created via the Google flow carry no hash and can never pass
	// local verification.
	if user.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// publishUserEvent publishes an account event. Publishing failures are logged
// and never fail the request.
func (s *AuthService) publishUserEvent(event string, user *models.User) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	err := s.mqClient.PublishUserEvent(event, map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
	if err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", event, user.ID, err)
	}
}
