package services_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"forum/internal/models"
	"forum/internal/repositories"
	"forum/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsernameOrEmail(identifier string) (*models.User, error) {
	args := m.Called(identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	args := m.Called(username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) (*models.User, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

// Tests use bcrypt.MinCost; production wiring uses DefaultHashCost.

func TestAuthService_SignupLocal(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	// Successful signup: password leaves the service only as a hash.
	mockRepo.On("ExistsByUsernameOrEmail", "testuser", "test@example.com").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-123" // the store assigns the id
	}).Return(nil).Once()

	user, err := authService.SignupLocal("test@example.com", "testuser", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Username or email already taken: conflict regardless of password.
	mockRepo.On("ExistsByUsernameOrEmail", "testuser", "test@example.com").Return(true, nil).Once()
	_, err = authService.SignupLocal("test@example.com", "testuser", "otherpassword")
	assert.ErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)

	// Store error during the existence check propagates.
	mockRepo.On("ExistsByUsernameOrEmail", "testuser", "test@example.com").Return(false, fmt.Errorf("store unavailable")).Once()
	_, err = authService.SignupLocal("test@example.com", "testuser", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
	mockRepo.AssertExpectations(t)

	// Store error on insert propagates instead of being swallowed.
	mockRepo.On("ExistsByUsernameOrEmail", "testuser", "test@example.com").Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("insert failed")).Once()
	_, err = authService.SignupLocal("test@example.com", "testuser", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyLocal(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Login by username
	mockRepo.On("GetByUsernameOrEmail", "testuser").Return(user, nil).Once()
	got, err := authService.VerifyLocal("testuser", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", got.ID)
	mockRepo.AssertExpectations(t)

	// Login by email: the identifier field carries the email
	mockRepo.On("GetByUsernameOrEmail", "test@example.com").Return(user, nil).Once()
	got, err = authService.VerifyLocal("test@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", got.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password yields the same generic failure as an unknown user.
	mockRepo.On("GetByUsernameOrEmail", "testuser").Return(user, nil).Once()
	_, err = authService.VerifyLocal("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.On("GetByUsernameOrEmail", "ghost").Return(nil, fmt.Errorf("user ghost: %w", repositories.ErrNotFound)).Once()
	_, err = authService.VerifyLocal("ghost", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Google-created accounts have no hash and never pass local verification.
	googleUser := &models.User{ID: "user-456", Username: "googler", Email: "g@example.com"}
	mockRepo.On("GetByUsernameOrEmail", "googler").Return(googleUser, nil).Once()
	_, err = authService.VerifyLocal("googler", "")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SignupGoogle(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	profile := models.GoogleProfile{
		Email:         "g@example.com",
		EmailVerified: true,
		Picture:       "https://example.com/p.png",
	}

	// Successful creation carries the verified flag and no local credential.
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-456"
	}).Return(nil).Once()

	user, err := authService.SignupGoogle("googler", "hello", profile)
	assert.NoError(t, err)
	assert.Equal(t, "user-456", user.ID)
	assert.True(t, user.Verified)
	assert.Empty(t, user.Password)
	assert.Equal(t, "hello", user.Bio)
	mockRepo.AssertExpectations(t)

	// No existence pre-check: the store's uniqueness error passes through verbatim.
	storeErr := fmt.Errorf("duplicate key: username or email already exists")
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(storeErr).Once()
	_, err = authService.SignupGoogle("googler", "hello", profile)
	assert.Equal(t, storeErr, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginGoogle(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, bcrypt.MinCost)

	user := &models.User{ID: "user-456", Email: "g@example.com"}

	mockRepo.On("GetByEmail", "g@example.com").Return(user, nil).Once()
	got, err := authService.LoginGoogle("g@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	// An unknown email is not an error; the caller gets a nil user.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user with email nobody@example.com: %w", repositories.ErrNotFound)).Once()
	got, err = authService.LoginGoogle("nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Real store failures still propagate.
	mockRepo.On("GetByEmail", "g@example.com").Return(nil, errors.New("store unavailable")).Once()
	_, err = authService.LoginGoogle("g@example.com")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
