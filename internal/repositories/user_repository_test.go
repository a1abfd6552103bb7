package repositories_test

import (
	"testing"

	"forum/internal/models"
	"forum/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newGORMUserRepo opens a fresh in-memory database per test.
func newGORMUserRepo(t *testing.T) repositories.UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return repositories.NewGORMUserRepository(db)
}

// Both implementations of UserRepository must behave the same; the suite runs
// against each.
func userRepoImpls(t *testing.T) map[string]repositories.UserRepository {
	return map[string]repositories.UserRepository{
		"gorm": newGORMUserRepo(t),
		"mock": repositories.NewMockUserRepository(),
	}
}

func TestUserRepository_CreateAssignsID(t *testing.T) {
	for name, repo := range userRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			user := &models.User{Username: "alice", Email: "alice@x.com"}
			require.NoError(t, repo.Create(user))
			assert.NotEmpty(t, user.ID)

			got, err := repo.GetByID(user.ID)
			require.NoError(t, err)
			assert.Equal(t, "alice", got.Username)
		})
	}
}

func TestUserRepository_CreateEnforcesUniqueness(t *testing.T) {
	for name, repo := range userRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Create(&models.User{Username: "alice", Email: "alice@x.com"}))

			// Same username, different email.
			err := repo.Create(&models.User{Username: "alice", Email: "other@x.com"})
			assert.Error(t, err)

			// Same email, different username.
			err = repo.Create(&models.User{Username: "other", Email: "alice@x.com"})
			assert.Error(t, err)
		})
	}
}

func TestUserRepository_GetByUsernameOrEmail(t *testing.T) {
	for name, repo := range userRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Create(&models.User{Username: "alice", Email: "alice@x.com"}))

			byUsername, err := repo.GetByUsernameOrEmail("alice")
			require.NoError(t, err)
			byEmail, err := repo.GetByUsernameOrEmail("alice@x.com")
			require.NoError(t, err)
			assert.Equal(t, byUsername.ID, byEmail.ID)

			_, err = repo.GetByUsernameOrEmail("nobody")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	for name, repo := range userRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repo.Create(&models.User{Username: "alice", Email: "alice@x.com"}))

			// Either field matching counts as taken.
			taken, err := repo.ExistsByUsernameOrEmail("alice", "fresh@x.com")
			require.NoError(t, err)
			assert.True(t, taken)

			taken, err = repo.ExistsByUsernameOrEmail("fresh", "alice@x.com")
			require.NoError(t, err)
			assert.True(t, taken)

			taken, err = repo.ExistsByUsernameOrEmail("fresh", "fresh@x.com")
			require.NoError(t, err)
			assert.False(t, taken)
		})
	}
}

func TestUserRepository_UpdateFields(t *testing.T) {
	for name, repo := range userRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			user := &models.User{Username: "alice", Email: "alice@x.com"}
			require.NoError(t, repo.Create(user))

			updated, err := repo.UpdateFields(user.ID, map[string]interface{}{
				"bio":      "hello",
				"verified": true,
			})
			require.NoError(t, err)
			assert.Equal(t, "hello", updated.Bio)
			assert.True(t, updated.Verified)
			assert.Equal(t, "alice", updated.Username, "untouched fields survive the merge")

			// Updating a missing record reports not found.
			_, err = repo.UpdateFields("b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e", map[string]interface{}{"bio": "x"})
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}
