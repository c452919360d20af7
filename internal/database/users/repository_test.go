package users

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/openshelf/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	t.Helper()
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.UserType{}, &entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return db, repo, cleanup
}

func TestRepository_CreateAndGet(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{Username: "reader1", Email: "reader@example.com", PasswordHash: "digest"}
	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	loaded, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "reader1", loaded.Username)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_GetByIdentifier(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.User{Username: "reader1", Email: "reader@example.com", PasswordHash: "digest"}))

	byUsername, err := repo.GetByIdentifier("reader1")
	require.NoError(t, err)
	byEmail, err := repo.GetByIdentifier("reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, byUsername.ID, byEmail.ID)

	_, err = repo.GetByIdentifier("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_IdentifierTaken(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{Username: "reader1", Email: "reader@example.com", PasswordHash: "digest"}
	require.NoError(t, repo.Create(user))

	taken, err := repo.IdentifierTaken("reader1", "other@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.IdentifierTaken("other", "reader@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.IdentifierTaken("other", "other@example.com", 0)
	require.NoError(t, err)
	assert.False(t, taken)

	// A user's own row does not count against an update.
	taken, err = repo.IdentifierTaken("reader1", "reader@example.com", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestRepository_UpdateFields(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := &entities.User{Username: "reader1", Email: "reader@example.com", PasswordHash: "digest"}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.UpdateFields(user.ID, map[string]any{"username": "renamed1"}))

	loaded, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed1", loaded.Username)

	assert.ErrorIs(t, repo.UpdateFields(9999, map[string]any{"username": "x"}), ErrNotFound)
}
