package users

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/petsctl/internal/database"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db := database.NewDatabase(filepath.Join(t.TempDir(), "test_users.db"))
	require.NoError(t, db.EnsureSchema())
	return NewRepository(db)
}

func TestRepository_CreateUser(t *testing.T) {
	repo := setupTestDB(t)

	before, err := repo.ListUsers()
	require.NoError(t, err)

	user, err := repo.CreateUser("Ann", "Lee")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	after, err := repo.ListUsers()
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, user.ID, after[len(after)-1].ID)
	assert.Equal(t, "Ann", after[len(after)-1].Name)
	assert.Equal(t, "Lee", after[len(after)-1].Lastname)
}

func TestRepository_CreateUser_QuotesAreStoredVerbatim(t *testing.T) {
	repo := setupTestDB(t)

	user, err := repo.CreateUser("Siobhan", "O'Brien'); DROP TABLE users; --")
	require.NoError(t, err)

	got, err := repo.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "O'Brien'); DROP TABLE users; --", got.Lastname)
}

func TestRepository_IdentitiesAreNotReused(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.CreateUser("Ann", "Lee")
	require.NoError(t, err)
	second, err := repo.CreateUser("Bob", "Ray")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(second.ID))

	third, err := repo.CreateUser("Cid", "Moe")
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func TestRepository_ListUsers_InsertionOrder(t *testing.T) {
	repo := setupTestDB(t)

	for _, name := range []string{"Ann", "Bob", "Cid"} {
		_, err := repo.CreateUser(name, "Lee")
		require.NoError(t, err)
	}

	users, err := repo.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Ann", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Equal(t, "Cid", users[2].Name)
}

func TestRepository_ListUsers_MissingStore(t *testing.T) {
	repo := NewRepository(database.NewDatabase(filepath.Join(t.TempDir(), "absent.db")))

	users, err := repo.ListUsers()

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRepository_GetUser_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetUser(999)

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_UpdateUser(t *testing.T) {
	repo := setupTestDB(t)

	created, err := repo.CreateUser("Ann", "Lee")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateUser(created.ID, "Anna", "Lee"))

	user, err := repo.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.Name)
	assert.Equal(t, "Lee", user.Lastname)
}

func TestRepository_UpdateUser_UnknownIDIsNoop(t *testing.T) {
	repo := setupTestDB(t)

	assert.NoError(t, repo.UpdateUser(999, "Ghost", "User"))

	users, err := repo.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRepository_DeleteUser(t *testing.T) {
	repo := setupTestDB(t)

	created, err := repo.CreateUser("Ann", "Lee")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(created.ID))

	_, err = repo.GetUser(created.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_DeleteUser_UnknownIDIsNoop(t *testing.T) {
	repo := setupTestDB(t)

	assert.NoError(t, repo.DeleteUser(999))
}
