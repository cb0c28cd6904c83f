package pets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/petsctl/internal/database"
	"github.com/mrlokans/petsctl/internal/database/categories"
	"github.com/mrlokans/petsctl/internal/database/users"
)

type fixture struct {
	pets       *Repository
	users      *users.Repository
	categories *categories.Repository
}

func setupTestDB(t *testing.T) fixture {
	t.Helper()
	db := database.NewDatabase(filepath.Join(t.TempDir(), "test_pets.db"))
	require.NoError(t, db.EnsureSchema())
	return fixture{
		pets:       NewRepository(db),
		users:      users.NewRepository(db),
		categories: categories.NewRepository(db),
	}
}

// seed creates users Ann (1) and Bob (2) and categories Dog (1) and Cat (2).
func (f fixture) seed(t *testing.T) {
	t.Helper()
	for _, u := range [][2]string{{"Ann", "Lee"}, {"Bob", "Ray"}} {
		_, err := f.users.CreateUser(u[0], u[1])
		require.NoError(t, err)
	}
	for _, name := range []string{"Dog", "Cat"} {
		_, err := f.categories.CreateCategory(name)
		require.NoError(t, err)
	}
}

func TestRepository_CreateAndGetPet(t *testing.T) {
	f := setupTestDB(t)

	created, err := f.pets.CreatePet(1, 2, "Rex", "M", 3)
	require.NoError(t, err)

	pet, err := f.pets.GetPet(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), pet.OwnerID)
	assert.Equal(t, uint(2), pet.CategoryID)
	assert.Equal(t, "Rex", pet.Name)
	assert.Equal(t, "M", pet.Sex)
	assert.Equal(t, 3, pet.Age)
}

func TestRepository_GetPet_NotFound(t *testing.T) {
	f := setupTestDB(t)

	_, err := f.pets.GetPet(7)

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_ListPets(t *testing.T) {
	f := setupTestDB(t)
	f.seed(t)

	_, err := f.pets.CreatePet(1, 1, "Rex", "M", 2)
	require.NoError(t, err)
	_, err = f.pets.CreatePet(2, 2, "Misu", "F", 5)
	require.NoError(t, err)

	views, err := f.pets.ListPets()
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Rex", views[0].Name)
	assert.Equal(t, "Dog", views[0].Category)
	assert.Equal(t, "Ann", views[0].Owner)
	assert.Equal(t, 2, views[0].Age)
	assert.Equal(t, "Misu", views[1].Name)
	assert.Equal(t, "Cat", views[1].Category)
	assert.Equal(t, "Bob", views[1].Owner)
}

func TestRepository_ListPets_MissingStore(t *testing.T) {
	repo := NewRepository(database.NewDatabase(filepath.Join(t.TempDir(), "absent.db")))

	views, err := repo.ListPets()

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestRepository_PetsByUser(t *testing.T) {
	f := setupTestDB(t)
	f.seed(t)

	_, err := f.pets.CreatePet(1, 1, "Rex", "M", 2)
	require.NoError(t, err)
	_, err = f.pets.CreatePet(1, 2, "Misu", "F", 5)
	require.NoError(t, err)

	t.Run("returns the user's pets", func(t *testing.T) {
		views, err := f.pets.PetsByUser(1)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Dog", views[0].Category)
		assert.Equal(t, "Cat", views[1].Category)
	})

	t.Run("user without pets yields an empty slice", func(t *testing.T) {
		views, err := f.pets.PetsByUser(2)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestRepository_PetsByCategory(t *testing.T) {
	f := setupTestDB(t)
	f.seed(t)

	_, err := f.pets.CreatePet(1, 1, "Rex", "M", 2)
	require.NoError(t, err)
	_, err = f.pets.CreatePet(2, 1, "Luna", "F", 7)
	require.NoError(t, err)
	_, err = f.pets.CreatePet(2, 2, "Misu", "F", 5)
	require.NoError(t, err)

	views, err := f.pets.PetsByCategory(1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Ann", views[0].Owner)
	assert.Equal(t, "Bob", views[1].Owner)
}

func TestRepository_DanglingReferencesAreExcluded(t *testing.T) {
	f := setupTestDB(t)
	f.seed(t)

	_, err := f.pets.CreatePet(1, 1, "Rex", "M", 2)
	require.NoError(t, err)
	_, err = f.pets.CreatePet(2, 1, "Luna", "F", 7)
	require.NoError(t, err)
	orphan, err := f.pets.CreatePet(2, 2, "Misu", "F", 5)
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(1))
	require.NoError(t, f.categories.DeleteCategory(2))

	views, err := f.pets.ListPets()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Luna", views[0].Name)

	byCategory, err := f.pets.PetsByCategory(1)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Luna", byCategory[0].Name)

	// The row itself is still there.
	pet, err := f.pets.GetPet(orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Misu", pet.Name)
}

func TestRepository_UpdatePet(t *testing.T) {
	f := setupTestDB(t)

	created, err := f.pets.CreatePet(1, 1, "Rex", "M", 2)
	require.NoError(t, err)

	require.NoError(t, f.pets.UpdatePet(created.ID, 2, "Rexy", "F", 3, 4))

	pet, err := f.pets.GetPet(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), pet.CategoryID)
	assert.Equal(t, "Rexy", pet.Name)
	assert.Equal(t, "F", pet.Sex)
	assert.Equal(t, uint(3), pet.OwnerID)
	assert.Equal(t, 4, pet.Age)
}

func TestRepository_DeletePet(t *testing.T) {
	f := setupTestDB(t)

	created, err := f.pets.CreatePet(1, 1, "Rex", "M", 2)
	require.NoError(t, err)

	require.NoError(t, f.pets.DeletePet(created.ID))
	assert.NoError(t, f.pets.DeletePet(created.ID))

	_, err = f.pets.GetPet(created.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
