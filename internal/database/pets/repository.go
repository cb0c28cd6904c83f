// Package pets provides database operations for pets, including the joined
// views that resolve category and owner names.
//
// Joins are inner joins: a pet whose owner or category no longer exists is
// left out of every view.
package pets

import (
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/petsctl/internal/database"
	"github.com/mrlokans/petsctl/internal/entities"
)

const viewColumns = "p.id, p.category_id, c.name AS category, p.name, p.sex, p.owner_id, u.name AS owner, p.age"

// Repository handles all pet database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new pets repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

func joined(db *gorm.DB) *gorm.DB {
	return db.Table("pets AS p").
		Select(viewColumns).
		Joins("JOIN categories AS c ON c.id = p.category_id").
		Joins("JOIN users AS u ON u.id = p.owner_id").
		Order("p.id")
}

// ListPets returns every pet with resolved category and owner names.
func (r *Repository) ListPets() ([]entities.PetView, error) {
	views := []entities.PetView{}
	if !r.db.Exists() {
		log.Printf("store not found at %s", r.db.Path)
		return views, nil
	}

	err := r.db.WithConn("list pets", func(db *gorm.DB) error {
		return joined(db).Scan(&views).Error
	})
	return views, err
}

// PetsByUser returns the pets owned by userID.
func (r *Repository) PetsByUser(userID uint) ([]entities.PetView, error) {
	views := []entities.PetView{}
	err := r.db.WithConn("pets by user", func(db *gorm.DB) error {
		return joined(db).Where("p.owner_id = ?", userID).Scan(&views).Error
	})
	return views, err
}

// PetsByCategory returns the pets in categoryID.
func (r *Repository) PetsByCategory(categoryID uint) ([]entities.PetView, error) {
	views := []entities.PetView{}
	err := r.db.WithConn("pets by category", func(db *gorm.DB) error {
		return joined(db).Where("p.category_id = ?", categoryID).Scan(&views).Error
	})
	return views, err
}

// GetPet retrieves a pet by ID. Returns database.ErrNotFound if absent.
func (r *Repository) GetPet(id uint) (*entities.Pet, error) {
	var pet entities.Pet
	err := r.db.WithConn("get pet", func(db *gorm.DB) error {
		return db.First(&pet, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// CreatePet inserts a pet and returns it with its assigned ID. Owner and
// category are not checked here.
func (r *Repository) CreatePet(ownerID, categoryID uint, name, sex string, age int) (*entities.Pet, error) {
	pet := &entities.Pet{
		CategoryID: categoryID,
		Name:       name,
		Sex:        sex,
		OwnerID:    ownerID,
		Age:        age,
	}
	err := r.db.WithConn("create pet", func(db *gorm.DB) error {
		return db.Create(pet).Error
	})
	if err != nil {
		return nil, err
	}
	return pet, nil
}

// UpdatePet overwrites every field of a pet. Unknown IDs are ignored.
func (r *Repository) UpdatePet(id, categoryID uint, name, sex string, ownerID uint, age int) error {
	return r.db.WithConn("update pet", func(db *gorm.DB) error {
		return db.Model(&entities.Pet{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"category_id": categoryID,
				"name":        name,
				"sex":         sex,
				"owner_id":    ownerID,
				"age":         age,
			}).Error
	})
}

// DeletePet deletes a pet. Unknown IDs are ignored.
func (r *Repository) DeletePet(id uint) error {
	return r.db.WithConn("delete pet", func(db *gorm.DB) error {
		return db.Delete(&entities.Pet{}, id).Error
	})
}
