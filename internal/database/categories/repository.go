// Package categories provides database operations for pet categories.
package categories

import (
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/petsctl/internal/database"
	"github.com/mrlokans/petsctl/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new categories repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// ListCategories returns every category in insertion order.
func (r *Repository) ListCategories() ([]entities.Category, error) {
	categories := []entities.Category{}
	if !r.db.Exists() {
		log.Printf("store not found at %s", r.db.Path)
		return categories, nil
	}

	err := r.db.WithConn("list categories", func(db *gorm.DB) error {
		return db.Order("id").Find(&categories).Error
	})
	return categories, err
}

// CreateCategory inserts a category and returns it with its assigned ID.
func (r *Repository) CreateCategory(name string) (*entities.Category, error) {
	category := &entities.Category{Name: name}
	err := r.db.WithConn("create category", func(db *gorm.DB) error {
		return db.Create(category).Error
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID. Returns database.ErrNotFound if absent.
func (r *Repository) GetCategory(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithConn("get category", func(db *gorm.DB) error {
		return db.First(&category, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category. Unknown IDs are ignored.
func (r *Repository) UpdateCategory(id uint, name string) error {
	return r.db.WithConn("update category", func(db *gorm.DB) error {
		return db.Model(&entities.Category{}).
			Where("id = ?", id).
			Update("name", name).Error
	})
}

// DeleteCategory deletes a category. Pets in it keep a dangling reference.
func (r *Repository) DeleteCategory(id uint) error {
	return r.db.WithConn("delete category", func(db *gorm.DB) error {
		return db.Delete(&entities.Category{}, id).Error
	})
}
