// Package users provides database operations for pet owners.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.CreateUser("Ann", "Lee")
package users

import (
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/petsctl/internal/database"
	"github.com/mrlokans/petsctl/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new users repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// ListUsers returns every user in insertion order. A missing store file yields
// an empty list.
func (r *Repository) ListUsers() ([]entities.User, error) {
	users := []entities.User{}
	if !r.db.Exists() {
		log.Printf("store not found at %s", r.db.Path)
		return users, nil
	}

	err := r.db.WithConn("list users", func(db *gorm.DB) error {
		return db.Order("id").Find(&users).Error
	})
	return users, err
}

// CreateUser inserts a user and returns it with its assigned ID.
func (r *Repository) CreateUser(name, lastname string) (*entities.User, error) {
	user := &entities.User{
		Name:     name,
		Lastname: lastname,
	}
	err := r.db.WithConn("create user", func(db *gorm.DB) error {
		return db.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID. Returns database.ErrNotFound if absent.
func (r *Repository) GetUser(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.WithConn("get user", func(db *gorm.DB) error {
		return db.First(&user, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser overwrites both fields of a user. Unknown IDs are ignored.
func (r *Repository) UpdateUser(id uint, name, lastname string) error {
	return r.db.WithConn("update user", func(db *gorm.DB) error {
		return db.Model(&entities.User{}).
			Where("id = ?", id).
			Updates(map[string]any{"name": name, "lastname": lastname}).Error
	})
}

// DeleteUser deletes a user. Unknown IDs are ignored; pets owned by the user
// are left in place.
func (r *Repository) DeleteUser(id uint) error {
	return r.db.WithConn("delete user", func(db *gorm.DB) error {
		return db.Delete(&entities.User{}, id).Error
	})
}
