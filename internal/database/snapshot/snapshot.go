// Package snapshot reads whole tables for the exporters.
package snapshot

import (
	"gorm.io/gorm"

	"github.com/mrlokans/petsctl/internal/database"
	"github.com/mrlokans/petsctl/internal/database/pets"
	"github.com/mrlokans/petsctl/internal/entities"
	"github.com/mrlokans/petsctl/internal/exporters"
)

const (
	UsersTable      = "Users"
	PetsTable       = "Pets"
	CategoriesTable = "Categories"
)

// Reader builds exporters.Table snapshots of the store.
type Reader struct {
	db   *database.Database
	pets *pets.Repository
}

func NewReader(db *database.Database) *Reader {
	return &Reader{
		db:   db,
		pets: pets.NewRepository(db),
	}
}

type rawRows struct {
	users      []entities.User
	pets       []entities.Pet
	categories []entities.Category
}

func (r *Reader) readRaw() (rawRows, error) {
	var rows rawRows
	err := r.db.WithConn("snapshot", func(db *gorm.DB) error {
		if err := db.Order("id").Find(&rows.users).Error; err != nil {
			return err
		}
		if err := db.Order("id").Find(&rows.pets).Error; err != nil {
			return err
		}
		return db.Order("id").Find(&rows.categories).Error
	})
	return rows, err
}

// RawTables returns the three tables exactly as stored.
func (r *Reader) RawTables() ([]exporters.Table, error) {
	rows, err := r.readRaw()
	if err != nil {
		return nil, err
	}

	petsTable := exporters.Table{
		Name:    PetsTable,
		Columns: []string{"ID", "CategoryID", "Name", "Sex", "OwnerID", "Age"},
		Rows:    make([][]any, 0, len(rows.pets)),
	}
	for _, pet := range rows.pets {
		petsTable.Rows = append(petsTable.Rows, []any{pet.ID, pet.CategoryID, pet.Name, pet.Sex, pet.OwnerID, pet.Age})
	}

	return []exporters.Table{
		usersTable(rows.users),
		petsTable,
		categoriesTable(rows.categories),
	}, nil
}

// ReportTables returns users, the joined pet view and categories. Pets with
// a dangling owner or category are not included.
func (r *Reader) ReportTables() ([]exporters.Table, error) {
	rows, err := r.readRaw()
	if err != nil {
		return nil, err
	}
	views, err := r.pets.ListPets()
	if err != nil {
		return nil, err
	}

	petsTable := exporters.Table{
		Name:    PetsTable,
		Columns: []string{"ID", "Category", "Name", "Sex", "Owner", "Age"},
		Rows:    make([][]any, 0, len(views)),
	}
	for _, view := range views {
		petsTable.Rows = append(petsTable.Rows, []any{view.ID, view.Category, view.Name, view.Sex, view.Owner, view.Age})
	}

	return []exporters.Table{
		usersTable(rows.users),
		petsTable,
		categoriesTable(rows.categories),
	}, nil
}

func usersTable(users []entities.User) exporters.Table {
	table := exporters.Table{
		Name:    UsersTable,
		Columns: []string{"ID", "Name", "Lastname"},
		Rows:    make([][]any, 0, len(users)),
	}
	for _, user := range users {
		table.Rows = append(table.Rows, []any{user.ID, user.Name, user.Lastname})
	}
	return table
}

func categoriesTable(categories []entities.Category) exporters.Table {
	table := exporters.Table{
		Name:    CategoriesTable,
		Columns: []string{"ID", "Name"},
		Rows:    make([][]any, 0, len(categories)),
	}
	for _, category := range categories {
		table.Rows = append(table.Rows, []any{category.ID, category.Name})
	}
	return table
}
