// Command generate_demo creates a demo store with sample users, categories and pets.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/petsctl/internal/database"
	"github.com/mrlokans/petsctl/internal/database/categories"
	"github.com/mrlokans/petsctl/internal/database/pets"
	"github.com/mrlokans/petsctl/internal/database/users"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoPet struct {
	Owner    string
	Category string
	Name     string
	Sex      string
	Age      int
}

var demoUsers = [][2]string{
	{"Ann", "Lee"},
	{"Carlos", "Gómez"},
	{"Siobhan", "O'Brien"},
}

var demoCategories = []string{"Dog", "Cat", "Bird", "Rabbit"}

var demoPets = []demoPet{
	{Owner: "Ann", Category: "Dog", Name: "Rex", Sex: "M", Age: 2},
	{Owner: "Ann", Category: "Cat", Name: "Misu", Sex: "F", Age: 5},
	{Owner: "Carlos", Category: "Dog", Name: "Luna", Sex: "F", Age: 7},
	{Owner: "Carlos", Category: "Bird", Name: "Piolín", Sex: "M", Age: 1},
	{Owner: "Siobhan", Category: "Rabbit", Name: "Clover", Sex: "F", Age: 3},
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo store at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db := database.NewDatabase(*dbPath)
	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	usersRepo := users.NewRepository(db)
	categoriesRepo := categories.NewRepository(db)
	petsRepo := pets.NewRepository(db)

	userIDs := make(map[string]uint, len(demoUsers))
	for _, u := range demoUsers {
		user, err := usersRepo.CreateUser(u[0], u[1])
		if err != nil {
			log.Fatalf("Failed to create user %s %s: %v", u[0], u[1], err)
		}
		userIDs[user.Name] = user.ID
	}

	categoryIDs := make(map[string]uint, len(demoCategories))
	for _, name := range demoCategories {
		category, err := categoriesRepo.CreateCategory(name)
		if err != nil {
			log.Fatalf("Failed to create category %s: %v", name, err)
		}
		categoryIDs[category.Name] = category.ID
	}

	for _, p := range demoPets {
		pet, err := petsRepo.CreatePet(userIDs[p.Owner], categoryIDs[p.Category], p.Name, p.Sex, p.Age)
		if err != nil {
			log.Printf("Failed to create pet %s: %v", p.Name, err)
			continue
		}
		log.Printf("Saved: %s (%s) for %s", pet.Name, p.Category, p.Owner)
	}

	log.Printf("Demo store generated: %d users, %d categories, %d pets", len(demoUsers), len(demoCategories), len(demoPets))
}
