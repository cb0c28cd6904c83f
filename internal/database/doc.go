// Package database provides the data access layer for petsctl.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Store initialization, scoped connections
//	├── errors.go        # ErrNotFound, StoreError, ConstraintError
//	├── users/           # User CRUD
//	├── pets/            # Pet CRUD and join queries
//	├── categories/      # Category CRUD
//	└── snapshot/        # Full-table snapshots for exporters
//
// # Connections
//
// The store is a single SQLite file. No connection is held for the lifetime of
// the process: every repository call opens a session with WithConn, runs its
// statements and closes it again before returning.
//
//	db := database.NewDatabase("./data.db")
//	if err := db.EnsureSchema(); err != nil {
//		return err
//	}
//
//	usersRepo := users.NewRepository(db)
//	user, err := usersRepo.CreateUser("Ann", "Lee")
//
// # Concurrency
//
// There is no locking. Two processes updating the same row through a
// read-modify-write sequence can lose one of the updates.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *database.Database field
//  3. Add NewRepository(db *database.Database) constructor
//  4. Run every query inside db.WithConn with bound parameters only
package database
