package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/petsctl/internal/entities"
)

// Database describes the store file. It holds no open connection.
type Database struct {
	Path     string
	LogLevel logger.LogLevel
}

type Option func(*Database)

// WithSQLLogging makes every connection log the statements it runs.
func WithSQLLogging(enabled bool) Option {
	return func(d *Database) {
		if enabled {
			d.LogLevel = logger.Info
		}
	}
}

func NewDatabase(dbPath string, opts ...Option) *Database {
	d := &Database{
		Path:     dbPath,
		LogLevel: logger.Silent,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Exists reports whether the store file is present.
func (d *Database) Exists() bool {
	info, err := os.Stat(d.Path)
	return err == nil && !info.IsDir()
}

// EnsureSchema creates the store file and its tables when the file does not
// exist yet. An existing file is trusted as is.
func (d *Database) EnsureSchema() error {
	if d.Exists() {
		return nil
	}

	if dir := filepath.Dir(d.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &StoreError{Op: "ensure schema", Err: fmt.Errorf("failed to create store directory: %w", err)}
		}
	}

	err := d.WithConn("ensure schema", func(db *gorm.DB) error {
		return db.AutoMigrate(
			&entities.User{},
			&entities.Category{},
			&entities.Pet{},
		)
	})
	if err != nil {
		// A half-created file would be trusted on the next run.
		os.Remove(d.Path)
		return err
	}

	log.Printf("Store initialized at %s", d.Path)
	return nil
}

// WithConn opens a connection to the store, passes it to fn and closes it
// before returning. Errors from fn are classified into ErrNotFound,
// *ConstraintError or *StoreError.
func (d *Database) WithConn(op string, fn func(db *gorm.DB) error) (err error) {
	db, err := gorm.Open(sqlite.Open(d.Path), &gorm.Config{
		Logger: d.newLogger(),
	})
	if err != nil {
		return &StoreError{Op: op, Err: fmt.Errorf("failed to connect to database: %w", err)}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return &StoreError{Op: op, Err: err}
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil && err == nil {
			err = &StoreError{Op: op, Err: fmt.Errorf("failed to close database: %w", closeErr)}
		}
	}()

	return classify(op, fn(db))
}

func (d *Database) newLogger() logger.Interface {
	return logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  d.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
