package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Driver registration for the file source and postgres database.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator mirrors the surface of migrate.Migrate that we use.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// Engine builds a Migrator; injectable so tests stay off the filesystem
// and the database.
type Engine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	sourceURL   string
	databaseURL string
	engine      Engine
}

func New(migrationsPath, databaseURL string, engine Engine) *Migration {
	return &Migration{
		sourceURL:   "file://" + migrationsPath,
		databaseURL: databaseURL,
		engine:      engine,
	}
}

func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

func (mg *Migration) Up() error {
	m, err := mg.engine(mg.sourceURL, mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source close: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database close: %w", dberr))
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
