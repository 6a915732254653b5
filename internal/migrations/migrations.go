package migrations

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// DefaultDir is the migrations directory relative to the project root
const DefaultDir = "migrations"

// Up applies every pending migration found in dir
func Up(databaseURL, dir string) error {
	m, err := newMigrate(databaseURL, dir)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Down reverts every applied migration found in dir
func Down(databaseURL, dir string) error {
	m, err := newMigrate(databaseURL, dir)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to revert migrations: %w", err)
	}
	return nil
}

// SourceURL returns the file:// source URL for dir
func SourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path to migrations: %w", err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func newMigrate(databaseURL, dir string) (*migrate.Migrate, error) {
	sourceURL, err := SourceURL(dir)
	if err != nil {
		return nil, err
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}
