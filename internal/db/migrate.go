package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/Raviteja659/decentralized-campaign-ai/db/migrations"
)

// ErrDirtySchema is returned when a previous migration stopped half way.
// It has to be resolved by hand with the migrate CLI.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version, stepping up or
// down as needed.
func Migrate(addr string, logger *slog.Logger) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return fmt.Errorf("connect migrate: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return err
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}
	if current == migrations.Version {
		logger.Debug("schema up to date", slog.Uint64("version", uint64(current)))
		return nil
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(current)),
		slog.Uint64("to", uint64(migrations.Version)),
	)
	return nil
}
