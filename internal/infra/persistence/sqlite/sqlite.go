// Package sqlite contains the concrete implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"sitter/config"
	"sitter/internal/domain/lifecycle"
	"sitter/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SQLite client and registers schema migration and shutdown
// with the application lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.Database.Path), &gorm.Config{
		// Surface driver duplicate-key errors as gorm.ErrDuplicatedKey.
		TranslateError: true,
		// Every operation is a single statement; GORM's implicit
		// per-statement transaction adds nothing here.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite permits one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under concurrent writes.
	sqlDB.SetMaxOpenConns(1)

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return migrate(db.WithContext(ctx))
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate creates the schema if it does not exist. AutoMigrate is idempotent,
// so restarting against an existing database file is safe.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.JobModel{},
		&model.ApplicationModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
