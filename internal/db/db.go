package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/snnyvrz/isbn-books-api/internal/config"
	"github.com/snnyvrz/isbn-books-api/internal/logger"
	"github.com/snnyvrz/isbn-books-api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	}
	return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
}

// Open connects once and pings the database.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Gorm(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return database, nil
}

// ConnectWithRetry keeps calling Open until it succeeds, the attempts from
// cfg are used up, or ctx is done.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	var lastErr error

	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		database, err := Open(ctx, cfg, log)
		if err == nil {
			log.Info().
				Str("driver", cfg.DBDriver).
				Int("attempt", attempt).
				Msg("database connection OK")
			return database, nil
		}
		lastErr = err

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", cfg.DBConnectAttempts).
			Msg("db not ready")

		if attempt == cfg.DBConnectAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBConnectDelay):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBConnectAttempts, lastErr)
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(&model.Book{})
}
