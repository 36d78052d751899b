package postgres

import (
	"errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"os"
)

const migrationsPath = "file://database/postgres/migrations"

func Migrate(log *logrus.Logger) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		if log != nil {
			log.Warn("DATABASE_URL not set, skipping migrations")
		}
		return nil
	}

	m, err := migrate.New(migrationsPath, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			if log != nil {
				log.Info("Database schema is up to date")
			}
			return nil
		}
		return err
	}

	if log != nil {
		log.Info("Database migrations applied")
	}

	return nil
}
