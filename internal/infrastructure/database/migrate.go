package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator chạy các SQL migrations được embed vào binary
type Migrator struct {
	db *sql.DB
	m  *migrate.Migrate
}

// NewMigrator mở connection riêng qua lib/pq cho golang-migrate
func NewMigrator(dsn string) (*Migrator, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating postgres driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error loading embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating migration instance: %w", err)
	}

	return &Migrator{db: db, m: m}, nil
}

// Up áp dụng toàn bộ migrations còn thiếu
func (mg *Migrator) Up() error {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("[MIGRATE] migration state is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}
	log.Info().Msg("[MIGRATE] ran migrations successfully")
	return nil
}

// Down rollback toàn bộ schema
func (mg *Migrator) Down() error {
	err := mg.m.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error running down migrations: %w", err)
	}
	log.Info().Msg("[MIGRATE] ran down migrations")
	return nil
}

// Version trả về version hiện tại; version 0 nghĩa là chưa migrate
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
