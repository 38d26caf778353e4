package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/lib/pq" // PostgreSQL driver

	"greenlab-checklist-be/internal/config"
)

// NewConnection opens the database pool and verifies it is reachable.
func NewConnection(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// RunMigrations applies pending migrations from the migrations directory.
func RunMigrations(db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Check probes database connectivity: it takes one connection from the pool,
// pings it and returns it. It never returns an error; any failure becomes
// (false, descriptive message).
func Check(ctx context.Context, db *sql.DB) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	conn, err := db.Conn(ctx)
	if err != nil {
		return false, fmt.Sprintf("Error de conexión a PostgreSQL: %v", err)
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return false, fmt.Sprintf("PostgreSQL no responde: %v", err)
	}

	return true, "Conexión con PostgreSQL correcta"
}
