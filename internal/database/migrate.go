package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// goose keeps its filesystem and dialect in package state.
var migrationMu sync.Mutex

// exit is swapped out in tests.
var exit = os.Exit

// gooseLogger sends goose output to slog instead of stdout.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...), "component", "migrations")
}

// Fatalf stops the process like goose's default logger; goose does not expect
// the call to return.
func (gooseLogger) Fatalf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...), "component", "migrations")
	exit(1)
}

// Migrate applies all pending migrations of the offers schema.
func Migrate(db *sql.DB) error {
	migrationMu.Lock()
	defer migrationMu.Unlock()

	goose.SetLogger(gooseLogger{})
	goose.SetBaseFS(migrationFiles)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
