package postgrestore

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
}

// Migrate applies every pending up migration and returns how many ran.
func Migrate(db *sql.DB) (int, error) {
	n, err := migrate.Exec(db, "postgres", migrationSource(), migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	return n, nil
}

// Rollback reverts the last max migrations; max <= 0 reverts all of them.
func Rollback(db *sql.DB, max int) (int, error) {
	n, err := migrate.ExecMax(db, "postgres", migrationSource(), migrate.Down, max)
	if err != nil {
		return 0, fmt.Errorf("rollback migrations: %w", err)
	}

	return n, nil
}
