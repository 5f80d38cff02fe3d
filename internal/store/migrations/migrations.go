// Package migrations applies the versioned schema of the maildex message
// database.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one versioned schema step.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load reads all embedded SQL files and returns them sorted by version.
func Load() ([]Migration, error) {
	entries, err := sqlFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var migrations []Migration

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, description, err := parseFilename(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		content, err := sqlFiles.ReadFile(filepath.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version:     version,
			Description: description,
			SQL:         string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	seen := make(map[int]string)
	for _, m := range migrations {
		if existing, ok := seen[m.Version]; ok {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", m.Version, existing, m.Description)
		}
		seen[m.Version] = m.Description
	}

	return migrations, nil
}

// parseFilename extracts version and description from "NN_description.sql".
func parseFilename(name string) (int, string, error) {
	name = strings.TrimSuffix(name, ".sql")
	idx := strings.Index(name, "_")
	if idx < 1 {
		return 0, "", fmt.Errorf("expected NN_description.sql")
	}

	version, err := strconv.Atoi(name[:idx])
	if err != nil {
		return 0, "", fmt.Errorf("bad version prefix: %w", err)
	}

	return version, name[idx+1:], nil
}

// Run applies every pending migration inside its own transaction.
func Run(db *sql.DB) error {
	if _, err := db.Exec(createSchemaTable); err != nil {
		return fmt.Errorf("create schema table: %w", err)
	}

	migrations, err := Load()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		var applied int
		err := db.QueryRow(
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check version %d: %w", m.Version, err)
		}
		if applied > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin version %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply version %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record version %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit version %d: %w", m.Version, err)
		}
	}

	return nil
}
