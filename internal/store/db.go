// Package store owns the maildex message database: a SQLite file living
// under <mail root>/.maildex/. Every database carries an identity token (a
// UUID minted at creation) so callers holding a stale view of a rebuilt
// database can be detected before they act on it.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/maildex-tools/cli/internal/log"
	"github.com/maildex-tools/cli/internal/store/migrations"
)

const dbDirName = ".maildex"

// DB wraps the SQLite connection to one message database.
type DB struct {
	db   *sql.DB
	path string
}

// Path returns the database file location for a mail root.
func Path(mailRoot string) string {
	return filepath.Join(mailRoot, dbDirName, "maildex.db")
}

// Exists reports whether a database has been created under mailRoot.
func Exists(mailRoot string) bool {
	_, err := os.Stat(Path(mailRoot))
	return err == nil
}

// Open opens an existing database. It fails when none has been created yet;
// use Create for first-time setup.
func Open(mailRoot string) (*DB, error) {
	path := Path(mailRoot)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("store: no database at %s (run \"maildex new\" first)", path)
	}
	return open(path)
}

// Create creates the database under mailRoot (and the enclosing directory),
// applies the schema, and mints the identity token. Opening an already
// created database through Create is fine; the existing identity is kept.
func Create(mailRoot string) (*DB, error) {
	path := Path(mailRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	return open(path)
}

func open(path string) (*DB, error) {
	log.Debug("store: opening database at %s", path)

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: configure database: %w", err)
	}

	setDBPermissions(path)

	if err := migrations.Run(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: run migrations: %w", err)
	}

	db := &DB{db: conn, path: path}
	if err := db.ensureIdentity(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// NewWithDB wraps an existing migrated connection. Used by tests with
// in-memory databases; the identity token is minted if absent.
func NewWithDB(conn *sql.DB) *DB {
	d := &DB{db: conn}
	_ = d.ensureIdentity()
	return d
}

// DB returns the underlying connection. Use sparingly.
func (d *DB) DB() *sql.DB {
	return d.db
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// ensureIdentity mints the identity token on first open of a fresh database.
func (d *DB) ensureIdentity() error {
	_, err := d.db.Exec(
		"INSERT OR IGNORE INTO meta (key, value) VALUES ('uuid', ?)",
		uuid.NewString(),
	)
	if err != nil {
		return fmt.Errorf("store: mint identity: %w", err)
	}
	return nil
}

// UUID returns the database identity token.
func (d *DB) UUID() (string, error) {
	var id string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'uuid'").Scan(&id)
	if err != nil {
		return "", fmt.Errorf("store: read identity: %w", err)
	}
	return id, nil
}

func setDBPermissions(path string) {
	if path == "" || path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}
