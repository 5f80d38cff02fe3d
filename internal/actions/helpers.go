// Package actions implements the maildex subcommand bodies. Every handler
// follows the same invocation contract: re-parse its own arguments with the
// shared option set inherited, run the gates it needs, act, and return an
// error whose exit code becomes the process status.
package actions

import (
	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/store"
)

// openDB opens the message database for the configured mail root and runs
// the database identity gate before returning it. The caller owns the
// returned handle.
func openDB(inv *dispatch.Invocation, cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := dispatch.CheckUUID(inv.RequestedUUID, db.UUID); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// createDB is openDB for commands allowed to create the database (new,
// insert on first use).
func createDB(inv *dispatch.Invocation, cfg *config.Config) (*store.DB, error) {
	db, err := store.Create(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := dispatch.CheckUUID(inv.RequestedUUID, db.UUID); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
