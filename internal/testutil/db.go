// Package testutil provides shared test fixtures.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/mail"
	"github.com/maildex-tools/cli/internal/store"
	"github.com/maildex-tools/cli/internal/store/migrations"
)

// NewTestDB creates an in-memory message database with migrations applied.
// It is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *store.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = conn.Close()
	})

	err = migrations.Run(conn)
	require.NoError(t, err, "failed to run migrations")

	return store.NewWithDB(conn)
}

// SeedMessage indexes one synthetic message with the given tags.
func SeedMessage(t *testing.T, db *store.DB, id, from, to, subject string, tags ...string) {
	t.Helper()

	added, err := db.Add(&mail.Message{
		ID:      id,
		Path:    "/mail/" + id,
		From:    from,
		To:      to,
		Subject: subject,
		Date:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}, tags)
	require.NoError(t, err, "failed to seed message %s", id)
	require.True(t, added, "message %s was already present", id)
}
