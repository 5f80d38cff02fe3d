package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/maildex-tools/cli/internal/log"
)

const compactLockTimeout = 10 * time.Second

// Compact rewrites the database file to reclaim space. When backupDir is
// non-empty, the current file is copied there first. An advisory lock keeps
// two maildex processes from compacting concurrently.
func (d *DB) Compact(backupDir string) error {
	if d.path == "" {
		// In-memory databases have nothing on disk to reclaim or back up.
		_, err := d.db.Exec("VACUUM")
		return err
	}

	lock := flock.New(d.path + ".compact.lock")
	ctx, cancel := context.WithTimeout(context.Background(), compactLockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("store: lock for compact: %w", err)
	}
	if !locked {
		return fmt.Errorf("store: another compact is in progress")
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if backupDir != "" {
		if err := d.backupTo(backupDir); err != nil {
			return err
		}
	}

	log.Info("store: compacting %s", d.path)
	if _, err := d.db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("store: vacuum: %w", err)
	}
	return nil
}

func (d *DB) backupTo(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("store: create backup directory: %w", err)
	}

	src, err := os.Open(d.path)
	if err != nil {
		return fmt.Errorf("store: open database for backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	name := fmt.Sprintf("maildex-%s.db", time.Now().Format("20060102-150405"))
	dstPath := filepath.Join(dir, name)
	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("store: create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dstPath)
		return fmt.Errorf("store: copy backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("store: close backup: %w", err)
	}

	log.Info("store: backed up database to %s", dstPath)
	return nil
}
