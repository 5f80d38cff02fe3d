package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

const lockTimeout = 5 * time.Second

// Save writes the configuration to its file, creating parent directories as
// needed. Writes go through a temp file plus rename under an advisory file
// lock so concurrent maildex processes cannot interleave partial writes.
func (c *Config) Save() error {
	if c.closed {
		return ErrClosed
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	lock := flock.New(c.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("config: could not lock %s: %w", c.path, err)
	}
	if !locked {
		return fmt.Errorf("config: could not lock %s", c.path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("config: rename into place: %w", err)
	}

	c.isNew = false
	return nil
}
