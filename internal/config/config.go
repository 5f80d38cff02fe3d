// Package config owns the maildex configuration file and its lifecycle.
//
// The dispatcher opens the configuration exactly once per invocation and is
// the only component allowed to close it. Commands receive the open handle
// and never release it themselves.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/maildex-tools/cli/internal/paths"
)

// Database configures the location of the mail store.
type Database struct {
	Path string `toml:"path"`
}

// User identifies the mail user; reply templates and address matching use it.
type User struct {
	Name         string   `toml:"name"`
	PrimaryEmail string   `toml:"primary_email"`
	OtherEmail   []string `toml:"other_email"`
}

// New configures how freshly imported messages are tagged.
type New struct {
	Tags   []string `toml:"tags"`
	Ignore []string `toml:"ignore"`
}

// Search configures default search behavior.
type Search struct {
	ExcludeTags []string `toml:"exclude_tags"`
}

// Config is the parsed configuration plus its on-disk identity. It is a
// scoped resource: opened by the dispatcher, closed exactly once on every
// exit path.
type Config struct {
	Database Database `toml:"database"`
	User     User     `toml:"user"`
	New      New      `toml:"new"`
	Search   Search   `toml:"search"`

	path   string
	isNew  bool
	closed bool
}

// ErrClosed is returned when a Config is released more than once.
var ErrClosed = errors.New("config: already closed")

func defaults() Config {
	return Config{
		Database: Database{Path: paths.DefaultMailRoot()},
		New:      New{Tags: []string{"unread", "inbox"}},
		Search:   Search{ExcludeTags: []string{"deleted", "spam"}},
	}
}

// Open loads the configuration file at path (resolved via the --config
// flag, $MAILDEX_CONFIG, or the home-directory default, in that order).
//
// When the file does not exist and create is false, Open fails: the command
// being dispatched requires maildex to already be configured. When create is
// true, a fresh in-memory configuration with defaults is returned instead,
// marked new; it is not written to disk until Save is called (setup does
// that, help never does).
func Open(path string, create bool) (*Config, error) {
	resolved, err := paths.ConfigFilePath(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		if !create {
			return nil, fmt.Errorf("configuration file %s not found (run \"maildex setup\" first)", resolved)
		}
		cfg := defaults()
		cfg.path = resolved
		cfg.isNew = true
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", resolved, err)
	}

	cfg := defaults()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", resolved, err)
	}
	cfg.path = resolved
	return &cfg, nil
}

// Path returns the resolved location of the configuration file.
func (c *Config) Path() string {
	return c.path
}

// IsNew reports whether the configuration was created by this invocation
// rather than loaded from disk.
func (c *Config) IsNew() bool {
	return c.isNew
}

// Closed reports whether the handle has been released.
func (c *Config) Closed() bool {
	return c.closed
}

// Close releases the configuration handle. Releasing twice is an error so
// ownership bugs surface in tests rather than passing silently.
func (c *Config) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	return nil
}
