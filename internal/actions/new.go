package actions

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/log"
	"github.com/maildex-tools/cli/internal/mail"
	"github.com/maildex-tools/cli/internal/opts"
)

func ignored(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// syntheticID derives a stable Message-ID for messages that carry none.
func syntheticID(m *mail.Message) string {
	h := sha256.Sum256([]byte(m.From + "\x00" + m.Subject + "\x00" + m.Body))
	return fmt.Sprintf("maildex-sha256-%x", h[:16])
}

// New walks the configured mail root and indexes every message file not yet
// in the database, applying the configured new-message tags.
func New(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	quiet := false
	options := []opts.Option{
		{Bool: &quiet, Name: "quiet", Short: 'q'},
		{Inherit: inv.SharedOptions()},
	}
	if _, err := opts.Parse(args, options, 1); err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("new"); err != nil {
		return err
	}

	db, err := createDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	root := cfg.Database.Path
	added, seen := 0, 0

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if name == ".maildex" || strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if ignored(name, cfg.New.Ignore) {
			return nil
		}

		seen++
		m, err := mail.ParseFile(path)
		if err != nil {
			log.Warn("new: skipping %s: %v", path, err)
			return nil
		}
		if m.ID == "" {
			m.ID = syntheticID(m)
		}

		ok, err := db.Add(m, cfg.New.Tags)
		if err != nil {
			return err
		}
		if ok {
			added++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("new: scan %s: %w", root, err)
	}

	if quiet {
		return nil
	}
	if added == 0 {
		fmt.Fprintf(inv.Stdout, "No new mail.\n")
	} else {
		fmt.Fprintf(inv.Stdout, "Added %d new messages to the database.\n", added)
	}
	log.Info("new: scanned %d files, added %d", seen, added)
	return nil
}
