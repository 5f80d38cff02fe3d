package actions

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/mail"
	"github.com/maildex-tools/cli/internal/opts"
)

// insertSource is indirect so tests can feed a message without stdin.
var insertSource io.Reader = os.Stdin

// Insert reads one message from standard input, delivers it into the mail
// root, and indexes it. Remaining arguments of the form +tag/-tag adjust the
// initial tag set relative to the configured new-message tags.
func Insert(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	folder := ""
	options := []opts.Option{
		{String: &folder, Name: "folder"},
		{Inherit: inv.SharedOptions()},
	}
	index, err := opts.Parse(args, options, 1)
	if err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("insert"); err != nil {
		return err
	}

	tags := append([]string(nil), cfg.New.Tags...)
	for _, arg := range args[index:] {
		switch {
		case strings.HasPrefix(arg, "+"):
			tags = append(tags, arg[1:])
		case strings.HasPrefix(arg, "-"):
			tags = removeTag(tags, arg[1:])
		default:
			return fmt.Errorf("insert: expected +tag or -tag, got %s", arg)
		}
	}

	raw, err := io.ReadAll(insertSource)
	if err != nil {
		return fmt.Errorf("insert: read message: %w", err)
	}

	m, err := mail.Parse(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = syntheticID(m)
	}

	dir := filepath.Join(cfg.Database.Path, folder, "new")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("insert: create %s: %w", dir, err)
	}

	host, _ := os.Hostname()
	name := fmt.Sprintf("%d.%s.%s", time.Now().Unix(), uuid.NewString(), host)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("insert: deliver message: %w", err)
	}
	m.Path = path

	db, err := createDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Add(m, tags); err != nil {
		return err
	}

	fmt.Fprintf(inv.Stdout, "id:%s\n", m.ID)
	return nil
}

func removeTag(tags []string, tag string) []string {
	out := tags[:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
