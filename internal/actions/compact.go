package actions

import (
	"fmt"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/opts"
)

// Compact rewrites the message database to reclaim space, optionally saving
// a backup copy first.
func Compact(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	var backupDir string
	options := []opts.Option{
		{String: &backupDir, Name: "backup"},
		{Inherit: inv.SharedOptions()},
	}
	if _, err := opts.Parse(args, options, 1); err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("compact"); err != nil {
		return err
	}

	db, err := openDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Compact(backupDir); err != nil {
		return err
	}

	fmt.Fprintf(inv.Stdout, "Done.\n")
	return nil
}
