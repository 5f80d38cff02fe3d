package actions

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/opts"
)

// Dump writes a plain-text dump of every message's tags in batch-tag format,
// one line per message: +tag1 +tag2 -- id:<message-id>. Lines are sorted by
// message id so dumps are stable and diffable.
func Dump(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	var (
		outputPath string
		dumpFormat = "batch-tag"
	)
	options := []opts.Option{
		{String: &outputPath, Name: "output"},
		{String: &dumpFormat, Name: "format", Choices: []string{"batch-tag"}},
		{Inherit: inv.SharedOptions()},
	}
	if _, err := opts.Parse(args, options, 1); err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("dump"); err != nil {
		return err
	}

	db, err := openDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	messages, err := db.Search(nil, -1)
	if err != nil {
		return err
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].MessageID < messages[j].MessageID
	})

	var out io.Writer = inv.Stdout
	if outputPath != "" {
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("dump: open %s: %w", outputPath, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	for _, m := range messages {
		for _, tag := range m.Tags {
			fmt.Fprintf(out, "+%s ", tag)
		}
		fmt.Fprintf(out, "-- id:%s\n", m.MessageID)
	}

	return nil
}
