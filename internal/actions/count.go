package actions

import (
	"fmt"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/store"
)

// Count prints the number of messages, threads, or distinct files matching
// the given terms.
func Count(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	output := "messages"
	options := []opts.Option{
		{String: &output, Name: "output", Choices: []string{"messages", "threads", "files"}},
		{Inherit: inv.SharedOptions()},
	}
	index, err := opts.Parse(args, options, 1)
	if err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("count"); err != nil {
		return err
	}

	db, err := openDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	terms := store.ParseTerms(args[index:])

	n, err := db.Count(terms)
	if err != nil {
		return err
	}
	switch output {
	case "files":
		// One file per indexed message; a future multi-file index would
		// count distinct paths here instead.
		messages, err := db.Search(terms, -1)
		if err != nil {
			return err
		}
		paths := make(map[string]bool, len(messages))
		for _, m := range messages {
			paths[m.Path] = true
		}
		n = len(paths)
	case "threads":
		messages, err := db.Search(terms, -1)
		if err != nil {
			return err
		}
		threads := make(map[string]bool, len(messages))
		for _, m := range messages {
			key := m.InReplyTo
			if key == "" {
				key = m.MessageID
			}
			threads[key] = true
		}
		n = len(threads)
	}

	fmt.Fprintf(inv.Stdout, "%d\n", n)
	return nil
}
