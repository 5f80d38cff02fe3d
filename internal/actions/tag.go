package actions

import (
	"fmt"
	"strings"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/store"
	"github.com/maildex-tools/cli/internal/usage"
)

// Tag applies +tag/-tag edits to every message matching the search terms
// that follow them: maildex tag +flagged -unread -- from:alice.
func Tag(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	index, err := inv.MinimalOptions("tag", args)
	if err != nil {
		return err
	}

	var add, remove, termArgs []string
	rest := args[index:]
	for i, arg := range rest {
		switch {
		case arg == "--":
			termArgs = append(termArgs, rest[i+1:]...)
		case len(termArgs) == 0 && strings.HasPrefix(arg, "+") && len(arg) > 1:
			add = append(add, arg[1:])
		case len(termArgs) == 0 && strings.HasPrefix(arg, "-") && len(arg) > 1:
			remove = append(remove, arg[1:])
		default:
			termArgs = append(termArgs, arg)
		}
		if arg == "--" {
			break
		}
	}

	if len(add) == 0 && len(remove) == 0 {
		return &usage.Error{
			Message: "maildex: no tag operations given (expected +tag or -tag)",
			Code:    usage.ExitFailure,
		}
	}
	if len(termArgs) == 0 {
		return &usage.Error{
			Message: "maildex: no search terms given (tagging every message requires an explicit \"*\")",
			Code:    usage.ExitFailure,
		}
	}

	db, err := openDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	n, err := db.UpdateTags(store.ParseTerms(termArgs), add, remove)
	if err != nil {
		return err
	}

	fmt.Fprintf(inv.Stdout, "Tagged %d messages.\n", n)
	return nil
}
