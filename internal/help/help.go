// Package help routes "maildex help", "--help", and the documentation
// topics. Detailed documentation is delegated to the system man viewer;
// only the usage listing and the help system's own description are rendered
// inline.
package help

import (
	"fmt"
	"io"

	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/ui/style"
	"github.com/maildex-tools/cli/internal/usage"
)

// Topic is a documentation unit not backed by a runnable command. Topic
// names must never collide with command names; command lookup wins when
// routing.
type Topic struct {
	Name    string
	Summary string
}

var topics = []Topic{
	{"search-terms", "Common search term syntax."},
	{"hooks", "Hooks that will be run before or after certain commands."},
}

// Topics returns the documentation topics in display order.
func Topics() []Topic {
	return topics
}

// Usage writes the full usage listing: invocation forms, the command table,
// and the topic table.
func Usage(w io.Writer, reg *dispatch.Registry) {
	fmt.Fprintf(w,
		"Usage: maildex --help\n"+
			"       maildex --version\n"+
			"       maildex <command> [args...]\n\n")

	fmt.Fprintf(w, "The available commands are as follows:\n\n")
	for _, c := range reg.Commands() {
		if c.Name == "" {
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", style.Info(fmt.Sprintf("%-12s", c.Name)), c.Summary)
	}

	fmt.Fprintf(w, "\nAdditional help topics are as follows:\n\n")
	for _, t := range topics {
		fmt.Fprintf(w, "  %s  %s\n", style.Muted(fmt.Sprintf("%-12s", t.Name)), t.Summary)
	}

	fmt.Fprintf(w, "\nUse \"maildex help <command or topic>\" for more details on each command or topic.\n\n")
}

// For routes one help request. An empty topic prints the banner and usage
// listing. Command names are checked before topic names; the two sets are
// disjoint by construction. Delegation to the man viewer replaces the process
// image and does not return on success; a viewer launch failure is fatal
// since there is no fallback renderer.
func For(inv *dispatch.Invocation, reg *dispatch.Registry, topic string) error {
	if topic == "" {
		fmt.Fprintf(inv.Stdout, "The maildex mail system.\n\n")
		Usage(inv.Stdout, reg)
		return nil
	}

	if topic == "help" {
		fmt.Fprintf(inv.Stdout,
			"The maildex help system.\n\n"+
				"\tMaildex uses the man command to display help. In case\n"+
				"\tof difficulties check that MANPATH includes the pages\n"+
				"\tinstalled by maildex.\n\n"+
				"\tTry \"maildex help\" for a list of topics.\n")
		return nil
	}

	if command, ok := reg.Find(topic); ok && command.Name != "" {
		return execMan("maildex-" + command.Name)
	}

	for _, t := range topics {
		if t.Name == topic {
			return execMan("maildex-" + t.Name)
		}
	}

	return &usage.Error{
		Message: fmt.Sprintf("Sorry, '%s' is not a known command or topic. See \"maildex help\".", topic),
		Code:    usage.ExitFailure,
	}
}
