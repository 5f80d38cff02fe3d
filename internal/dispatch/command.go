// Package dispatch implements the maildex entry-point machinery: the command
// registry, shared-option handling, the config lifecycle around every
// handler, and the gates (format version, database identity) commands run
// before acting.
package dispatch

import (
	"fmt"

	"github.com/maildex-tools/cli/internal/config"
)

// Version is the tool version string printed by --version.
const Version = "0.9.0"

// CommandFunc runs one subcommand. args[0] is the subcommand name itself
// (empty slice for the default action); the handler re-parses the rest,
// usually inheriting the shared option set. The returned error's exit code
// becomes the process exit status.
type CommandFunc func(inv *Invocation, cfg *config.Config, args []string) error

// Command describes one registered subcommand.
type Command struct {
	// Name is the subcommand name; empty for the default action taken when
	// maildex is invoked with no command argument.
	Name string

	// Run is the handler.
	Run CommandFunc

	// CreateConfig controls the config lifecycle gate: when true a missing
	// configuration is created with defaults before the handler runs; when
	// false a missing configuration is a fatal error.
	CreateConfig bool

	// Summary is the one-line description shown in the usage listing.
	Summary string
}

// Registry is the ordered, immutable command table built once at startup.
type Registry struct {
	commands []Command
}

// NewRegistry builds a registry from the given ordered command table.
func NewRegistry(commands []Command) *Registry {
	return &Registry{commands: commands}
}

// Find resolves a command name by exact match; the empty name resolves to
// the default action. No prefix or fuzzy matching.
func (r *Registry) Find(name string) (*Command, bool) {
	for i := range r.commands {
		if r.commands[i].Name == name {
			return &r.commands[i], true
		}
	}
	return nil, false
}

// Commands returns the registered commands in table order.
func (r *Registry) Commands() []Command {
	return r.commands
}

// Validate checks the registry invariants: names are unique and exactly one
// command is the default action.
func (r *Registry) Validate() error {
	seen := make(map[string]bool, len(r.commands))
	defaults := 0
	for _, c := range r.commands {
		if c.Name == "" {
			defaults++
			continue
		}
		if seen[c.Name] {
			return fmt.Errorf("dispatch: duplicate command name %q", c.Name)
		}
		seen[c.Name] = true
	}
	if defaults != 1 {
		return fmt.Errorf("dispatch: want exactly one default command, have %d", defaults)
	}
	return nil
}
