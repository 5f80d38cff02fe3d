package dispatch

import (
	"fmt"
	"io"
	"os"

	"github.com/maildex-tools/cli/internal/format"
	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/usage"
)

// Invocation carries the per-process state the shared options set and every
// gate reads: it is constructed once in main and passed explicitly instead
// of living in package globals, so tests never leak state into each other.
type Invocation struct {
	// Shared option results, set during the single top-level parse (or a
	// subcommand's re-parse) and read-only afterwards.
	Version       bool
	Help          bool
	RequestedUUID string

	// FormatVersion is the structured-output format version in effect,
	// defaulting to the current version and overridable per command.
	FormatVersion int

	Stdout io.Writer
	Stderr io.Writer

	helpRouter func(topic string) error
}

// NewInvocation returns an Invocation with defaults bound to the process
// standard streams.
func NewInvocation() *Invocation {
	return &Invocation{
		FormatVersion: format.VersionCur,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
	}
}

// SetHelpRouter injects the help router. It lives behind a function value
// because help needs the full registry to print the usage tables, and the
// registry is assembled above this package.
func (inv *Invocation) SetHelpRouter(fn func(topic string) error) {
	inv.helpRouter = fn
}

// SharedOptions returns the option descriptors every command may inherit:
// --version/-v, --help/-h, --uuid/-u. They bind directly to this invocation.
func (inv *Invocation) SharedOptions() []opts.Option {
	return []opts.Option{
		{Bool: &inv.Version, Name: "version", Short: 'v'},
		{Bool: &inv.Help, Name: "help", Short: 'h'},
		{String: &inv.RequestedUUID, Name: "uuid", Short: 'u'},
	}
}

// ProcessSharedOptions applies the shared-option side effects after any
// parse that may have set them. Version display wins over help when both
// were requested. The returned usage.Exit signals that the invocation is
// complete; commandName may be empty when no command was named.
func (inv *Invocation) ProcessSharedOptions(commandName string) error {
	if inv.Version {
		fmt.Fprintf(inv.Stdout, "maildex %s\n", Version)
		return usage.Exit(usage.ExitSuccess)
	}

	if inv.Help {
		if inv.helpRouter == nil {
			return &usage.Error{Message: "maildex: help is not available", Code: usage.ExitFailure}
		}
		if err := inv.helpRouter(commandName); err != nil {
			return err
		}
		return usage.Exit(usage.ExitSuccess)
	}

	return nil
}

// MinimalOptions is the re-parse helper for subcommands that declare no
// options of their own beyond the shared set. args[0] is the subcommand
// name; the returned index is the first unconsumed argument.
func (inv *Invocation) MinimalOptions(commandName string, args []string) (int, error) {
	index, err := opts.Parse(args, []opts.Option{{Inherit: inv.SharedOptions()}}, 1)
	if err != nil {
		return -1, usage.ParseError(err)
	}
	if err := inv.ProcessSharedOptions(commandName); err != nil {
		return -1, err
	}
	return index, nil
}

// CheckFormatVersion records a caller-requested format version and validates
// it against the supported window. Must be called every time the version may
// have been overridden, not just once at startup.
func (inv *Invocation) CheckFormatVersion(requested int) error {
	inv.FormatVersion = requested
	return format.CheckCurrent(inv.Stderr, requested)
}
