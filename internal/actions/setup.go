package actions

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
)

// stdinIsTTY is indirect so tests can force the non-interactive path.
var stdinIsTTY = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func prompt(r *bufio.Reader, inv *dispatch.Invocation, label, current string) string {
	fmt.Fprintf(inv.Stdout, "%s [%s]: ", label, current)
	line, err := r.ReadString('\n')
	if err != nil {
		return current
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

// Setup configures maildex for first use: it fills in the user identity and
// mail root (interactively on a terminal, defaults otherwise) and writes the
// configuration file.
func Setup(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	if _, err := inv.MinimalOptions("setup", args); err != nil {
		return err
	}

	if cfg.IsNew() {
		fmt.Fprintf(inv.Stdout, "Welcome to maildex!\n\n")
		fmt.Fprintf(inv.Stdout,
			"The setup command will write a configuration file to\n\n\t%s\n\n", cfg.Path())
	}

	if cfg.User.Name == "" {
		cfg.User.Name = os.Getenv("USER")
	}

	if stdinIsTTY() {
		reader := bufio.NewReader(os.Stdin)
		cfg.User.Name = prompt(reader, inv, "Your full name", cfg.User.Name)
		cfg.User.PrimaryEmail = prompt(reader, inv, "Your primary email address", cfg.User.PrimaryEmail)
		cfg.Database.Path = prompt(reader, inv, "Top-level directory of your email archive", cfg.Database.Path)

		tags := prompt(reader, inv, "Tags to apply to all new messages (separated by spaces)",
			strings.Join(cfg.New.Tags, " "))
		cfg.New.Tags = strings.Fields(tags)
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(inv.Stdout, "Configuration written to %s\n", cfg.Path())
	return nil
}
