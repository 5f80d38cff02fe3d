package actions

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/usage"
)

// ConfigCmd gets and sets values in the configuration file:
// maildex config get <key>, maildex config set <key> [values...],
// maildex config list.
func ConfigCmd(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	index, err := inv.MinimalOptions("config", args)
	if err != nil {
		return err
	}

	rest := args[index:]
	if len(rest) == 0 {
		return &usage.Error{
			Message: "maildex config: expected get, set, or list (see \"maildex help config\")",
			Code:    usage.ExitFailure,
		}
	}

	switch rest[0] {
	case "get":
		if len(rest) != 2 {
			return &usage.Error{
				Message: "maildex config get: expected exactly one key",
				Code:    usage.ExitFailure,
			}
		}
		values, err := cfg.Get(rest[1])
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintln(inv.Stdout, v)
		}
		return nil

	case "set":
		if len(rest) < 2 {
			return &usage.Error{
				Message: "maildex config set: expected a key",
				Code:    usage.ExitFailure,
			}
		}
		if err := cfg.Set(rest[1], rest[2:]); err != nil {
			return err
		}
		return cfg.Save()

	case "list":
		t := table.NewWriter()
		t.SetOutputMirror(inv.Stdout)
		t.AppendHeader(table.Row{"Key", "Value"})
		for _, item := range cfg.Items() {
			t.AppendRow(table.Row{item.Key, strings.Join(item.Values, ", ")})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil

	default:
		return &usage.Error{
			Message: fmt.Sprintf("maildex config: unknown subcommand %s", rest[0]),
			Code:    usage.ExitFailure,
		}
	}
}
