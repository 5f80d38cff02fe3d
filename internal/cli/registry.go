// Package cli assembles the maildex command registry and wires the help
// router into the invocation. It sits above actions, dispatch, and help so
// none of them need to import each other.
package cli

import (
	"github.com/maildex-tools/cli/internal/actions"
	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/help"
)

// BuildRegistry constructs the ordered command table and injects the help
// router into inv. The table is built once at process start and never
// mutated.
func BuildRegistry(inv *dispatch.Invocation) *dispatch.Registry {
	var reg *dispatch.Registry

	helpCommand := func(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
		index, err := inv.MinimalOptions("help", args)
		if err != nil {
			return err
		}
		topic := ""
		if index < len(args) {
			topic = args[index]
		}
		return help.For(inv, reg, topic)
	}

	reg = dispatch.NewRegistry([]dispatch.Command{
		{Name: "", Run: actions.Root, CreateConfig: true,
			Summary: "Maildex main command."},
		{Name: "setup", Run: actions.Setup, CreateConfig: true,
			Summary: "Interactively set up maildex for first use."},
		{Name: "new", Run: actions.New, CreateConfig: false,
			Summary: "Find and import new messages to the maildex database."},
		{Name: "insert", Run: actions.Insert, CreateConfig: false,
			Summary: "Add a new message into the mail archive and maildex database."},
		{Name: "search", Run: actions.Search, CreateConfig: false,
			Summary: "Search for messages matching the given search terms."},
		{Name: "address", Run: actions.Address, CreateConfig: false,
			Summary: "Get addresses from messages matching the given search terms."},
		{Name: "show", Run: actions.Show, CreateConfig: false,
			Summary: "Show all messages matching the search terms."},
		{Name: "count", Run: actions.Count, CreateConfig: false,
			Summary: "Count messages matching the search terms."},
		{Name: "reply", Run: actions.Reply, CreateConfig: false,
			Summary: "Construct a reply template for a set of messages."},
		{Name: "tag", Run: actions.Tag, CreateConfig: false,
			Summary: "Add/remove tags for all messages matching the search terms."},
		{Name: "dump", Run: actions.Dump, CreateConfig: false,
			Summary: "Create a plain-text dump of the tags for each message."},
		{Name: "restore", Run: actions.Restore, CreateConfig: false,
			Summary: "Restore the tags from the given dump file (see 'dump')."},
		{Name: "compact", Run: actions.Compact, CreateConfig: false,
			Summary: "Compact the maildex database."},
		{Name: "config", Run: actions.ConfigCmd, CreateConfig: false,
			Summary: "Get or set settings in the maildex configuration file."},
		// Create but never save the config, so help works before setup.
		{Name: "help", Run: helpCommand, CreateConfig: true,
			Summary: "This message, or more detailed help for the named command."},
	})

	inv.SetHelpRouter(func(topic string) error {
		return help.For(inv, reg, topic)
	})

	return reg
}
