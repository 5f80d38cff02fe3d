package actions

import (
	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/format"
	"github.com/maildex-tools/cli/internal/mail"
	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/store"
)

// Address prints the distinct addresses appearing in messages matching the
// given terms, senders by default.
func Address(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	var (
		outFormat     = "text"
		output        = "sender"
		formatVersion = format.VersionCur
	)
	options := []opts.Option{
		{String: &outFormat, Name: "format", Choices: []string{"text", "json"}},
		{Int: &formatVersion, Name: "format-version"},
		{String: &output, Name: "output", Choices: []string{"sender", "recipients"}},
		{Inherit: inv.SharedOptions()},
	}
	index, err := opts.Parse(args, options, 1)
	if err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("address"); err != nil {
		return err
	}
	if err := inv.CheckFormatVersion(formatVersion); err != nil {
		return err
	}

	db, err := openDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	messages, err := db.Search(store.ParseTerms(args[index:]), -1)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var addresses []string
	for _, m := range messages {
		field := m.Sender
		if output == "recipients" {
			field = m.Recipients
		}
		for _, addr := range mail.Addresses(field) {
			spec := mail.AddressSpec(addr)
			if spec == "" || seen[spec] {
				continue
			}
			seen[spec] = true
			addresses = append(addresses, addr)
		}
	}

	return printList(inv, addresses, outFormat)
}
