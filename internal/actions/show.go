package actions

import (
	"fmt"
	"os"
	"strings"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/format"
	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/store"
)

type shownMessage struct {
	ID      string   `json:"id"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Subject string   `json:"subject"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
	Body    string   `json:"body"`
}

func messageBody(m store.Message) string {
	data, err := os.ReadFile(m.Path)
	if err != nil {
		return ""
	}
	// Body starts after the first blank line.
	_, body, found := strings.Cut(string(data), "\n\n")
	if !found {
		return ""
	}
	return body
}

// Show prints every message matching the given terms, headers and body.
func Show(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	var (
		outFormat     = "text"
		formatVersion = format.VersionCur
	)
	options := []opts.Option{
		{String: &outFormat, Name: "format", Choices: []string{"text", "json"}},
		{Int: &formatVersion, Name: "format-version"},
		{Inherit: inv.SharedOptions()},
	}
	index, err := opts.Parse(args, options, 1)
	if err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("show"); err != nil {
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

	if outFormat == "json" {
		shown := make([]shownMessage, 0, len(messages))
		for _, m := range messages {
			shown = append(shown, shownMessage{
				ID:      m.MessageID,
				From:    m.Sender,
				To:      m.Recipients,
				Subject: m.Subject,
				Date:    m.Date.Format("2006-01-02 15:04"),
				Tags:    m.Tags,
				Body:    messageBody(m),
			})
		}
		return writeJSON(inv, shown)
	}

	for _, m := range messages {
		fmt.Fprintf(inv.Stdout, "message{ id:%s (%s)\n", m.MessageID, strings.Join(m.Tags, " "))
		fmt.Fprintf(inv.Stdout, "From: %s\n", m.Sender)
		fmt.Fprintf(inv.Stdout, "To: %s\n", m.Recipients)
		fmt.Fprintf(inv.Stdout, "Subject: %s\n", m.Subject)
		fmt.Fprintf(inv.Stdout, "Date: %s\n\n", m.Date.Format("2006-01-02 15:04"))
		fmt.Fprintf(inv.Stdout, "%s\n", messageBody(m))
		fmt.Fprintf(inv.Stdout, "}\n")
	}
	return nil
}
