package actions

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/format"
	"github.com/maildex-tools/cli/internal/opts"
	"github.com/maildex-tools/cli/internal/store"
)

type searchResult struct {
	ID      string   `json:"id"`
	Date    string   `json:"date"`
	From    string   `json:"from"`
	Subject string   `json:"subject"`
	Tags    []string `json:"tags"`
}

// Search finds messages matching the given terms and prints them in the
// requested output and format.
func Search(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	var (
		outFormat     = "text"
		output        = "summary"
		limit         = -1
		formatVersion = format.VersionCur
	)
	options := []opts.Option{
		{String: &outFormat, Name: "format", Choices: []string{"text", "json"}},
		{Int: &formatVersion, Name: "format-version"},
		{String: &output, Name: "output", Choices: []string{"summary", "messages", "files", "tags"}},
		{Int: &limit, Name: "limit"},
		{Inherit: inv.SharedOptions()},
	}
	index, err := opts.Parse(args, options, 1)
	if err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("search"); err != nil {
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

	terms := store.ParseTerms(args[index:])
	messages, err := db.Search(terms, limit)
	if err != nil {
		return err
	}

	switch output {
	case "messages":
		return printIDs(inv, messages, outFormat)
	case "files":
		return printFiles(inv, messages, outFormat)
	case "tags":
		return printTags(inv, messages, outFormat)
	default:
		return printSummary(inv, messages, outFormat)
	}
}

func printSummary(inv *dispatch.Invocation, messages []store.Message, outFormat string) error {
	if outFormat == "json" {
		results := make([]searchResult, 0, len(messages))
		for _, m := range messages {
			results = append(results, searchResult{
				ID:      m.MessageID,
				Date:    m.Date.Format("2006-01-02"),
				From:    m.Sender,
				Subject: m.Subject,
				Tags:    m.Tags,
			})
		}
		return writeJSON(inv, results)
	}

	for _, m := range messages {
		fmt.Fprintf(inv.Stdout, "id:%s %s %s; %s (%s)\n",
			m.MessageID, m.Date.Format("2006-01-02"), m.Sender, m.Subject,
			strings.Join(m.Tags, " "))
	}
	return nil
}

func printIDs(inv *dispatch.Invocation, messages []store.Message, outFormat string) error {
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, "id:"+m.MessageID)
	}
	return printList(inv, ids, outFormat)
}

func printFiles(inv *dispatch.Invocation, messages []store.Message, outFormat string) error {
	files := make([]string, 0, len(messages))
	for _, m := range messages {
		files = append(files, m.Path)
	}
	return printList(inv, files, outFormat)
}

func printTags(inv *dispatch.Invocation, messages []store.Message, outFormat string) error {
	seen := make(map[string]bool)
	var tags []string
	for _, m := range messages {
		for _, t := range m.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return printList(inv, tags, outFormat)
}

func printList(inv *dispatch.Invocation, items []string, outFormat string) error {
	if outFormat == "json" {
		return writeJSON(inv, items)
	}
	for _, item := range items {
		fmt.Fprintln(inv.Stdout, item)
	}
	return nil
}

func writeJSON(inv *dispatch.Invocation, v any) error {
	enc := json.NewEncoder(inv.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
