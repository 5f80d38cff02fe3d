package actions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maildex-tools/cli/internal/config"
	"github.com/maildex-tools/cli/internal/dispatch"
	"github.com/maildex-tools/cli/internal/opts"
)

// parseDumpLine parses one batch-tag line: "+tag1 +tag2 -- id:<message-id>".
func parseDumpLine(line string) (messageID string, tags []string, err error) {
	spec, idPart, found := strings.Cut(line, " -- ")
	if !found {
		// A message with no tags dumps as "-- id:<message-id>".
		if rest, ok := strings.CutPrefix(line, "-- "); ok {
			spec, idPart, found = "", rest, true
		}
	}
	if !found {
		return "", nil, fmt.Errorf("restore: malformed line: %s", line)
	}

	idPart = strings.TrimSpace(idPart)
	if !strings.HasPrefix(idPart, "id:") {
		return "", nil, fmt.Errorf("restore: malformed query: %s", idPart)
	}
	messageID = strings.TrimPrefix(idPart, "id:")

	for _, field := range strings.Fields(spec) {
		if !strings.HasPrefix(field, "+") {
			return "", nil, fmt.Errorf("restore: expected +tag, got %s", field)
		}
		tags = append(tags, field[1:])
	}
	return messageID, tags, nil
}

// Restore reads a batch-tag dump (from --input or stdin) and applies it,
// replacing each listed message's tags. With --accumulate the dumped tags
// are added to the existing ones instead.
func Restore(inv *dispatch.Invocation, cfg *config.Config, args []string) error {
	var (
		inputPath  string
		accumulate bool
		dumpFormat = "batch-tag"
	)
	options := []opts.Option{
		{String: &inputPath, Name: "input"},
		{Bool: &accumulate, Name: "accumulate"},
		{String: &dumpFormat, Name: "format", Choices: []string{"batch-tag"}},
		{Inherit: inv.SharedOptions()},
	}
	if _, err := opts.Parse(args, options, 1); err != nil {
		return err
	}
	if err := inv.ProcessSharedOptions("restore"); err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("restore: open %s: %w", inputPath, err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	db, err := openDB(inv, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		messageID, tags, err := parseDumpLine(line)
		if err != nil {
			return err
		}

		if accumulate {
			existing, err := db.Get(messageID)
			if err != nil {
				return err
			}
			if existing != nil {
				tags = mergeTags(existing.Tags, tags)
			}
		}

		if err := db.SetTags(messageID, tags); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("restore: read dump: %w", err)
	}

	return nil
}

func mergeTags(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, t := range append(append([]string(nil), a...), b...) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
