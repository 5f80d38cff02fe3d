// Package mail parses on-disk mail files into the small header view maildex
// indexes.
package mail

import (
	"fmt"
	"io"
	nmail "net/mail"
	"os"
	"strings"
	"time"
)

// Message is the indexed view of one mail file.
type Message struct {
	ID        string // Message-ID, without angle brackets
	Path      string
	From      string
	To        string
	Cc        string
	Subject   string
	InReplyTo string
	Date      time.Time
	Body      string
}

func stripAngles(id string) string {
	return strings.Trim(strings.TrimSpace(id), "<>")
}

// Parse reads one RFC 5322 message from r. Messages without a Message-ID
// are given a synthetic one by the caller, not here.
func Parse(r io.Reader) (*Message, error) {
	msg, err := nmail.ReadMessage(r)
	if err != nil {
		return nil, fmt.Errorf("mail: parse: %w", err)
	}

	body, err := io.ReadAll(msg.Body)
	if err != nil {
		return nil, fmt.Errorf("mail: read body: %w", err)
	}

	date, _ := msg.Header.Date()

	return &Message{
		ID:        stripAngles(msg.Header.Get("Message-Id")),
		From:      msg.Header.Get("From"),
		To:        msg.Header.Get("To"),
		Cc:        msg.Header.Get("Cc"),
		Subject:   msg.Header.Get("Subject"),
		InReplyTo: stripAngles(msg.Header.Get("In-Reply-To")),
		Date:      date,
		Body:      string(body),
	}, nil
}

// ParseFile reads one message from a file, recording its path.
func ParseFile(path string) (*Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mail: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("mail: %s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Addresses splits a header field into individual address strings
// ("Name <addr>" form preserved when present). Malformed fields fall back to
// the raw string.
func Addresses(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parsed, err := nmail.ParseAddressList(field)
	if err != nil {
		return []string{strings.TrimSpace(field)}
	}
	out := make([]string, 0, len(parsed))
	for _, a := range parsed {
		out = append(out, a.String())
	}
	return out
}

// AddressSpec extracts just the addr-spec ("user@host") from a possibly
// display-named address, lowercased for comparison.
func AddressSpec(field string) string {
	a, err := nmail.ParseAddress(field)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(field))
	}
	return strings.ToLower(a.Address)
}
