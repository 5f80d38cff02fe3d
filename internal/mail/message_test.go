package mail_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/mail"
)

const sampleMessage = `From: Alice Example <alice@example.com>
To: Bob <bob@example.com>, carol@example.com
Cc: dave@example.com
Subject: Lunch plans
Date: Fri, 02 Jan 2026 15:04:05 +0000
Message-Id: <lunch-1@example.com>
In-Reply-To: <kickoff@example.com>

Shall we say noon?

Alice
`

func TestParse(t *testing.T) {
	m, err := mail.Parse(strings.NewReader(sampleMessage))
	require.NoError(t, err)

	require.Equal(t, "lunch-1@example.com", m.ID, "angle brackets are stripped")
	require.Equal(t, "Alice Example <alice@example.com>", m.From)
	require.Equal(t, "Bob <bob@example.com>, carol@example.com", m.To)
	require.Equal(t, "dave@example.com", m.Cc)
	require.Equal(t, "Lunch plans", m.Subject)
	require.Equal(t, "kickoff@example.com", m.InReplyTo)
	require.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), m.Date.UTC())
	require.Equal(t, "Shall we say noon?\n\nAlice\n", m.Body)
	require.Empty(t, m.Path, "Parse does not know the path")
}

func TestParse_MissingHeaders(t *testing.T) {
	m, err := mail.Parse(strings.NewReader("Subject: bare\n\nbody\n"))
	require.NoError(t, err)
	require.Empty(t, m.ID)
	require.Empty(t, m.From)
	require.True(t, m.Date.IsZero())
}

func TestParse_NotAMessage(t *testing.T) {
	_, err := mail.Parse(strings.NewReader("this is not mail"))
	require.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg")
	require.NoError(t, os.WriteFile(path, []byte(sampleMessage), 0600))

	m, err := mail.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, path, m.Path)
	require.Equal(t, "lunch-1@example.com", m.ID)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := mail.ParseFile(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestAddresses(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{name: "empty", field: "  ", want: nil},
		{name: "single bare", field: "bob@example.com",
			want: []string{"<bob@example.com>"}},
		{name: "list with display names",
			field: "Bob <bob@example.com>, carol@example.com",
			want:  []string{"\"Bob\" <bob@example.com>", "<carol@example.com>"}},
		{name: "malformed falls back raw", field: "not an address",
			want: []string{"not an address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mail.Addresses(tt.field))
		})
	}
}

func TestAddressSpec(t *testing.T) {
	require.Equal(t, "bob@example.com", mail.AddressSpec("Bob <BOB@Example.com>"))
	require.Equal(t, "bob@example.com", mail.AddressSpec("bob@example.com"))
	require.Equal(t, "garbage", mail.AddressSpec("  Garbage "))
}
