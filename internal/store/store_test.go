package store_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maildex-tools/cli/internal/mail"
	"github.com/maildex-tools/cli/internal/store"
	"github.com/maildex-tools/cli/internal/testutil"
)

func seed(t *testing.T, db *store.DB) {
	t.Helper()
	testutil.SeedMessage(t, db, "a1", "alice@example.com", "bob@example.com",
		"Lunch plans", "inbox", "unread")
	testutil.SeedMessage(t, db, "b2", "bob@example.com", "alice@example.com",
		"Re: Lunch plans", "inbox")
	testutil.SeedMessage(t, db, "c3", "carol@example.com", "alice@example.com",
		"Quarterly report", "work")
}

func TestCreateAndReopen_IdentityIsStable(t *testing.T) {
	root := t.TempDir()
	require.False(t, store.Exists(root))

	db, err := store.Create(root)
	require.NoError(t, err)
	id, err := db.UUID()
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.NoError(t, db.Close())

	require.True(t, store.Exists(root))

	db, err = store.Open(root)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	again, err := db.UUID()
	require.NoError(t, err)
	require.Equal(t, id, again, "identity token must survive reopen")
}

func TestOpen_MissingDatabase(t *testing.T) {
	_, err := store.Open(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "maildex new")
}

func TestAdd_DeduplicatesOnMessageID(t *testing.T) {
	db := testutil.NewTestDB(t)

	m := &mail.Message{ID: "dup", Path: "/mail/dup", From: "x@example.com",
		Subject: "hi", Date: time.Now()}

	added, err := db.Add(m, []string{"inbox"})
	require.NoError(t, err)
	require.True(t, added)

	added, err = db.Add(m, []string{"inbox"})
	require.NoError(t, err)
	require.False(t, added)

	n, err := db.Count(nil)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSearch_TermMatching(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed(t, db)

	tests := []struct {
		name    string
		terms   []string
		wantIDs []string
	}{
		{name: "tag term", terms: []string{"tag:work"}, wantIDs: []string{"c3"}},
		{name: "from term", terms: []string{"from:alice"}, wantIDs: []string{"a1"}},
		{name: "to term", terms: []string{"to:alice"}, wantIDs: []string{"b2", "c3"}},
		{name: "subject term", terms: []string{"subject:Lunch"}, wantIDs: []string{"a1", "b2"}},
		{name: "id term", terms: []string{"id:b2"}, wantIDs: []string{"b2"}},
		{name: "free text", terms: []string{"Quarterly"}, wantIDs: []string{"c3"}},
		{name: "conjunction", terms: []string{"tag:inbox", "from:bob"}, wantIDs: []string{"b2"}},
		{name: "match all", terms: nil, wantIDs: []string{"a1", "b2", "c3"}},
		{name: "no match", terms: []string{"tag:nope"}, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, err := db.Search(store.ParseTerms(tt.terms), -1)
			require.NoError(t, err)

			var ids []string
			for _, m := range messages {
				ids = append(ids, m.MessageID)
			}
			require.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestSearch_LimitAndTags(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed(t, db)

	messages, err := db.Search(nil, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	messages, err = db.Search(store.ParseTerms([]string{"id:a1"}), -1)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, []string{"inbox", "unread"}, messages[0].Tags)
}

func TestCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed(t, db)

	n, err := db.Count(store.ParseTerms([]string{"tag:inbox"}))
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestUpdateTags(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed(t, db)

	n, err := db.UpdateTags(store.ParseTerms([]string{"tag:inbox"}),
		[]string{"archived"}, []string{"unread"})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	m, err := db.Get("a1")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, []string{"archived", "inbox"}, m.Tags)
}

func TestSetTags_ReplacesAndSkipsUnknown(t *testing.T) {
	db := testutil.NewTestDB(t)
	seed(t, db)

	require.NoError(t, db.SetTags("a1", []string{"flagged"}))
	m, err := db.Get("a1")
	require.NoError(t, err)
	require.Equal(t, []string{"flagged"}, m.Tags)

	// Unknown ids are ignored so partial dumps restore cleanly.
	require.NoError(t, db.SetTags("never-indexed", []string{"x"}))
}

func TestGet_UnknownMessage(t *testing.T) {
	db := testutil.NewTestDB(t)

	m, err := db.Get("missing")
	require.NoError(t, err)
	require.Nil(t, m)
}

func TestParseTerms(t *testing.T) {
	terms := store.ParseTerms([]string{"tag:inbox", "from:alice", "plain", "*", "odd:thing"})
	require.Equal(t, []store.Term{
		{Field: "tag", Value: "inbox"},
		{Field: "from", Value: "alice"},
		{Value: "plain"},
		{Value: "odd:thing"},
	}, terms)
}

func TestCompact_OnDiskDatabase(t *testing.T) {
	root := t.TempDir()
	db, err := store.Create(root)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	backup := t.TempDir()
	require.NoError(t, db.Compact(backup))

	entries, err := os.ReadDir(backup)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
