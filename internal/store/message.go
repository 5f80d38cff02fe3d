package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maildex-tools/cli/internal/mail"
)

// Message is one indexed message with its tags.
type Message struct {
	MessageID  string
	Path       string
	Sender     string
	Recipients string
	Subject    string
	InReplyTo  string
	Date       time.Time
	Tags       []string

	rowID int64
}

// Add indexes a parsed message, applying the given initial tags. Messages
// already present (same Message-ID) are left untouched; added reports
// whether a new row was written.
func (d *DB) Add(m *mail.Message, tags []string) (added bool, err error) {
	recipients := m.To
	if m.Cc != "" {
		recipients = strings.TrimSuffix(recipients+", "+m.Cc, ", ")
	}

	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.Exec(`
		INSERT OR IGNORE INTO messages
			(message_id, path, sender, recipients, subject, in_reply_to, date_unix)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Path, m.From, recipients, m.Subject, m.InReplyTo, m.Date.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("store: insert message: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: rows affected: %w", err)
	}
	if n == 0 {
		return false, tx.Commit()
	}

	rowID, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("store: last insert id: %w", err)
	}

	for _, tag := range tags {
		if _, err = tx.Exec(
			"INSERT OR IGNORE INTO tags (message_id, tag) VALUES (?, ?)", rowID, tag,
		); err != nil {
			return false, fmt.Errorf("store: tag message: %w", err)
		}
	}

	return true, tx.Commit()
}

// Get returns the message with the given Message-ID, or nil when absent.
func (d *DB) Get(messageID string) (*Message, error) {
	row := d.db.QueryRow(`
		SELECT id, message_id, path, sender, recipients, subject, in_reply_to, date_unix
		FROM messages WHERE message_id = ?`, messageID)

	m, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if m.Tags, err = d.tagsFor(m.rowID); err != nil {
		return nil, err
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (*Message, error) {
	var m Message
	var dateUnix int64
	err := row.Scan(&m.rowID, &m.MessageID, &m.Path, &m.Sender,
		&m.Recipients, &m.Subject, &m.InReplyTo, &dateUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("store: scan message: %w", err)
	}
	m.Date = time.Unix(dateUnix, 0).UTC()
	return &m, nil
}
