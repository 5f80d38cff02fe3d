package store

import (
	"database/sql"
	"errors"
	"fmt"
)

func (d *DB) tagsFor(rowID int64) ([]string, error) {
	rows, err := d.db.Query(
		"SELECT tag FROM tags WHERE message_id = ? ORDER BY tag", rowID)
	if err != nil {
		return nil, fmt.Errorf("store: read tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("store: scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// UpdateTags applies tag additions and removals to every message matching
// the terms and returns how many messages were touched.
func (d *DB) UpdateTags(terms []Term, add, remove []string) (int, error) {
	matches, err := d.Search(terms, -1)
	if err != nil {
		return 0, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}

	for _, m := range matches {
		for _, tag := range add {
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO tags (message_id, tag) VALUES (?, ?)",
				m.rowID, tag,
			); err != nil {
				_ = tx.Rollback()
				return 0, fmt.Errorf("store: add tag: %w", err)
			}
		}
		for _, tag := range remove {
			if _, err := tx.Exec(
				"DELETE FROM tags WHERE message_id = ? AND tag = ?", m.rowID, tag,
			); err != nil {
				_ = tx.Rollback()
				return 0, fmt.Errorf("store: remove tag: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	return len(matches), nil
}

// SetTags replaces the full tag set of one message, identified by its
// Message-ID. Unknown messages are skipped so a tag dump taken against a
// larger database restores cleanly.
func (d *DB) SetTags(messageID string, tags []string) error {
	var rowID int64
	err := d.db.QueryRow(
		"SELECT id FROM messages WHERE message_id = ?", messageID,
	).Scan(&rowID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // not indexed here; nothing to restore
	}
	if err != nil {
		return fmt.Errorf("store: look up %s: %w", messageID, err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM tags WHERE message_id = ?", rowID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("store: clear tags: %w", err)
	}
	for _, tag := range tags {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO tags (message_id, tag) VALUES (?, ?)", rowID, tag,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("store: set tag: %w", err)
		}
	}

	return tx.Commit()
}
