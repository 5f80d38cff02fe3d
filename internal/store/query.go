package store

import (
	"fmt"
	"strings"
)

// Term is one parsed search term. Field is empty for free-text terms, which
// match subject, sender, and recipients.
type Term struct {
	Field string // "tag", "from", "to", "subject", "id", or ""
	Value string
}

// ParseTerms converts search arguments into Terms. "field:value" forms use
// the known prefixes; "*" (or no arguments) matches everything.
func ParseTerms(args []string) []Term {
	var terms []Term
	for _, arg := range args {
		if arg == "" || arg == "*" {
			continue
		}
		field, value, found := strings.Cut(arg, ":")
		if found {
			switch field {
			case "tag", "from", "to", "subject", "id":
				terms = append(terms, Term{Field: field, Value: value})
				continue
			}
		}
		terms = append(terms, Term{Value: arg})
	}
	return terms
}

// whereClause builds the WHERE fragment and bind arguments for a term list.
// An empty list matches every message.
func whereClause(terms []Term) (string, []any) {
	if len(terms) == 0 {
		return "1=1", nil
	}

	var conds []string
	var binds []any
	for _, t := range terms {
		switch t.Field {
		case "tag":
			conds = append(conds,
				"EXISTS (SELECT 1 FROM tags t WHERE t.message_id = m.id AND t.tag = ?)")
			binds = append(binds, t.Value)
		case "from":
			conds = append(conds, "m.sender LIKE ?")
			binds = append(binds, "%"+t.Value+"%")
		case "to":
			conds = append(conds, "m.recipients LIKE ?")
			binds = append(binds, "%"+t.Value+"%")
		case "subject":
			conds = append(conds, "m.subject LIKE ?")
			binds = append(binds, "%"+t.Value+"%")
		case "id":
			conds = append(conds, "m.message_id = ?")
			binds = append(binds, t.Value)
		default:
			conds = append(conds, "(m.subject LIKE ? OR m.sender LIKE ? OR m.recipients LIKE ?)")
			like := "%" + t.Value + "%"
			binds = append(binds, like, like, like)
		}
	}

	return strings.Join(conds, " AND "), binds
}

// Search returns messages matching all terms, newest first. A limit < 0
// means no limit.
func (d *DB) Search(terms []Term, limit int) ([]Message, error) {
	where, binds := whereClause(terms)

	query := fmt.Sprintf(`
		SELECT m.id, m.message_id, m.path, m.sender, m.recipients, m.subject,
		       m.in_reply_to, m.date_unix
		FROM messages m
		WHERE %s
		ORDER BY m.date_unix DESC, m.id DESC`, where)
	if limit >= 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := d.db.Query(query, binds...)
	if err != nil {
		return nil, fmt.Errorf("store: search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: search rows: %w", err)
	}

	for i := range messages {
		if messages[i].Tags, err = d.tagsFor(messages[i].rowID); err != nil {
			return nil, err
		}
	}

	return messages, nil
}

// Count returns the number of messages matching all terms.
func (d *DB) Count(terms []Term) (int, error) {
	where, binds := whereClause(terms)

	var n int
	err := d.db.QueryRow(
		fmt.Sprintf("SELECT COUNT(*) FROM messages m WHERE %s", where), binds...,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}
