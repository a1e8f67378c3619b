package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"growroom/internal/models"
)

// EventSQLite stores the grow log in the grow_events table.
type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

const (
	selectEventsSQL = `SELECT id, occurred_at, type, message, meta FROM grow_events`
	insertEventSQL  = `INSERT INTO grow_events (id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?)`
)

// normalizeEventType upper-cases and trims, matching how types are stored.
func normalizeEventType(typ string) string {
	return strings.ToUpper(strings.TrimSpace(typ))
}

// Append inserts e, generating the id and timestamp when missing.
func (r *EventSQLite) Append(ctx context.Context, e models.GrowEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID, utcOrNow(e.OccurredAt), normalizeEventType(e.Type), e.Description, encodeMeta(e.Metadata),
	); err != nil {
		return fmt.Errorf("insert event %s: %w", e.EventID, err)
	}
	return nil
}

// List returns events within [from, to] (zero bounds are open) and of the
// given type when set, oldest first.
func (r *EventSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.GrowEvent, error) {
	where, args := eventFilter(from, to, typ)

	rows, err := r.db.QueryContext(ctx, selectEventsSQL+where+" ORDER BY occurred_at ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	out := make([]models.GrowEvent, 0, 64)
	for rows.Next() {
		var (
			ev   models.GrowEvent
			meta sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &ev.Description, &meta); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		ev.Metadata = decodeMeta(meta)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// eventFilter builds the WHERE clause for List. An unfiltered query gets "".
func eventFilter(from, to time.Time, typ string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		conds = append(conds, cond)
		args = append(args, arg)
	}
	if !from.IsZero() {
		add("occurred_at >= ?", from.UTC())
	}
	if !to.IsZero() {
		add("occurred_at <= ?", to.UTC())
	}
	if typ = normalizeEventType(typ); typ != "" {
		add("type = ?", typ)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// encodeMeta returns nil (SQL NULL) for missing or unencodable metadata.
func encodeMeta(v any) *string {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

// decodeMeta keeps malformed JSON as the raw string so nothing is lost.
func decodeMeta(meta sql.NullString) any {
	if !meta.Valid || meta.String == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(meta.String), &v); err != nil {
		return meta.String
	}
	return v
}
