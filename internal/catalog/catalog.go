package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/canonry/internal/melody"
)

//go:embed schema.sql
var schemaSQL string

// Performance is a stored rendering: a content-addressed note list plus
// the metadata identifying the render that produced it.
type Performance struct {
	ID           string
	SessionToken string
	Title        string
	Notes        []melody.Note
}

// Summary is the listing view of a stored performance.
type Summary struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	NoteCount     int     `json:"note_count"`
	TotalDuration float64 `json:"total_duration"`
}

// NewPerformance materializes a finite melody and computes its
// content-addressed ID.
func NewPerformance(title, sessionToken string, m melody.Melody) (Performance, error) {
	notes := melody.Collect(m)
	id, err := PerformanceID(notes)
	if err != nil {
		return Performance{}, err
	}
	return Performance{
		ID:           id,
		SessionToken: sessionToken,
		Title:        title,
		Notes:        notes,
	}, nil
}

// Catalog is a SQLite-backed store of rendered performances.
type Catalog struct {
	db *sql.DB
}

// Open creates or opens a catalog database at the given path. Applies the
// required pragmas and schema automatically; idempotent.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY surprises.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Put stores a performance and its notes in one transaction. Identity is
// content-addressed, so storing the same rendering twice is a no-op
// (ON CONFLICT DO NOTHING).
func (c *Catalog) Put(ctx context.Context, p Performance) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put performance: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO performances (id, session_token, title, note_count, total_duration)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, p.ID, p.SessionToken, p.Title, len(p.Notes), melody.TotalDuration(melody.FromNotes(p.Notes...)))
	if err != nil {
		return fmt.Errorf("put performance: %w", err)
	}
	if inserted, err := res.RowsAffected(); err == nil && inserted == 0 {
		// Already stored; notes are identical by construction.
		return tx.Commit()
	}

	for i, n := range p.Notes {
		attrs, err := marshalAttrs(n.Attrs)
		if err != nil {
			return fmt.Errorf("put note %d: %w", i, err)
		}
		var pitch, velocity any
		if n.Pitch != nil {
			pitch = *n.Pitch
		}
		if n.Velocity != nil {
			velocity = *n.Velocity
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO notes (performance_id, idx, time, duration, pitch, velocity, attrs)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, i, n.Time, n.Duration, pitch, velocity, attrs)
		if err != nil {
			return fmt.Errorf("put note %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Get loads a performance and its notes in emission order.
func (c *Catalog) Get(ctx context.Context, id string) (Performance, error) {
	var p Performance
	err := c.db.QueryRowContext(ctx, `
		SELECT id, session_token, title FROM performances WHERE id = ?
	`, id).Scan(&p.ID, &p.SessionToken, &p.Title)
	if err == sql.ErrNoRows {
		return Performance{}, fmt.Errorf("performance %s: not found", id)
	}
	if err != nil {
		return Performance{}, fmt.Errorf("get performance: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT time, duration, pitch, velocity, attrs
		FROM notes WHERE performance_id = ?
		ORDER BY idx ASC
	`, id)
	if err != nil {
		return Performance{}, fmt.Errorf("get notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n melody.Note
		var pitch, velocity sql.NullFloat64
		var attrs string
		if err := rows.Scan(&n.Time, &n.Duration, &pitch, &velocity, &attrs); err != nil {
			return Performance{}, fmt.Errorf("scan note: %w", err)
		}
		if pitch.Valid {
			v := pitch.Float64
			n.Pitch = &v
		}
		if velocity.Valid {
			v := velocity.Float64
			n.Velocity = &v
		}
		if attrs != "{}" && attrs != "" {
			if err := json.Unmarshal([]byte(attrs), &n.Attrs); err != nil {
				return Performance{}, fmt.Errorf("decode attrs: %w", err)
			}
		}
		p.Notes = append(p.Notes, n)
	}
	if err := rows.Err(); err != nil {
		return Performance{}, fmt.Errorf("get notes: %w", err)
	}
	return p, nil
}

// List returns summaries of every stored performance in insertion order.
func (c *Catalog) List(ctx context.Context) ([]Summary, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, note_count, total_duration
		FROM performances ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.NoteCount, &s.TotalDuration); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}
	return out, nil
}

// marshalAttrs serializes the auxiliary attribute bag. encoding/json sorts
// map keys, so the stored form is deterministic.
func marshalAttrs(attrs map[string]any) (string, error) {
	if len(attrs) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
