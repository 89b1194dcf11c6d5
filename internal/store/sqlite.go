package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/okozlov/screenbot/internal/candidate"
)

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	session_id TEXT PRIMARY KEY,
	full_name  TEXT,
	email      TEXT,
	phone      TEXT,
	document   TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates(email);
`

// timeLayout pads fractional seconds to a fixed width so the TEXT columns
// sort lexicographically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite stores each candidate as a JSON document plus indexed identity
// columns, keyed by session id.
type SQLite struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite opens (and creates if missing) the database at path.
func OpenSQLite(path string, logger *zap.Logger) (*SQLite, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		path = filepath.Join("data", "candidates.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating candidates table: %w", err)
	}

	logger.Debug("sqlite store opened", zap.String("path", path))
	return &SQLite{db: db, logger: logger}, nil
}

func (s *SQLite) Save(ctx context.Context, rec *candidate.Record) error {
	if rec.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("validating candidate: %w", err)
	}

	stamp(rec, time.Now().UTC())

	document, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding candidate: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO candidates (session_id, full_name, email, phone, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			full_name = excluded.full_name,
			email = excluded.email,
			phone = excluded.phone,
			document = excluded.document,
			updated_at = excluded.updated_at
	`,
		rec.SessionID,
		rec.FullName,
		candidate.NormalizeEmail(rec.Email),
		candidate.NormalizePhone(rec.Phone),
		string(document),
		rec.CreatedAt.Format(timeLayout),
		rec.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving candidate: %w", err)
	}

	return nil
}

func (s *SQLite) Get(ctx context.Context, sessionID string) (*candidate.Record, error) {
	var document string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM candidates WHERE session_id = ?`, sessionID,
	).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting candidate: %w", err)
	}

	return decodeDocument(document)
}

func (s *SQLite) List(ctx context.Context, limit int) ([]*candidate.Record, error) {
	query := `SELECT document FROM candidates ORDER BY updated_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	defer rows.Close()

	var records []*candidate.Record
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}
		rec, err := decodeDocument(document)
		if err != nil {
			s.logger.Warn("skipping undecodable candidate document", zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *SQLite) Update(ctx context.Context, sessionID string, fields map[string]any) error {
	rec, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	updated, err := applyFields(rec, fields)
	if err != nil {
		return err
	}

	return s.Save(ctx, updated)
}

func (s *SQLite) Delete(ctx context.Context, sessionID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM candidates WHERE session_id = ?`, sessionID,
	)
	if err != nil {
		return fmt.Errorf("deleting candidate: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting candidate: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func decodeDocument(document string) (*candidate.Record, error) {
	var rec candidate.Record
	if err := json.Unmarshal([]byte(document), &rec); err != nil {
		return nil, fmt.Errorf("decoding candidate document: %w", err)
	}
	return &rec, nil
}
