// Package store persists candidate records keyed by session id.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/okozlov/screenbot/internal/candidate"
)

// Supported backends.
const (
	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
)

// ErrNotFound is returned when no record exists for a session id.
var ErrNotFound = errors.New("candidate not found")

// Store is the narrow persistence interface the conversation core depends
// on. Every operation is fallible I/O; callers treat failures as non-fatal
// status, never as a reason to abort a conversation.
type Store interface {
	// Save validates and writes the record, overwriting any existing record
	// with the same session id.
	Save(ctx context.Context, rec *candidate.Record) error
	// Get returns the record for the session id, or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*candidate.Record, error)
	// List returns stored records, newest first. A non-positive limit means
	// all records.
	List(ctx context.Context, limit int) ([]*candidate.Record, error)
	// Update applies a partial set of fields to an existing record.
	Update(ctx context.Context, sessionID string, fields map[string]any) error
	// Delete removes the record, returning ErrNotFound when absent.
	Delete(ctx context.Context, sessionID string) error

	Close() error
}

// New opens the configured backend.
func New(backend, path string, logger *zap.Logger) (Store, error) {
	switch backend {
	case BackendSQLite, "":
		return OpenSQLite(path, logger)
	case BackendJSONFile:
		return OpenJSONFile(path, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}

// stamp fills server-assigned timestamps before a write.
func stamp(rec *candidate.Record, now time.Time) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
}

// applyFields decodes a loosely-typed field map onto a record copy. Used by
// Update so partial updates share the validation path with Save.
func applyFields(rec *candidate.Record, fields map[string]any) (*candidate.Record, error) {
	updated := *rec

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &updated,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building field decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, fmt.Errorf("decoding fields: %w", err)
	}

	return &updated, nil
}
