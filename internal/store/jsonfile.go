package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/okozlov/screenbot/internal/candidate"
)

// JSONFile keeps all candidates in a single JSON array file. It is the
// zero-dependency fallback backend; every write rewrites the whole file.
type JSONFile struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// OpenJSONFile creates the storage file (and its directory) when missing.
func OpenJSONFile(path string, logger *zap.Logger) (*JSONFile, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		path = filepath.Join("data", "candidates.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeRecords(path, []*candidate.Record{}); err != nil {
			return nil, err
		}
	}

	logger.Debug("jsonfile store opened", zap.String("path", path))
	return &JSONFile{path: path, logger: logger}, nil
}

func (s *JSONFile) Save(_ context.Context, rec *candidate.Record) error {
	if rec.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("validating candidate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	stamp(rec, time.Now().UTC())

	// Drop any previous record for the same session before appending, so a
	// re-save overwrites instead of duplicating.
	kept := records[:0]
	for _, existing := range records {
		if existing.SessionID != rec.SessionID {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, rec)

	return writeRecords(s.path, kept)
}

func (s *JSONFile) Get(_ context.Context, sessionID string) (*candidate.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.SessionID == sessionID {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

func (s *JSONFile) List(_ context.Context, limit int) ([]*candidate.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	// The file appends on save; List promises newest first.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *JSONFile) Update(ctx context.Context, sessionID string, fields map[string]any) error {
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

func (s *JSONFile) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.SessionID != sessionID {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}

	return writeRecords(s.path, kept)
}

func (s *JSONFile) Close() error { return nil }

func (s *JSONFile) load() ([]*candidate.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening storage file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading storage file: %w", err)
	}
	if stat.Size() == 0 {
		return []*candidate.Record{}, nil
	}

	var records []*candidate.Record
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding storage file: %w", err)
	}
	return records, nil
}

func writeRecords(path string, records []*candidate.Record) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening storage file for write: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding candidates: %w", err)
	}
	return nil
}
