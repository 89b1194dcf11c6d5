package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/okozlov/screenbot/internal/candidate"
)

func newJSONFile(t *testing.T) *JSONFile {
	t.Helper()

	st, err := OpenJSONFile(filepath.Join(t.TempDir(), "candidates.json"), zap.NewNop())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	return st
}

func sampleRecord(sessionID string) *candidate.Record {
	return &candidate.Record{
		SessionID:        sessionID,
		FullName:         "John Smith",
		Email:            "john@example.com",
		Phone:            "5551234567",
		ExperienceYears:  6,
		DesiredPositions: []string{"Backend Developer"},
		Location:         "Berlin",
		TechStack:        map[string][]string{"Programming Languages": {"Python"}},
		InterviewResponses: map[string]candidate.Response{
			"Python_0": {Question: "Explain decorators.", Answer: "They wrap callables.", Technology: "Python"},
		},
	}
}

func TestJSONFileSaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newJSONFile(t)

	rec := sampleRecord("s1")
	if err := st.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != rec.FullName || got.Email != rec.Email || got.Location != rec.Location {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.InterviewResponses, rec.InterviewResponses) {
		t.Fatalf("responses mismatch: %+v", got.InterviewResponses)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("expected stamped timestamps: %+v", got)
	}
}

func TestJSONFileSaveOverwritesSameSession(t *testing.T) {
	ctx := context.Background()
	st := newJSONFile(t)

	if err := st.Save(ctx, sampleRecord("s1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	updated := sampleRecord("s1")
	updated.Location = "Hamburg"
	if err := st.Save(ctx, updated); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	records, err := st.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after overwrite, got %d", len(records))
	}
	if records[0].Location != "Hamburg" {
		t.Fatalf("expected overwritten location, got %s", records[0].Location)
	}
}

func TestJSONFileSaveRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	st := newJSONFile(t)

	if err := st.Save(ctx, &candidate.Record{FullName: "No Session"}); err == nil {
		t.Fatalf("expected error for missing session id")
	}

	bad := sampleRecord("s1")
	bad.Email = "not-an-email"
	if err := st.Save(ctx, bad); err == nil {
		t.Fatalf("expected validation error for bad email")
	}
}

func TestJSONFileUpdateAppliesPartialFields(t *testing.T) {
	ctx := context.Background()
	st := newJSONFile(t)

	if err := st.Save(ctx, sampleRecord("s1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	err := st.Update(ctx, "s1", map[string]any{
		"location":         "Hamburg",
		"experience_years": "7",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := st.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Location != "Hamburg" || got.ExperienceYears != 7 {
		t.Fatalf("partial update not applied: %+v", got)
	}
	if got.FullName != "John Smith" {
		t.Fatalf("untouched field changed: %+v", got)
	}
}

func TestJSONFileDelete(t *testing.T) {
	ctx := context.Background()
	st := newJSONFile(t)

	if err := st.Save(ctx, sampleRecord("s1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := st.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.Delete(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestJSONFileListNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	st := newJSONFile(t)

	for _, id := range []string{"s1", "s2", "s3"} {
		if err := st.Save(ctx, sampleRecord(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	records, err := st.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records with limit, got %d", len(records))
	}
	if records[0].SessionID != "s3" || records[1].SessionID != "s2" {
		t.Fatalf("expected newest first, got %s, %s", records[0].SessionID, records[1].SessionID)
	}

	records, err = st.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected all records without limit, got %d", len(records))
	}
	if records[0].SessionID != "s3" || records[2].SessionID != "s1" {
		t.Fatalf("expected newest-first order, got %s ... %s", records[0].SessionID, records[2].SessionID)
	}
}

func TestJSONFileToleratesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}

	st, err := OpenJSONFile(path, zap.NewNop())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	records, err := st.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	if _, err := New("bogus", "", zap.NewNop()); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestNewOpensJSONFileBackend(t *testing.T) {
	st, err := New(BackendJSONFile, filepath.Join(t.TempDir(), "candidates.json"), zap.NewNop())
	if err != nil {
		t.Fatalf("opening jsonfile backend: %v", err)
	}
	defer st.Close()

	if _, ok := st.(*JSONFile); !ok {
		t.Fatalf("expected *JSONFile, got %T", st)
	}
}
