package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func newSQLite(t *testing.T) *SQLite {
	t.Helper()

	st, err := OpenSQLite(filepath.Join(t.TempDir(), "candidates.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteSaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newSQLite(t)

	rec := sampleRecord("s1")
	if err := st.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != rec.FullName || got.Email != rec.Email || got.ExperienceYears != rec.ExperienceYears {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.TechStack, rec.TechStack) {
		t.Fatalf("tech stack mismatch: %+v", got.TechStack)
	}
	if !reflect.DeepEqual(got.InterviewResponses, rec.InterviewResponses) {
		t.Fatalf("responses mismatch: %+v", got.InterviewResponses)
	}
}

func TestSQLiteSaveOverwritesSameSession(t *testing.T) {
	ctx := context.Background()
	st := newSQLite(t)

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

func TestSQLiteGetMissing(t *testing.T) {
	st := newSQLite(t)

	if _, err := st.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteUpdateAppliesPartialFields(t *testing.T) {
	ctx := context.Background()
	st := newSQLite(t)

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
}

func TestSQLiteUpdateMissing(t *testing.T) {
	st := newSQLite(t)

	err := st.Update(context.Background(), "missing", map[string]any{"location": "Berlin"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteDelete(t *testing.T) {
	ctx := context.Background()
	st := newSQLite(t)

	if err := st.Save(ctx, sampleRecord("s1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := st.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.Delete(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestSQLiteListNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	st := newSQLite(t)

	for _, id := range []string{"s1", "s2", "s3"} {
		rec := sampleRecord(id)
		rec.Email = id + "@example.com"
		if err := st.Save(ctx, rec); err != nil {
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
