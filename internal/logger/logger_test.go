package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "hello world",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestSessionFieldsSkipsEmptyValues(t *testing.T) {
	t.Parallel()

	fields := SessionFields("abc", "greeting")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != FieldSession || fields[1].Key != FieldPhase {
		t.Fatalf("unexpected keys: %s, %s", fields[0].Key, fields[1].Key)
	}

	fields = SessionFields("abc", "")
	if len(fields) != 1 {
		t.Fatalf("expected empty phase to be dropped, got %d fields", len(fields))
	}

	if got := SessionFields("  ", ""); len(got) != 0 {
		t.Fatalf("expected blank values to be dropped, got %d fields", len(got))
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	t.Parallel()

	if WithSessionFields(nil, "abc", "greeting") == nil {
		t.Fatalf("expected a usable logger for nil input")
	}
}
