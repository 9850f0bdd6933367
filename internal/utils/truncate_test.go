package utils

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
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	if got := Excerpt("  keep spaces  ", 0); got != "  keep spaces  " {
		t.Fatalf("expected unchanged input, got %q", got)
	}

	if got := Excerpt("Опыт работы", 4); got != "Опыт" {
		t.Fatalf("expected rune-aware cut, got %q", got)
	}

	if got := Excerpt("short", 10); got != "short" {
		t.Fatalf("expected short input unchanged, got %q", got)
	}
}
