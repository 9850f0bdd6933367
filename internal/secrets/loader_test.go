package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tokenFile := filepath.Join(dir, "token")
	if err := os.WriteFile(tokenFile, []byte("  abc\n"), 0o600); err != nil {
		t.Fatalf("writing token: %v", err)
	}
	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("writing token: %v", err)
	}

	t.Setenv("RESUME_SCORER_TEST_TOKEN", " from-env ")

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{name: "file", src: Source{Name: "headhunter token", File: tokenFile}, want: "abc"},
		{name: "file wins over value", src: Source{File: tokenFile, Value: "inline"}, want: "abc"},
		{name: "inline value", src: Source{Value: " inline "}, want: "inline"},
		{name: "missing file", src: Source{Name: "headhunter token", File: filepath.Join(dir, "absent")}, wantErr: "reading headhunter token"},
		{name: "empty file", src: Source{File: emptyFile}, wantErr: "is empty"},
		{name: "nothing configured", src: Source{}, wantErr: "secret is not configured"},
		{name: "env", src: Source{Env: "RESUME_SCORER_TEST_TOKEN", Value: "inline"}, want: "from-env"},
		{name: "file wins over env", src: Source{Env: "RESUME_SCORER_TEST_TOKEN", File: tokenFile}, want: "abc"},
		{name: "unset env falls back to value", src: Source{Env: "RESUME_SCORER_TEST_UNSET", Value: "inline"}, want: "inline"},
		{name: "optional", src: Source{Env: "RESUME_SCORER_TEST_UNSET", Optional: true}, want: ""},
		{name: "optional empty file", src: Source{File: emptyFile, Optional: true}, wantErr: "is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
