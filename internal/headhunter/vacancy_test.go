package headhunter

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const vacancyJSON = `{
  "id": "123",
  "name": "Backend Python разработчик",
  "employer": {"id": "emp1", "name": "Acme"},
  "experience": {"id": "between1And3", "name": "От 1 года до 3 лет"},
  "description": "<p><strong>Требования:</strong></p><ul><li>Python, Django</li><li>опыт от 2 лет</li></ul><p>Условия: офис<br>ДМС</p>",
  "key_skills": [{"name": "PostgreSQL"}, {"name": " "}, {"name": "Docker"}]
}`

func newTestServer(t *testing.T, gzipped bool, gotAuth *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotAuth != nil {
			*gotAuth = r.Header.Get("Authorization")
		}
		if r.URL.Path != "/vacancies/123" {
			http.NotFound(w, r)
			return
		}
		if !gzipped {
			_, _ = w.Write([]byte(vacancyJSON))
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(vacancyJSON))
		_ = gz.Close()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetVacancy(t *testing.T) {
	for _, gzipped := range []bool{false, true} {
		var auth string
		srv := newTestServer(t, gzipped, &auth)

		client := New(context.Background(), "secret", zap.NewNop())
		client.APIURL = srv.URL

		vacancy, err := client.GetVacancy("123")
		if err != nil {
			t.Fatalf("gzip=%v: unexpected error: %v", gzipped, err)
		}
		if vacancy.ID != "123" || vacancy.Employer.Name != "Acme" {
			t.Fatalf("gzip=%v: unexpected vacancy: %+v", gzipped, vacancy)
		}
		if auth != "Bearer secret" {
			t.Fatalf("gzip=%v: unexpected authorization header %q", gzipped, auth)
		}
	}
}

func TestGetVacancyWithoutToken(t *testing.T) {
	auth := "unset"
	srv := newTestServer(t, false, &auth)

	client := New(context.Background(), "", nil)
	client.APIURL = srv.URL

	if _, err := client.GetVacancy("123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "" {
		t.Fatalf("authorization header must be absent without token, got %q", auth)
	}
}

func TestGetVacancyErrors(t *testing.T) {
	srv := newTestServer(t, false, nil)

	client := New(context.Background(), "", nil)
	client.APIURL = srv.URL

	if _, err := client.GetVacancy("404"); err == nil || !strings.Contains(err.Error(), "bad status") {
		t.Fatalf("expected bad status error, got %v", err)
	}
	if _, err := client.GetVacancy("  "); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestVacancyText(t *testing.T) {
	srv := newTestServer(t, false, nil)
	client := New(context.Background(), "", nil)
	client.APIURL = srv.URL

	vacancy, err := client.GetVacancy("123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := vacancy.Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Backend Python разработчик",
		"Опыт работы: От 1 года до 3 лет",
		"Требования:",
		"- Python, Django",
		"- опыт от 2 лет",
		"Условия: офис",
		"ДМС",
		"Ключевые навыки: PostgreSQL, Docker",
	}, "\n")
	if text != want {
		t.Fatalf("unexpected text:\n%s\nwant:\n%s", text, want)
	}

	if got := vacancy.Label(); got != "123 Backend Python разработчик / Acme" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestHTMLToText(t *testing.T) {
	tests := map[string]string{
		"":                                       "",
		"plain text":                             "plain text",
		"<b>Go</b>   and\n\n<i>Rust</i>":         "Go and\nRust",
		"<div>one</div><div>two</div>":           "one\ntwo",
		"<ol><li>first</li><li>second</li></ol>": "- first\n- second",
	}

	for html, want := range tests {
		got, err := HTMLToText(html)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", html, err)
		}
		if got != want {
			t.Fatalf("%q: expected %q, got %q", html, want, got)
		}
	}
}
