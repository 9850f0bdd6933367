package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSkipsEmptyNames(t *testing.T) {
	tx := New(
		[]Category{
			{Name: "langs", Skills: []string{"Go", "  ", ""}},
			{Name: "  ", Skills: []string{"ignored"}},
		},
		[]Specialization{
			{Label: "Backend", Keywords: []string{" API ", ""}},
			{Label: "", Keywords: []string{"x"}},
		},
	)

	names := tx.CategoryNames()
	if len(names) != 1 || names[0] != "langs" {
		t.Fatalf("unexpected categories: %v", names)
	}

	skills := tx.Skills("langs")
	if len(skills) != 1 || skills[0].Name != "Go" || skills[0].Lower != "go" {
		t.Fatalf("unexpected skills: %+v", skills)
	}

	var keywords []string
	tx.EachSpecialization(func(label string, kws []string) {
		if label != "Backend" {
			t.Fatalf("unexpected label %q", label)
		}
		keywords = kws
	})
	if len(keywords) != 1 || keywords[0] != "api" {
		t.Fatalf("expected lowercased trimmed keyword, got %v", keywords)
	}
}

func TestExtensionsMergeInPlaceAndAppend(t *testing.T) {
	tx := New(
		[]Category{{Name: "a", Skills: []string{"One"}}, {Name: "b", Skills: []string{"Two"}}},
		[]Specialization{{Label: "X", Keywords: []string{"x"}}},
		Extension{
			Categories:      []Category{{Name: "a", Skills: []string{"Replaced"}}, {Name: "c", Skills: []string{"Three"}}},
			Specializations: []Specialization{{Label: "Y", Keywords: []string{"y"}}},
		},
	)

	names := tx.CategoryNames()
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}

	if s := tx.Skills("a"); len(s) != 1 || s[0].Name != "Replaced" {
		t.Fatalf("expected category a to be replaced, got %+v", s)
	}

	labels := tx.SpecializationLabels()
	if len(labels) != 2 || labels[0] != "X" || labels[1] != "Y" {
		t.Fatalf("unexpected labels: %v", labels)
	}
}

func TestBaseTablesAreNotMutatedByMerge(t *testing.T) {
	base := ITCategories()
	_ = New(base, nil, Extension{Categories: []Category{{Name: CategoryLanguages, Skills: []string{"Cobol"}}}})

	if base[0].Skills[0] != "Python" {
		t.Fatalf("base table was mutated: %v", base[0].Skills)
	}
}

func TestLookup(t *testing.T) {
	tx := Default()

	cat, canonical, ok := tx.Lookup("  postgresql ")
	if !ok || cat != CategoryDatabases || canonical != "PostgreSQL" {
		t.Fatalf("unexpected lookup result: %q %q %v", cat, canonical, ok)
	}

	if _, _, ok := tx.Lookup("cobol"); ok {
		t.Fatalf("did not expect cobol to be known")
	}

	if _, _, ok := tx.Lookup(""); ok {
		t.Fatalf("did not expect empty skill to be known")
	}
}

func TestDefaultWithIndustrial(t *testing.T) {
	tx := Default(Industrial())

	if _, _, ok := tx.Lookup("ЧПУ"); !ok {
		t.Fatalf("expected industrial skill to be merged")
	}

	found := false
	for _, l := range tx.SpecializationLabels() {
		if l == "Сварщик" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected industrial specialization to be merged")
	}

	if _, _, ok := Default().Lookup("ЧПУ"); ok {
		t.Fatalf("base taxonomy must not include industrial skills")
	}
}

func TestLoadExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "welding.yaml")
	content := `name: welding
categories:
  - name: welding
    skills: [MIG, TIG]
specializations:
  - label: Сварщик
    keywords: [сварщик, сварка]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	ext, err := LoadExtension(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ext.Name != "welding" {
		t.Fatalf("unexpected name %q", ext.Name)
	}
	if len(ext.Categories) != 1 || len(ext.Categories[0].Skills) != 2 {
		t.Fatalf("unexpected categories: %+v", ext.Categories)
	}
	if len(ext.Specializations) != 1 || ext.Specializations[0].Label != "Сварщик" {
		t.Fatalf("unexpected specializations: %+v", ext.Specializations)
	}
}

func TestLoadExtensionErrors(t *testing.T) {
	if _, err := LoadExtension(""); err == nil {
		t.Fatalf("expected error for empty path")
	}

	if _, err := LoadExtensions([]string{filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
