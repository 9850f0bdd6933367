// Package taxonomy holds the catalog of recognized skills grouped by category
// and the keyword rules used to detect specializations.
package taxonomy

import "strings"

// Category names referenced by the specialization fallback chain.
const (
	CategoryLanguages   = "languages"
	CategoryBackend     = "frameworks_backend"
	CategoryFrontend    = "frameworks_frontend"
	CategoryDatabases   = "databases"
	CategoryDevOps      = "devops"
	CategoryDataScience = "data_science"
	CategoryMobile      = "mobile"
	CategoryTesting     = "testing"
	CategoryOther       = "other"
)

// Specialization labels.
const (
	SpecBackend        = "Backend"
	SpecFrontend       = "Frontend"
	SpecFullstack      = "Fullstack"
	SpecDataScience    = "Data Science"
	SpecDevOps         = "DevOps"
	SpecMobile         = "Mobile"
	SpecQA             = "QA"
	SpecProductManager = "Product Manager"
	SpecProjectManager = "Project Manager"
)

// Category is a named group of canonical skill names.
type Category struct {
	Name   string   `mapstructure:"name" json:"name"`
	Skills []string `mapstructure:"skills" json:"skills"`
}

// Specialization maps a label to its trigger keywords.
type Specialization struct {
	Label    string   `mapstructure:"label" json:"label"`
	Keywords []string `mapstructure:"keywords" json:"keywords"`
}

// Extension is an additional set of categories and specializations merged on
// top of a base taxonomy. Entries whose name matches an existing one replace it
// in place, new entries are appended.
type Extension struct {
	Name            string           `mapstructure:"name" json:"name"`
	Categories      []Category       `mapstructure:"categories" json:"categories"`
	Specializations []Specialization `mapstructure:"specializations" json:"specializations"`
}

// Skill is a canonical skill name together with its matching form.
type Skill struct {
	Name  string
	Lower string
}

type category struct {
	name   string
	skills []Skill
}

type specialization struct {
	label    string
	keywords []string
}

// Taxonomy is immutable once built. It is safe for concurrent use.
type Taxonomy struct {
	categories      []category
	specializations []specialization
}

// New builds a taxonomy from the base tables and merges extensions in order.
func New(categories []Category, specializations []Specialization, extensions ...Extension) *Taxonomy {
	cats := append([]Category(nil), categories...)
	specs := append([]Specialization(nil), specializations...)

	for _, ext := range extensions {
		cats = mergeCategories(cats, ext.Categories)
		specs = mergeSpecializations(specs, ext.Specializations)
	}

	t := &Taxonomy{}
	for _, c := range cats {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}

		built := category{name: name}
		for _, s := range c.Skills {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			built.skills = append(built.skills, Skill{Name: s, Lower: strings.ToLower(s)})
		}
		t.categories = append(t.categories, built)
	}

	for _, s := range specs {
		label := strings.TrimSpace(s.Label)
		if label == "" {
			continue
		}

		built := specialization{label: label}
		for _, kw := range s.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			built.keywords = append(built.keywords, kw)
		}
		t.specializations = append(t.specializations, built)
	}

	return t
}

// Default returns the built-in IT taxonomy with the given extensions merged.
func Default(extensions ...Extension) *Taxonomy {
	return New(ITCategories(), ITSpecializations(), extensions...)
}

func mergeCategories(base, ext []Category) []Category {
	for _, c := range ext {
		replaced := false
		for i := range base {
			if base[i].Name == c.Name {
				base[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			base = append(base, c)
		}
	}
	return base
}

func mergeSpecializations(base, ext []Specialization) []Specialization {
	for _, s := range ext {
		replaced := false
		for i := range base {
			if base[i].Label == s.Label {
				base[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			base = append(base, s)
		}
	}
	return base
}

// CategoryNames returns category names in iteration order.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		names = append(names, c.name)
	}
	return names
}

// Skills returns the skills of a category, or nil if it does not exist.
func (t *Taxonomy) Skills(categoryName string) []Skill {
	for _, c := range t.categories {
		if c.name == categoryName {
			return append([]Skill(nil), c.skills...)
		}
	}
	return nil
}

// EachCategory calls fn for every category in iteration order.
func (t *Taxonomy) EachCategory(fn func(name string, skills []Skill)) {
	for _, c := range t.categories {
		fn(c.name, c.skills)
	}
}

// EachSpecialization calls fn for every specialization in iteration order.
// Keywords are already lowercased.
func (t *Taxonomy) EachSpecialization(fn func(label string, keywords []string)) {
	for _, s := range t.specializations {
		fn(s.label, s.keywords)
	}
}

// Lookup finds a skill case-insensitively and returns the category it was
// found in first together with its canonical spelling.
func (t *Taxonomy) Lookup(skill string) (categoryName, canonical string, ok bool) {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if lower == "" {
		return "", "", false
	}
	for _, c := range t.categories {
		for _, s := range c.skills {
			if s.Lower == lower {
				return c.name, s.Name, true
			}
		}
	}
	return "", "", false
}

// SpecializationLabels returns all known labels in iteration order.
func (t *Taxonomy) SpecializationLabels() []string {
	labels := make([]string, 0, len(t.specializations))
	for _, s := range t.specializations {
		labels = append(labels, s.label)
	}
	return labels
}
