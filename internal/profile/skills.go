package profile

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/resume-scorer/internal/taxonomy"
)

// ExtractSkills returns matched canonical skills per category together with
// the flattened list in taxonomy order. Categories without matches are omitted.
func (e *Extractor) ExtractSkills(text string) (map[string][]string, []string) {
	lower := strings.ToLower(text)
	byCategory := map[string][]string{}
	all := []string{}

	e.taxonomy.EachCategory(func(name string, skills []taxonomy.Skill) {
		var matched []string
		for _, s := range skills {
			if containsWord(lower, s.Lower) {
				matched = append(matched, s.Name)
			}
		}
		if len(matched) > 0 {
			byCategory[name] = matched
			all = append(all, matched...)
		}
	})

	return byCategory, all
}

// containsWord reports whether term occurs in text as a whole word. A side of
// the term that ends in a word character must not touch another word
// character, so "go" is found in "go, python" but not in "google". Both
// arguments are expected in lower case.
func containsWord(text, term string) bool {
	if term == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)
	checkBefore := isWordRune(first)
	checkAfter := isWordRune(last)

	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}

		start := offset + idx
		end := start + len(term)

		ok := true
		if checkBefore && start > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:start])
			ok = !isWordRune(prev)
		}
		if ok && checkAfter && end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			ok = !isWordRune(next)
		}
		if ok {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}

	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// inference is one row of the fallback decision table used when no
// specialization keyword matched.
type inference struct {
	when   func(skills map[string][]string) bool
	result string
}

func hasAny(categories ...string) func(map[string][]string) bool {
	return func(skills map[string][]string) bool {
		for _, c := range categories {
			if len(skills[c]) > 0 {
				return true
			}
		}
		return false
	}
}

func both(a, b func(map[string][]string) bool) func(map[string][]string) bool {
	return func(skills map[string][]string) bool {
		return a(skills) && b(skills)
	}
}

// fallbackChain is evaluated top to bottom, the first row that holds wins.
var fallbackChain = []inference{
	{
		when:   both(hasAny(taxonomy.CategoryFrontend, taxonomy.CategoryMobile), hasAny(taxonomy.CategoryBackend)),
		result: taxonomy.SpecFullstack,
	},
	{when: hasAny(taxonomy.CategoryFrontend, taxonomy.CategoryMobile), result: taxonomy.SpecFrontend},
	{when: hasAny(taxonomy.CategoryBackend, taxonomy.CategoryDatabases), result: taxonomy.SpecBackend},
	{when: hasAny(taxonomy.CategoryDataScience), result: taxonomy.SpecDataScience},
	{when: hasAny(taxonomy.CategoryDevOps), result: taxonomy.SpecDevOps},
}

// inferSpecialization applies the fallback chain and returns "" when no row holds.
func inferSpecialization(skills map[string][]string) string {
	for _, row := range fallbackChain {
		if row.when(skills) {
			return row.result
		}
	}
	return ""
}

// DetectSpecializations matches specialization keywords as plain substrings of
// the lowercased text. The first keyword hit decides a label. When nothing
// matches, at most one label is inferred from the matched skill categories.
// Callers must not rely on the order of the result.
func (e *Extractor) DetectSpecializations(text string, skills map[string][]string) []string {
	lower := strings.ToLower(text)
	detected := []string{}
	seen := map[string]bool{}

	e.taxonomy.EachSpecialization(func(label string, keywords []string) {
		if seen[label] {
			return
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				detected = append(detected, label)
				seen[label] = true
				return
			}
		}
	})

	if len(detected) == 0 {
		if label := inferSpecialization(skills); label != "" {
			detected = append(detected, label)
		}
	}

	return detected
}
