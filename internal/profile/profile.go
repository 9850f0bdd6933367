// Package profile derives structured attributes from résumé and vacancy text:
// skills per category, specializations, years of experience and salary.
package profile

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/taxonomy"
	"github.com/spigell/resume-scorer/internal/utils"
)

// DefaultExcerptLength is the number of runes kept for text similarity.
const DefaultExcerptLength = 500

// ErrNoText is recorded on profiles built from documents without text.
const ErrNoText = "failed to extract text"

// Profile is the structured result of one extraction call. It is not modified
// after it is returned.
type Profile struct {
	SourceID         string              `json:"source_id"`
	SkillsByCategory map[string][]string `json:"skills"`
	AllSkills        []string            `json:"all_skills"`
	Specializations  []string            `json:"specializations"`
	ExperienceYears  int                 `json:"experience_years"`
	// SalaryFrom and SalaryTo are nil when no salary is stated.
	SalaryFrom  *int   `json:"salary_from"`
	SalaryTo    *int   `json:"salary_to"`
	TextExcerpt string `json:"text_preview"`
	TextLength  int    `json:"text_length"`
	Error       string `json:"error,omitempty"`
}

func newProfile(sourceID string) *Profile {
	return &Profile{
		SourceID:         sourceID,
		SkillsByCategory: map[string][]string{},
		AllSkills:        []string{},
		Specializations:  []string{},
	}
}

// HasSpecialization reports whether label was detected.
func (p *Profile) HasSpecialization(label string) bool {
	for _, s := range p.Specializations {
		if s == label {
			return true
		}
	}
	return false
}

type Extractor struct {
	taxonomy      *taxonomy.Taxonomy
	excerptLength int
	logger        *zap.Logger
}

type Option func(*Extractor)

// WithExcerptLength sets how many runes of the text are kept in the profile.
func WithExcerptLength(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.excerptLength = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExtractor builds an extractor over the taxonomy. A nil taxonomy means
// the built-in one.
func NewExtractor(tx *taxonomy.Taxonomy, opts ...Option) *Extractor {
	if tx == nil {
		tx = taxonomy.Default()
	}

	e := &Extractor{
		taxonomy:      tx,
		excerptLength: DefaultExcerptLength,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Taxonomy returns the taxonomy the extractor matches against.
func (e *Extractor) Taxonomy() *taxonomy.Taxonomy {
	return e.taxonomy
}

// ExtractProfile derives a candidate profile from raw text. An empty text
// yields a profile with zero signals and Error set.
func (e *Extractor) ExtractProfile(sourceID, text string) *Profile {
	p := newProfile(sourceID)

	if text == "" {
		p.Error = ErrNoText
		e.logger.Debug("no text to extract from", zap.String("source", sourceID))
		return p
	}

	p.SkillsByCategory, p.AllSkills = e.ExtractSkills(text)
	p.Specializations = e.DetectSpecializations(text, p.SkillsByCategory)
	p.ExperienceYears = ExtractExperience(text)
	p.SalaryFrom, p.SalaryTo = ExtractSalary(text)
	p.TextLength = utf8.RuneCountInString(text)
	p.TextExcerpt = utils.Excerpt(text, e.excerptLength)

	e.logger.Debug("profile extracted",
		zap.String("source", sourceID),
		zap.Int("skills", len(p.AllSkills)),
		zap.Strings("specializations", p.Specializations),
		zap.Int("experience_years", p.ExperienceYears),
	)

	return p
}
