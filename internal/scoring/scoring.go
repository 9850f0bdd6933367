// Package scoring compares candidate profiles with a vacancy requirement and
// ranks them.
package scoring

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/profile"
)

// Category is the qualitative bucket of a total score.
type Category string

const (
	CategoryExcellent Category = "excellent"
	CategoryGood      Category = "good"
	CategoryAverage   Category = "average"
	CategoryPoor      Category = "poor"
)

// Categories lists the buckets from best to worst.
var Categories = []Category{CategoryExcellent, CategoryGood, CategoryAverage, CategoryPoor}

// CategoryOf buckets a total score.
func CategoryOf(total float64) Category {
	switch {
	case total >= 80:
		return CategoryExcellent
	case total >= 60:
		return CategoryGood
	case total >= 40:
		return CategoryAverage
	default:
		return CategoryPoor
	}
}

// Color is the display color of the category.
func (c Category) Color() string {
	switch c {
	case CategoryExcellent:
		return "green"
	case CategoryGood:
		return "yellow"
	case CategoryAverage:
		return "orange"
	default:
		return "red"
	}
}

// Weights of the score components. They are expected to sum to 1, this is
// not checked.
type Weights struct {
	Skills     float64 `mapstructure:"skills" json:"skills"`
	Text       float64 `mapstructure:"text" json:"text"`
	Experience float64 `mapstructure:"experience" json:"experience"`
}

// DefaultWeights favour skill overlap.
var DefaultWeights = Weights{Skills: 0.6, Text: 0.2, Experience: 0.2}

type Components struct {
	SkillsScore     float64 `json:"skills_score"`
	TextSimilarity  float64 `json:"text_similarity"`
	ExperienceScore float64 `json:"experience_score"`
}

// SkillsDetails lists required skills found and not found in the candidate
// profile, in requirement order.
type SkillsDetails struct {
	Matched       []string `json:"matched"`
	Missing       []string `json:"missing"`
	MatchedCount  int      `json:"matched_count"`
	RequiredCount int      `json:"required_count"`
}

// Result is the score of one candidate against one requirement.
type Result struct {
	SourceID      string           `json:"source_id"`
	TotalScore    float64          `json:"total_score"`
	Category      Category         `json:"category"`
	Color         string           `json:"color"`
	Components    Components       `json:"components"`
	SkillsDetails SkillsDetails    `json:"skills_details"`
	Explanation   string           `json:"explanation"`
	Candidate     *profile.Profile `json:"resume_data,omitempty"`
}

// TextSimilarity rates two texts on a 0..100 scale. Implementations return 0
// instead of failing.
type TextSimilarity interface {
	Similarity(a, b string) float64
}

type Scorer struct {
	weights    Weights
	similarity TextSimilarity
	logger     *zap.Logger
}

type Option func(*Scorer)

func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithSimilarity replaces the TF-IDF text similarity.
func WithSimilarity(sim TextSimilarity) Option {
	return func(s *Scorer) {
		if sim != nil {
			s.similarity = sim
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		weights:    DefaultWeights,
		similarity: NewTFIDF(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score rates candidate against requirement. Scores are rounded to one
// decimal place and the category follows the rounded total.
func (s *Scorer) Score(candidate, requirement *profile.Profile) *Result {
	skillsScore, details := SkillsMatch(candidate.AllSkills, requirement.AllSkills)
	similarity := s.similarity.Similarity(candidate.TextExcerpt, requirement.TextExcerpt)
	experienceScore := ExperienceScore(candidate.ExperienceYears, requirement.ExperienceYears)

	raw := skillsScore*s.weights.Skills +
		similarity*s.weights.Text +
		experienceScore*s.weights.Experience
	// The category follows the exact total, 79.96 is good even though it is
	// reported as 80.0.
	category := CategoryOf(raw)
	total := round1(raw)

	s.logger.Debug("candidate scored",
		zap.String("source", candidate.SourceID),
		zap.Float64("total_score", total),
		zap.Float64("skills_score", skillsScore),
		zap.Float64("text_similarity", similarity),
		zap.Float64("experience_score", experienceScore),
	)

	return &Result{
		SourceID:   candidate.SourceID,
		TotalScore: total,
		Category:   category,
		Color:      category.Color(),
		Components: Components{
			SkillsScore:     round1(skillsScore),
			TextSimilarity:  round1(similarity),
			ExperienceScore: round1(experienceScore),
		},
		SkillsDetails: details,
		Explanation:   Explanation(details, candidate.ExperienceYears, requirement.ExperienceYears),
		Candidate:     candidate,
	}
}

// SkillsMatch returns the share of required skills present in the candidate
// skills, compared case-insensitively. A requirement without skills scores 0.
func SkillsMatch(candidate, required []string) (float64, SkillsDetails) {
	details := SkillsDetails{Matched: []string{}, Missing: []string{}}

	have := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		have[strings.ToLower(s)] = true
	}

	seen := make(map[string]bool, len(required))
	for _, s := range required {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true

		if have[key] {
			details.Matched = append(details.Matched, s)
		} else {
			details.Missing = append(details.Missing, s)
		}
	}

	details.MatchedCount = len(details.Matched)
	details.RequiredCount = len(seen)
	if details.RequiredCount == 0 {
		return 0, details
	}

	return float64(details.MatchedCount) / float64(details.RequiredCount) * 100, details
}

// ExperienceScore grades candidate years against required years. No
// requirement is always fully satisfied.
func ExperienceScore(candidate, required int) float64 {
	if required == 0 {
		return 100
	}

	have, need := float64(candidate), float64(required)
	switch {
	case have >= need:
		return 100
	case have >= need*0.7:
		return 80
	case have >= need*0.5:
		return 60
	default:
		return 40
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
