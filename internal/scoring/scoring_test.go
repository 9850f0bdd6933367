package scoring

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/profile"
)

type fixedSimilarity float64

func (f fixedSimilarity) Similarity(string, string) float64 { return float64(f) }

func TestScore_RequirementScenario(t *testing.T) {
	req := profile.NewExtractor(nil).ExtractRequirements("vacancy", "Требования: Python, Docker, опыт от 2 лет")
	candidate := &profile.Profile{
		SourceID:        "cv.pdf",
		AllSkills:       []string{"Python", "Docker", "Kubernetes"},
		ExperienceYears: 3,
	}

	res := NewScorer(WithSimilarity(fixedSimilarity(50))).Score(candidate, req)

	assert.Equal(t, "cv.pdf", res.SourceID)
	assert.Equal(t, 100.0, res.Components.SkillsScore)
	assert.Equal(t, 50.0, res.Components.TextSimilarity)
	assert.Equal(t, 100.0, res.Components.ExperienceScore)
	assert.Equal(t, 90.0, res.TotalScore)
	assert.Equal(t, CategoryExcellent, res.Category)
	assert.Equal(t, "green", res.Color)
	assert.Equal(t, SkillsDetails{
		Matched:       []string{"Python", "Docker"},
		Missing:       []string{},
		MatchedCount:  2,
		RequiredCount: 2,
	}, res.SkillsDetails)
	assert.Equal(t, "Найдены навыки: Python, Docker. Опыт 3 лет (требуется 2).", res.Explanation)
	assert.Same(t, candidate, res.Candidate)
}

func TestScore_CategoryUsesExactTotal(t *testing.T) {
	req := &profile.Profile{AllSkills: []string{"Go", "Rust", "SQL"}, ExperienceYears: 2}
	candidate := &profile.Profile{AllSkills: []string{"Go", "SQL"}, ExperienceYears: 2}

	res := NewScorer(WithSimilarity(fixedSimilarity(99.8))).Score(candidate, req)

	assert.Equal(t, 80.0, res.TotalScore)
	assert.Equal(t, CategoryGood, res.Category)
	assert.Equal(t, "yellow", res.Color)
}

func TestScore_CustomWeights(t *testing.T) {
	req := &profile.Profile{AllSkills: []string{"Go", "Rust"}, ExperienceYears: 10}
	candidate := &profile.Profile{AllSkills: []string{"go"}}

	s := NewScorer(WithWeights(Weights{Skills: 1}), WithSimilarity(fixedSimilarity(100)))
	res := s.Score(candidate, req)

	assert.Equal(t, 50.0, res.TotalScore)
	assert.Equal(t, CategoryAverage, res.Category)
	assert.Equal(t, Weights{Skills: 1}, s.Weights())
}

func TestScore_Rounding(t *testing.T) {
	req := &profile.Profile{AllSkills: []string{"Go", "Rust", "C"}}
	candidate := &profile.Profile{AllSkills: []string{"Go"}}

	res := NewScorer(WithSimilarity(fixedSimilarity(12.345))).Score(candidate, req)

	assert.Equal(t, 33.3, res.Components.SkillsScore)
	assert.Equal(t, 12.3, res.Components.TextSimilarity)
	// 33.333*0.6 + 12.345*0.2 + 100*0.2
	assert.Equal(t, 42.5, res.TotalScore)
}

func TestSkillsMatch(t *testing.T) {
	t.Run("no required skills scores zero", func(t *testing.T) {
		score, details := SkillsMatch([]string{"Python"}, nil)
		assert.Zero(t, score)
		assert.Empty(t, details.Matched)
		assert.Empty(t, details.Missing)
		assert.Zero(t, details.RequiredCount)
	})

	t.Run("case insensitive", func(t *testing.T) {
		score, details := SkillsMatch([]string{"python"}, []string{"Python", "Go"})
		assert.Equal(t, 50.0, score)
		assert.Equal(t, []string{"Python"}, details.Matched)
		assert.Equal(t, []string{"Go"}, details.Missing)
	})

	t.Run("duplicates in requirement count once", func(t *testing.T) {
		score, details := SkillsMatch([]string{"Redis"}, []string{"Redis", "Kafka", "redis"})
		assert.Equal(t, 50.0, score)
		assert.Equal(t, 2, details.RequiredCount)
		assert.Equal(t, 1, details.MatchedCount)
	})

	t.Run("bounded by 100", func(t *testing.T) {
		score, _ := SkillsMatch([]string{"A", "B", "C", "D"}, []string{"A"})
		assert.Equal(t, 100.0, score)
	})
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		candidate, required int
		want                float64
	}{
		{0, 0, 100},
		{12, 0, 100},
		{3, 2, 100},
		{2, 2, 100},
		{7, 10, 80},
		{5, 10, 60},
		{4, 10, 40},
		{0, 1, 40},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.candidate, tt.required), func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceScore(tt.candidate, tt.required))
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		total    float64
		category Category
		color    string
	}{
		{100, CategoryExcellent, "green"},
		{80, CategoryExcellent, "green"},
		{79.9, CategoryGood, "yellow"},
		{60, CategoryGood, "yellow"},
		{59.9, CategoryAverage, "orange"},
		{40, CategoryAverage, "orange"},
		{39.9, CategoryPoor, "red"},
		{0, CategoryPoor, "red"},
	}

	for _, tt := range tests {
		c := CategoryOf(tt.total)
		assert.Equal(t, tt.category, c, "total %v", tt.total)
		assert.Equal(t, tt.color, c.Color(), "total %v", tt.total)
	}
}

func TestExplanation(t *testing.T) {
	tests := []struct {
		name     string
		details  SkillsDetails
		cand     int
		required int
		want     string
	}{
		{
			name: "no data",
			want: "Недостаточно данных для анализа.",
		},
		{
			name:     "experience only, insufficient",
			cand:     1,
			required: 3,
			want:     "Опыт 1 лет (недостаточно, требуется 3).",
		},
		{
			name: "more than five skills",
			details: SkillsDetails{
				Matched: []string{"A", "B", "C", "D", "E", "F", "G"},
				Missing: []string{"X"},
			},
			want: "Найдены навыки: A, B, C, D, E и ещё 2. Отсутствуют: X.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explanation(tt.details, tt.cand, tt.required))
		})
	}
}

func TestTFIDF(t *testing.T) {
	tfidf := NewTFIDF()

	assert.InDelta(t, 100, tfidf.Similarity("Python Django developer", "python django DEVELOPER"), 1e-9)
	assert.Zero(t, tfidf.Similarity("python django", "kotlin android"))
	assert.Zero(t, tfidf.Similarity("", "python"))
	assert.Zero(t, tfidf.Similarity("", ""))
	assert.Zero(t, tfidf.Similarity("a b c", "a b c"), "single character tokens are ignored")

	ab := tfidf.Similarity("senior go developer with docker", "go developer, docker and kubernetes")
	ba := tfidf.Similarity("go developer, docker and kubernetes", "senior go developer with docker")
	assert.InDelta(t, ab, ba, 1e-9)
	assert.Greater(t, ab, 0.0)
	assert.Less(t, ab, 100.0)
}

func TestTFIDFKnownValue(t *testing.T) {
	// Shared "go" has idf 1, every other term ln(3/2)+1.
	rare := math.Log(1.5) + 1
	want := 100 / (1 + 2*rare*rare)

	assert.InDelta(t, want, NewTFIDF().Similarity("go python", "go rust"), 1e-9)
}

func TestTFIDFVocabularyCap(t *testing.T) {
	// Only "go" survives a one term vocabulary.
	assert.InDelta(t, 100, NewTFIDFWithFeatures(1).Similarity("go python", "go rust"), 1e-9)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"опыт", "c_sharp", "10"}, tokenize("опыт: c_sharp, 10 x"))
	assert.Equal(t, map[string]int{"go": 2, "go go": 1}, countTerms("Go go"))
}

func TestRankIsSortedAndStable(t *testing.T) {
	req := &profile.Profile{SourceID: "vacancy", AllSkills: []string{"Go"}, ExperienceYears: 10}

	var candidates []*profile.Profile
	for i := 0; i < 40; i++ {
		candidates = append(candidates, &profile.Profile{
			SourceID:        fmt.Sprintf("cv-%02d", i),
			AllSkills:       []string{"Go"},
			ExperienceYears: i % 4 * 3,
		})
	}

	ranker := NewRanker(NewScorer(WithSimilarity(fixedSimilarity(0))), 4, nil)
	results, err := ranker.Rank(context.Background(), candidates, req)
	require.NoError(t, err)
	require.Len(t, results, len(candidates))

	pos := map[string]int{}
	for i, c := range candidates {
		pos[c.SourceID] = i
	}
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		require.GreaterOrEqual(t, prev.TotalScore, cur.TotalScore)
		if prev.TotalScore == cur.TotalScore {
			require.Less(t, pos[prev.SourceID], pos[cur.SourceID], "tie order must follow input order")
		}
	}
	assert.Equal(t, "cv-03", results[0].SourceID)
}

func TestRankLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ranker := NewRanker(NewScorer(), 1, zap.New(core))

	results, err := ranker.Rank(context.Background(), nil, &profile.Profile{SourceID: "v"})
	require.NoError(t, err)
	assert.Empty(t, results)

	entries := logs.FilterMessage("candidates ranked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "v", entries[0].ContextMap()[logger.FieldVacancy])
}

func TestRankCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRanker(nil, 2, nil).Rank(ctx, []*profile.Profile{{SourceID: "a"}}, &profile.Profile{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCategoryStatistics(t *testing.T) {
	_, err := CategoryStatistics(nil)
	require.ErrorIs(t, err, ErrEmptyResultSet)

	stats, err := CategoryStatistics([]*Result{
		{Category: CategoryExcellent},
		{Category: CategoryGood},
		{Category: CategoryGood},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Excellent)
	assert.Equal(t, 2, stats.Good)
	assert.Zero(t, stats.Average)
	assert.Zero(t, stats.Poor)
	assert.Equal(t, map[Category]float64{
		CategoryExcellent: 33.3,
		CategoryGood:      66.7,
		CategoryAverage:   0,
		CategoryPoor:      0,
	}, stats.Percent)
}
