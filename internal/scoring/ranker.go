package scoring

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/profile"
)

// ErrEmptyResultSet is returned when statistics are requested for no results.
var ErrEmptyResultSet = errors.New("empty result set")

type Ranker struct {
	scorer  *Scorer
	workers int
	logger  *zap.Logger
}

// NewRanker scores candidates with scorer on at most workers goroutines. A
// non-positive workers value means GOMAXPROCS.
func NewRanker(scorer *Scorer, workers int, logger *zap.Logger) *Ranker {
	if scorer == nil {
		scorer = NewScorer()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{scorer: scorer, workers: workers, logger: logger}
}

// Rank scores every candidate against requirement and sorts the results by
// total score, highest first. Equal scores keep the input order.
func (r *Ranker) Rank(ctx context.Context, candidates []*profile.Profile, requirement *profile.Profile) ([]*Result, error) {
	results := make([]*Result, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, c := range candidates {
		if gctx.Err() != nil {
			break
		}
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.scorer.Score(c, requirement)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	r.logger.Info("candidates ranked",
		zap.String(logger.FieldVacancy, requirement.SourceID),
		zap.Int("candidates", len(results)),
	)

	return results, nil
}

// Statistics counts results per category.
type Statistics struct {
	Total     int                  `json:"total"`
	Excellent int                  `json:"excellent"`
	Good      int                  `json:"good"`
	Average   int                  `json:"average"`
	Poor      int                  `json:"poor"`
	Percent   map[Category]float64 `json:"categories_percent"`
}

// Count returns the number of results in category c.
func (s Statistics) Count(c Category) int {
	switch c {
	case CategoryExcellent:
		return s.Excellent
	case CategoryGood:
		return s.Good
	case CategoryAverage:
		return s.Average
	case CategoryPoor:
		return s.Poor
	}
	return 0
}

// CategoryStatistics returns counts and percentages per category. Percentages
// are rounded to one decimal place.
func CategoryStatistics(results []*Result) (Statistics, error) {
	if len(results) == 0 {
		return Statistics{}, ErrEmptyResultSet
	}

	stats := Statistics{Total: len(results)}
	for _, res := range results {
		switch res.Category {
		case CategoryExcellent:
			stats.Excellent++
		case CategoryGood:
			stats.Good++
		case CategoryAverage:
			stats.Average++
		default:
			stats.Poor++
		}
	}

	stats.Percent = make(map[Category]float64, len(Categories))
	for _, c := range Categories {
		stats.Percent[c] = math.Round(float64(stats.Count(c))/float64(stats.Total)*1000) / 10
	}

	return stats, nil
}
