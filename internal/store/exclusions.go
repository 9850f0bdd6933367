package store

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/spigell/resume-scorer/internal/scoring"
)

// Exclusions lists candidates left out of future rankings.
type Exclusions struct {
	Items []*Exclusion
}

type Exclusion struct {
	ID         string
	Vacancy    string
	Score      float64
	ExcludedAt time.Time
}

// ExclusionsFromResults converts ranked results into exclusions for vacancy.
func ExclusionsFromResults(vacancy string, results []*scoring.Result) *Exclusions {
	excluded := &Exclusions{}
	for _, res := range results {
		excluded.Items = append(excluded.Items, &Exclusion{
			ID:         res.SourceID,
			Vacancy:    vacancy,
			Score:      res.TotalScore,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// LoadExclusions reads an exclusion file. A missing or empty file is an empty list.
func LoadExclusions(path string) (*Exclusions, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Exclusions{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Exclusions{}, nil
	}

	var excluded Exclusions
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *Exclusions) Append(other *Exclusions) {
	e.Items = append(e.Items, other.Items...)
}

func (e *Exclusions) IDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (e *Exclusions) ToFile(path string) error {
	return WriteJSON(path, e)
}
