// Package store keeps parsed profiles, rankings and exclusion lists in flat
// JSON files.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spigell/resume-scorer/internal/profile"
	"github.com/spigell/resume-scorer/internal/scoring"
)

const (
	ProfilesFile = "parsed_resumes.json"
	RankingFile  = "ranked_resumes.json"
)

// Ranking is the persisted outcome of ranking candidates for one vacancy.
type Ranking struct {
	Vacancy     string             `json:"vacancy"`
	Requirement *profile.Profile   `json:"requirement"`
	Statistics  scoring.Statistics `json:"statistics"`
	Results     []*scoring.Result  `json:"results"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Len returns the number of ranked candidates.
func (r *Ranking) Len() int {
	return len(r.Results)
}

// ByCategory groups source ids per category, keeping rank order.
func (r *Ranking) ByCategory() map[scoring.Category][]string {
	report := make(map[scoring.Category][]string)
	for _, res := range r.Results {
		report[res.Category] = append(report[res.Category], res.SourceID)
	}
	return report
}

// Take removes the results of category c from the ranking and returns them.
// The order of the remaining results is preserved.
func (r *Ranking) Take(c scoring.Category) []*scoring.Result {
	var taken []*scoring.Result
	left := make([]*scoring.Result, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Category == c {
			taken = append(taken, res)
			continue
		}
		left = append(left, res)
	}
	r.Results = left
	return taken
}

// SaveProfiles writes profiles to ProfilesFile in dir and returns the path.
func SaveProfiles(dir string, profiles []*profile.Profile) (string, error) {
	path := filepath.Join(dir, ProfilesFile)
	if profiles == nil {
		profiles = []*profile.Profile{}
	}
	if err := WriteJSON(path, profiles); err != nil {
		return "", err
	}
	return path, nil
}

// LoadProfiles reads profiles written by SaveProfiles. null entries are dropped.
func LoadProfiles(path string) ([]*profile.Profile, error) {
	var raw []*profile.Profile
	if err := ReadJSON(path, &raw); err != nil {
		return nil, err
	}

	profiles := make([]*profile.Profile, 0, len(raw))
	for _, p := range raw {
		if p != nil {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

// SaveRanking writes the ranking to RankingFile in dir and returns the path.
func SaveRanking(dir string, ranking *Ranking) (string, error) {
	path := filepath.Join(dir, RankingFile)
	if err := WriteJSON(path, ranking); err != nil {
		return "", err
	}
	return path, nil
}

func LoadRanking(path string) (*Ranking, error) {
	var ranking Ranking
	if err := ReadJSON(path, &ranking); err != nil {
		return nil, err
	}
	return &ranking, nil
}

// DumpToTmpFile writes v to a new temporary file and returns its name.
func DumpToTmpFile(pattern string, v any) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := encode(file, v); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// WriteJSON writes v as indented JSON, creating parent directories. Non-ASCII
// text and HTML characters are written as is.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := encode(file, v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

func ReadJSON(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func encode(file *os.File, v any) error {
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
