package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/profile"
)

// Filter represents a single filtering step applied to candidates.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, c *Candidates) (*Candidates, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	Specialization string `mapstructure:"specialization"`
	Skill          string `mapstructure:"skill"`
	MinExperience  int    `mapstructure:"min-experience"`
	ExcludeFile    string `mapstructure:"exclude-file"`
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Candidates is the list of profiles passed through the filters.
type Candidates struct {
	Items []*profile.Profile
}

// NewCandidates copies items, skipping nil profiles.
func NewCandidates(items []*profile.Profile) *Candidates {
	c := &Candidates{Items: make([]*profile.Profile, 0, len(items))}
	for _, p := range items {
		if p != nil {
			c.Items = append(c.Items, p)
		}
	}
	return c
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

// Keep drops every candidate keep rejects and returns the dropped source ids.
// The order of the remaining candidates is preserved.
func (c *Candidates) Keep(keep func(*profile.Profile) bool) []string {
	var dropped []string
	left := c.Items[:0]
	for _, p := range c.Items {
		if keep(p) {
			left = append(left, p)
			continue
		}
		dropped = append(dropped, p.SourceID)
	}
	for i := len(left); i < len(c.Items); i++ {
		c.Items[i] = nil
	}
	c.Items = left
	return dropped
}

// Exclude drops candidates by source id.
func (c *Candidates) Exclude(ids []string) []string {
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}
	return c.Keep(func(p *profile.Profile) bool {
		return !targets[p.SourceID]
	})
}

// Defaults returns the filter pipeline in execution order.
func Defaults() []Filter {
	return []Filter{
		NewWithText(),
		NewExcludeFile(),
		NewSpecialization(),
		NewSkill(),
		NewMinExperience(),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially, returning the remaining candidates.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, c *Candidates) (*Candidates, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, info, err := step.Apply(ctx, deps, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		c = next
	}

	return c, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
