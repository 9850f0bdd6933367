package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/profile"
	"github.com/spigell/resume-scorer/internal/store"
)

type withTextFilter struct {
	disabled bool
	reason   string
}

// NewWithText creates a filter that removes candidates whose documents gave no text.
func NewWithText() Filter {
	return &withTextFilter{}
}

func (f *withTextFilter) Name() string { return "with_text" }

func (f *withTextFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *withTextFilter) IsEnabled() bool { return !f.disabled }

func (f *withTextFilter) Validate(*Config) error { return nil }

func (f *withTextFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()
	excluded := c.Keep(func(p *profile.Profile) bool { return p.Error == "" })
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding resumes without text",
			zap.Strings("excluded_resumes", excluded),
			zap.Int("resumes_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *withTextFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes candidates listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()
	if f.path == "" {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded, err := store.LoadExclusions(f.path)
	if err != nil {
		return c, Step{}, fmt.Errorf("getting excluded resumes from file: %w", err)
	}

	removed := c.Exclude(excluded.IDs())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding resumes based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_resumes", removed),
			zap.Int("resumes_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(removed), Left: c.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type specializationFilter struct {
	label string
}

// NewSpecialization creates a filter that keeps candidates with the configured specialization.
func NewSpecialization() Filter {
	return &specializationFilter{}
}

func (f *specializationFilter) Name() string { return "specialization" }

func (f *specializationFilter) Disable(string) {}

func (f *specializationFilter) IsEnabled() bool { return true }

func (f *specializationFilter) Validate(cfg *Config) error {
	f.label = ""
	if cfg != nil {
		f.label = strings.TrimSpace(cfg.Specialization)
	}
	return nil
}

func (f *specializationFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()
	if f.label == "" {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded := c.Keep(func(p *profile.Profile) bool { return p.HasSpecialization(f.label) })
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding resumes by specialization",
			zap.String("specialization", f.label),
			zap.Strings("excluded_resumes", excluded),
			zap.Int("resumes_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *specializationFilter) Status() Status {
	details := map[string]string{}
	if f.label != "" {
		details["specialization"] = f.label
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type skillFilter struct {
	skill string
}

// NewSkill creates a filter that keeps candidates having the configured skill, case-insensitively.
func NewSkill() Filter {
	return &skillFilter{}
}

func (f *skillFilter) Name() string { return "skill" }

func (f *skillFilter) Disable(string) {}

func (f *skillFilter) IsEnabled() bool { return true }

func (f *skillFilter) Validate(cfg *Config) error {
	f.skill = ""
	if cfg != nil {
		f.skill = strings.ToLower(strings.TrimSpace(cfg.Skill))
	}
	return nil
}

func (f *skillFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()
	if f.skill == "" {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded := c.Keep(func(p *profile.Profile) bool {
		for _, s := range p.AllSkills {
			if strings.ToLower(s) == f.skill {
				return true
			}
		}
		return false
	})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding resumes without skill",
			zap.String("skill", f.skill),
			zap.Strings("excluded_resumes", excluded),
			zap.Int("resumes_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *skillFilter) Status() Status {
	details := map[string]string{}
	if f.skill != "" {
		details["skill"] = f.skill
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type minExperienceFilter struct {
	years int
}

// NewMinExperience creates a filter that keeps candidates with at least the configured years of experience.
func NewMinExperience() Filter {
	return &minExperienceFilter{}
}

func (f *minExperienceFilter) Name() string { return "min_experience" }

func (f *minExperienceFilter) Disable(string) {}

func (f *minExperienceFilter) IsEnabled() bool { return true }

func (f *minExperienceFilter) Validate(cfg *Config) error {
	f.years = 0
	if cfg == nil {
		return nil
	}
	if cfg.MinExperience < 0 {
		return fmt.Errorf("minimum experience must not be negative, got %d", cfg.MinExperience)
	}
	f.years = cfg.MinExperience
	return nil
}

func (f *minExperienceFilter) Apply(_ context.Context, deps Deps, c *Candidates) (*Candidates, Step, error) {
	initial := c.Len()
	if f.years == 0 {
		return c, Step{Initial: initial, Dropped: 0, Left: c.Len()}, nil
	}

	excluded := c.Keep(func(p *profile.Profile) bool { return p.ExperienceYears >= f.years })
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding resumes by experience",
			zap.Int("min_experience", f.years),
			zap.Strings("excluded_resumes", excluded),
			zap.Int("resumes_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(excluded), Left: c.Len()}, nil
}

func (f *minExperienceFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"min_experience": strconv.Itoa(f.years)},
	}
}
