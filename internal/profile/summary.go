package profile

import "sort"

// SkillCount is the number of profiles mentioning a skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Summary aggregates a corpus of candidate profiles.
type Summary struct {
	TotalProfiles     int            `json:"total_resumes"`
	Specializations   map[string]int `json:"specializations"`
	TopSkills         []SkillCount   `json:"top_skills"`
	AverageExperience float64        `json:"avg_experience"`
}

// Summarize counts specializations and skills across profiles. topN limits
// TopSkills, a non-positive value keeps all skills. Ties are ordered by name.
func Summarize(profiles []*Profile, topN int) Summary {
	summary := Summary{
		TotalProfiles:   len(profiles),
		Specializations: map[string]int{},
		TopSkills:       []SkillCount{},
	}

	skills := map[string]int{}
	experience := 0
	for _, p := range profiles {
		for _, s := range p.Specializations {
			summary.Specializations[s]++
		}
		for _, s := range p.AllSkills {
			skills[s]++
		}
		experience += p.ExperienceYears
	}

	for skill, count := range skills {
		summary.TopSkills = append(summary.TopSkills, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(summary.TopSkills, func(i, j int) bool {
		a, b := summary.TopSkills[i], summary.TopSkills[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Skill < b.Skill
	})
	if topN > 0 && len(summary.TopSkills) > topN {
		summary.TopSkills = summary.TopSkills[:topN]
	}

	if len(profiles) > 0 {
		summary.AverageExperience = float64(experience) / float64(len(profiles))
	}

	return summary
}
