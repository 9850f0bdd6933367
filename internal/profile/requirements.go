package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/logger"
)

// requirementSections capture the body of a requirements section up to the
// next known header or the end of the text.
var requirementSections = []*regexp.Regexp{
	regexp.MustCompile(`(?s)требования[:\s]+(.*?)(?:обязанности|условия|$)`),
	regexp.MustCompile(`(?s)requirements[:\s]+(.*?)(?:responsibilities|conditions|$)`),
	regexp.MustCompile(`(?s)необходимо[:\s]+(.*?)(?:обязанности|условия|$)`),
	regexp.MustCompile(`(?s)required[:\s]+(.*?)(?:responsibilities|conditions|$)`),
}

// RequirementsText returns the lowercased requirement sections of a vacancy
// concatenated in pattern order, or the whole lowercased text when no section
// header is found.
func RequirementsText(vacancyText string) (string, bool) {
	lower := strings.ToLower(vacancyText)

	var sb strings.Builder
	for _, re := range requirementSections {
		if m := re.FindStringSubmatch(lower); m != nil {
			sb.WriteString(m[1])
		}
	}

	if sb.Len() == 0 {
		return lower, false
	}
	return sb.String(), true
}

// ExtractRequirements builds the scoring target of a vacancy. Salary is never
// set, TextExcerpt holds the full requirements text.
func (e *Extractor) ExtractRequirements(sourceID, vacancyText string) *Profile {
	p := newProfile(sourceID)

	text, sectioned := RequirementsText(vacancyText)
	if !sectioned {
		e.logger.Debug("no requirements section found, scanning the whole vacancy", zap.String(logger.FieldVacancy, sourceID))
	}

	p.SkillsByCategory, p.AllSkills = e.ExtractSkills(text)
	p.Specializations = e.DetectSpecializations(text, p.SkillsByCategory)
	p.ExperienceYears = ExtractExperience(text)
	p.TextExcerpt = text
	p.TextLength = utf8.RuneCountInString(text)

	return p
}
