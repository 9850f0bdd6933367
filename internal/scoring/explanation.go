package scoring

import (
	"fmt"
	"strings"
)

const (
	explainedSkills = 5
	noDataText      = "Недостаточно данных для анализа."
)

// Explanation summarises a score in Russian: matched and missing skills and
// the experience comparison.
func Explanation(details SkillsDetails, candidateYears, requiredYears int) string {
	var parts []string

	if len(details.Matched) > 0 {
		parts = append(parts, "Найдены навыки: "+listSkills(details.Matched))
	}
	if len(details.Missing) > 0 {
		parts = append(parts, "Отсутствуют: "+listSkills(details.Missing))
	}

	if requiredYears > 0 {
		if candidateYears >= requiredYears {
			parts = append(parts, fmt.Sprintf("Опыт %d лет (требуется %d)", candidateYears, requiredYears))
		} else {
			parts = append(parts, fmt.Sprintf("Опыт %d лет (недостаточно, требуется %d)", candidateYears, requiredYears))
		}
	}

	if len(parts) == 0 {
		return noDataText
	}
	return strings.Join(parts, ". ") + "."
}

func listSkills(skills []string) string {
	if len(skills) <= explainedSkills {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s и ещё %d", strings.Join(skills[:explainedSkills], ", "), len(skills)-explainedSkills)
}
