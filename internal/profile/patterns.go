package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// thousandsThreshold marks salary values assumed to be stated in thousands.
const thousandsThreshold = 1000

// experienceRules are evaluated in order over the lowercased text, the
// first rule that matches and parses wins.
var experienceRules = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:года|лет|years?)\s+(?:опыта|experience)`),
	regexp.MustCompile(`опыт[^\d]*(\d+)\s*(?:года|лет|years?)`),
	regexp.MustCompile(`experience[^\d]*(\d+)\s*years?`),
}

type salaryRule struct {
	pattern *regexp.Regexp
	// upper is the submatch index of the upper bound, 0 when the rule has none.
	upper int
}

var salaryRules = []salaryRule{
	{
		pattern: regexp.MustCompile(`(?:зарплата|зп|оклад|salary)[:\s-]*(\d+)\s*(?:000)?[\s-]*(?:(\d+)\s*(?:000)?)?`),
		upper:   2,
	},
	{
		pattern: regexp.MustCompile(`(?:от|from)\s*(\d+)\s*(?:000|тыс|k)?\s*(?:до|to)?\s*(\d+)?\s*(?:000|тыс|k)?`),
		upper:   2,
	},
	{
		pattern: regexp.MustCompile(`(\d+)\s*(?:000|тыс|k)\s*[-–—]\s*(\d+)\s*(?:000|тыс|k)`),
		upper:   2,
	},
	{
		pattern: regexp.MustCompile(`(?:желаемая\s+зарплата|expected\s+salary)[:\s-]*(\d+)`),
	},
}

// ExtractExperience returns the years of experience stated in text, or 0.
func ExtractExperience(text string) int {
	lower := strings.ToLower(text)
	for _, rule := range experienceRules {
		m := rule.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return years
	}
	return 0
}

// ExtractSalary returns the salary range stated in text. Both values are nil
// when no rule matches. Values below 1000 are taken as thousands, a missing
// upper bound equals the lower one.
func ExtractSalary(text string) (from, to *int) {
	lower := strings.ToLower(text)
	for _, rule := range salaryRules {
		m := rule.pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		low, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		low = normalizeSalary(low)

		high := low
		if rule.upper > 0 && m[rule.upper] != "" {
			v, err := strconv.Atoi(m[rule.upper])
			if err != nil {
				continue
			}
			high = normalizeSalary(v)
		}

		return &low, &high
	}
	return nil, nil
}

func normalizeSalary(v int) int {
	if v < thousandsThreshold {
		return v * thousandsThreshold
	}
	return v
}
