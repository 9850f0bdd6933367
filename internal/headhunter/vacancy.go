package headhunter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Vacancy struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Area struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"area,omitempty"`
	Salary *struct {
		From     int    `json:"from,omitempty"`
		To       int    `json:"to,omitempty"`
		Currency string `json:"currency,omitempty"`
	} `json:"salary,omitempty"`
	Experience struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"experience,omitempty"`
	Employer struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"employer,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	Description  string `json:"description,omitempty"`
	KeySkills    []struct {
		Name string `json:"name,omitempty"`
	} `json:"key_skills,omitempty"`
	ProfessionalRoles []struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"professional_roles,omitempty"`
}

// Label identifies the vacancy in logs and reports.
func (va *Vacancy) Label() string {
	if va.Employer.Name == "" {
		return fmt.Sprintf("%s %s", va.ID, va.Name)
	}
	return fmt.Sprintf("%s %s / %s", va.ID, va.Name, va.Employer.Name)
}

// Skills returns the key skill names.
func (va *Vacancy) Skills() []string {
	skills := make([]string, 0, len(va.KeySkills))
	for _, s := range va.KeySkills {
		if name := strings.TrimSpace(s.Name); name != "" {
			skills = append(skills, name)
		}
	}
	return skills
}

// Text renders the vacancy as plain text: title, experience, the description
// without markup and the key skills.
func (va *Vacancy) Text() (string, error) {
	description, err := HTMLToText(va.Description)
	if err != nil {
		return "", fmt.Errorf("parsing description of vacancy %s: %w", va.ID, err)
	}

	var lines []string
	if va.Name != "" {
		lines = append(lines, va.Name)
	}
	if va.Experience.Name != "" {
		lines = append(lines, "Опыт работы: "+va.Experience.Name)
	}
	if description != "" {
		lines = append(lines, description)
	}
	if skills := va.Skills(); len(skills) > 0 {
		lines = append(lines, "Ключевые навыки: "+strings.Join(skills, ", "))
	}

	return strings.Join(lines, "\n"), nil
}

var blankLines = regexp.MustCompile(`\n\s*\n+`)

// HTMLToText strips markup from an hh.ru description. Block elements and
// line breaks end a line, list items are prefixed with a dash.
func HTMLToText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, li, div, ul, ol, h1, h2, h3, h4, h5, h6").AppendHtml("\n")

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}

	text := blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n")
	return strings.TrimSpace(text), nil
}
