package parsing

import (
	"strings"

	"jobmatch/internal/types"
)

// maxFallbackRequirements caps how many plain lines are promoted to
// requirements when a job description has no bullet lines at all.
const maxFallbackRequirements = 10

// mustHaveHeaders and niceToHaveHeaders classify the requirement lines that
// follow them. Outside any recognized header, requirements default to
// nice-to-have.
var (
	mustHaveHeaders   = []string{"must have", "must-have", "required", "requirements", "minimum qualifications", "what you need"}
	niceToHaveHeaders = []string{"nice to have", "nice-to-have", "preferred", "bonus", "plus", "desired"}
)

// ParseJob extracts weighted requirements from raw job-description text.
// Bullet and dash prefixed lines become requirements; section headers switch
// the must-have / nice-to-have classification. Returns a ParseError when
// the input is empty or contains no extractable requirements.
func ParseJob(text string) (*types.ParsedJob, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Input: "job description", Message: "input is empty"}
	}

	rawLines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	category := types.CategoryNiceToHave
	requirements := make([]types.Requirement, 0, len(rawLines))
	var plain []string

	for _, raw := range rawLines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		// Bullets are checked before headers: a bullet mentioning
		// "required" is a requirement, not a section switch.
		if bulletPrefix.MatchString(raw) {
			line := strings.TrimSpace(bulletPrefix.ReplaceAllString(raw, ""))
			if req, ok := buildRequirement(line, category); ok {
				requirements = append(requirements, req)
			}
			continue
		}
		if cat, ok := headerCategory(trimmed); ok {
			category = cat
			continue
		}
		plain = append(plain, trimmed)
	}

	// A description without bullets still carries requirements as plain
	// lines; promote them, keeping the current classification default.
	if len(requirements) == 0 {
		for _, line := range plain {
			if len(line) <= 6 {
				continue
			}
			if req, ok := buildRequirement(line, types.CategoryNiceToHave); ok {
				requirements = append(requirements, req)
			}
			if len(requirements) == maxFallbackRequirements {
				break
			}
		}
	}

	if len(requirements) == 0 {
		return nil, &ParseError{Input: "job description", Message: "no extractable requirements"}
	}

	return &types.ParsedJob{Requirements: requirements}, nil
}

func buildRequirement(line string, category types.RequirementCategory) (types.Requirement, bool) {
	terms := Tokenize(line)
	if len(terms) == 0 {
		return types.Requirement{}, false
	}
	return types.Requirement{
		Text:     line,
		Terms:    terms,
		Category: category,
		Skill:    SkillLabel(terms),
	}, true
}

// headerCategory reports whether a line is a requirement section header and
// which category it opens. Header lines are short and never bullets.
func headerCategory(line string) (types.RequirementCategory, bool) {
	if len(line) > maxHeaderLen {
		return "", false
	}
	key := strings.ToLower(strings.TrimRight(line, ":"))
	// Nice-to-have phrases are checked first: "preferred requirements"
	// should classify as nice-to-have despite containing "requirements".
	for _, h := range niceToHaveHeaders {
		if strings.Contains(key, h) {
			return types.CategoryNiceToHave, true
		}
	}
	for _, h := range mustHaveHeaders {
		if strings.Contains(key, h) {
			return types.CategoryMustHave, true
		}
	}
	return "", false
}
