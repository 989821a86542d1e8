// Package parsing turns raw resume and job-description text into the
// structured records the scoring pipeline consumes.
package parsing

import (
	"regexp"
	"strings"

	"jobmatch/internal/types"
)

// sectionAliases maps header phrases to the canonical resume section.
var sectionAliases = map[types.Section][]string{
	types.SectionSummary:    {"summary", "profile", "objective", "about me"},
	types.SectionSkills:     {"skills", "technical skills", "core skills", "technologies", "tooling"},
	types.SectionExperience: {"experience", "work experience", "professional experience", "employment", "work history"},
	types.SectionProjects:   {"projects", "personal projects", "selected projects", "research projects"},
	types.SectionEducation:  {"education", "academic background", "academics"},
}

const maxHeaderLen = 48

var (
	bulletPrefix     = regexp.MustCompile(`^\s*([-*•·–]|\d+[.)])\s+`)
	sentenceBoundary = regexp.MustCompile(`[.!?]+(\s+|$)`)
)

// ParseResume splits raw resume text into ordered, section-tagged sentences
// with normalized term sets. Returns a ParseError when the input is empty
// or yields no extractable sentences.
func ParseResume(text string) (*types.ParsedResume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Input: "resume", Message: "input is empty"}
	}

	lines := splitLines(text)
	sentences := make([]types.ResumeSentence, 0, len(lines))
	section := types.SectionSummary
	position := 0

	for _, line := range lines {
		if sec, ok := headerSection(line); ok {
			section = sec
			continue
		}
		for _, fragment := range splitSentences(line) {
			terms := Tokenize(fragment)
			if len(terms) == 0 {
				continue
			}
			sentences = append(sentences, types.ResumeSentence{
				Text:     fragment,
				Position: position,
				Section:  section,
				Terms:    terms,
			})
			position++
		}
	}

	if len(sentences) == 0 {
		return nil, &ParseError{Input: "resume", Message: "no extractable sentences"}
	}

	return &types.ParsedResume{Sentences: sentences}, nil
}

// splitLines normalizes line endings, strips bullet markers and drops blanks.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = bulletPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitSentences breaks a line at punctuation boundaries, keeping each
// fragment's original text for evidence citation.
func splitSentences(line string) []string {
	parts := sentenceBoundary.Split(line, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// headerSection reports whether a line is a section header and which
// canonical section it opens. Headers are short lines matching a known
// alias, optionally suffixed with a colon.
func headerSection(line string) (types.Section, bool) {
	if len(line) > maxHeaderLen {
		return "", false
	}
	key := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	for section, aliases := range sectionAliases {
		for _, alias := range aliases {
			if key == alias {
				return section, true
			}
		}
	}
	return "", false
}
