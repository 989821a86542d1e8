package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern keeps letters, digits and the symbols that appear in tech
// terms such as c++, c# and node.js.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#.]{2,}`)

// stopwords are dropped from term sets. Intentionally small: requirement
// phrases are short and aggressive stopword removal loses signal.
var stopwords = map[string]bool{
	"and": true, "the": true, "with": true, "for": true, "of": true,
	"in": true, "on": true, "to": true, "or": true, "an": true,
	"as": true, "at": true, "by": true, "is": true, "are": true,
	"knowledge": true, "experience": true, "proficiency": true,
	"familiarity": true, "ability": true, "years": true, "strong": true,
	"using": true, "used": true, "such": true, "etc": true,
}

// canonicalTerms maps common skill-name variants to one canonical form so
// that a resume saying "sklearn" matches a requirement saying "scikit-learn".
var canonicalTerms = map[string]string{
	"sklearn":    "scikit-learn",
	"python3":    "python",
	"golang":     "go",
	"k8s":        "kubernetes",
	"js":         "javascript",
	"ts":         "typescript",
	"nodejs":     "node.js",
	"postgres":   "postgresql",
	"tf":         "tensorflow",
	"dockerized": "docker",
}

// knownSkills is the vocabulary used to attach an optional skill label to a
// requirement. A requirement's label is the first of its terms found here.
var knownSkills = map[string]bool{
	"python": true, "pytorch": true, "tensorflow": true, "scikit-learn": true,
	"pandas": true, "numpy": true, "fastapi": true, "flask": true,
	"django": true, "docker": true, "kubernetes": true, "aws": true,
	"gcp": true, "azure": true, "ecs": true, "eks": true, "qdrant": true,
	"faiss": true, "postgresql": true, "mysql": true, "redis": true,
	"sql": true, "go": true, "java": true, "c++": true, "c#": true,
	"javascript": true, "typescript": true, "react": true, "node.js": true,
	"git": true, "linux": true, "terraform": true, "kafka": true,
	"spark": true, "airflow": true, "mlflow": true, "nlp": true,
}

// NormalizeTerm lowercases a raw token, strips edge punctuation and maps
// skill variants to their canonical form.
func NormalizeTerm(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.Trim(t, ".")
	if t == "" {
		return ""
	}
	if canonical, ok := canonicalTerms[t]; ok {
		t = canonical
	}
	// Known skill names are canonical already; stemming them would split
	// "kubernetes" from its k8s variant.
	if knownSkills[t] {
		return t
	}
	return stem(t)
}

// stem strips plural suffixes conservatively. Both requirement and resume
// terms pass through the same rule, so matching is unaffected by the exact
// stem produced.
func stem(t string) string {
	// Never touch short tokens (aws, ecs, sql) or ones with digits/symbols.
	if len(t) <= 3 || strings.ContainsAny(t, "0123456789+#.") {
		return t
	}
	switch {
	case strings.HasSuffix(t, "ies"):
		return t[:len(t)-3] + "y"
	case strings.HasSuffix(t, "ss"), strings.HasSuffix(t, "us"), strings.HasSuffix(t, "is"):
		return t
	case strings.HasSuffix(t, "s"):
		return t[:len(t)-1]
	}
	return t
}

// Tokenize extracts the normalized term set of a text fragment.
// The result is deduplicated and sorted for deterministic downstream math.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]bool, len(raw))
	terms := make([]string, 0, len(raw))
	for _, tok := range raw {
		term := NormalizeTerm(tok)
		if term == "" || stopwords[term] || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// SkillLabel returns the first known skill among the given terms, or "".
func SkillLabel(terms []string) string {
	for _, term := range terms {
		if knownSkills[term] {
			return term
		}
	}
	return ""
}
