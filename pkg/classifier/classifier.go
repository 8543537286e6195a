package classifier

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// ErrEmptyMessage is returned when the input is empty after trimming whitespace.
var ErrEmptyMessage = errors.New("empty commit message")

const (
	// DefaultCategory is assigned when no pattern or keyword matches.
	DefaultCategory = "chore"

	// conventionalConfidence is the score for a message in conventional format.
	conventionalConfidence = 0.95
	// minConfidence is the floor applied to every classification.
	minConfidence = 0.5
)

// CategoryDefinition describes one commit category: its identifier, the
// compiled pattern recognizing the conventional "type(scope): description"
// prefix, a human-readable description, and the keywords used for fallback
// matching when the message is not in conventional format.
type CategoryDefinition struct {
	ID          string
	Pattern     *regexp.Regexp
	Description string
	Keywords    []string
}

// categories is the fixed rule table. Declaration order matters: the
// conventional pass returns the first pattern match, and the keyword fallback
// keeps the earliest category on tied keyword counts. Built once at init and
// never mutated, so concurrent reads need no locking.
var categories = []CategoryDefinition{
	newCategory("feat", "A new feature",
		"add", "new", "implement", "create", "introduce"),
	newCategory("fix", "A bug fix",
		"fix", "bug", "resolve", "correct", "repair", "patch"),
	newCategory("docs", "Documentation changes",
		"doc", "documentation", "readme", "comment", "guide"),
	newCategory("style", "Code style changes (formatting, semicolons, etc.)",
		"style", "format", "indent", "whitespace", "lint"),
	newCategory("refactor", "Code refactoring",
		"refactor", "restructure", "optimize", "improve", "clean"),
	newCategory("perf", "Performance improvements",
		"performance", "perf", "speed", "optimize", "faster"),
	newCategory("test", "Adding or updating tests",
		"test", "testing", "spec", "coverage", "unit", "integration"),
	newCategory("build", "Build system or dependency changes",
		"build", "dependency", "deps", "package", "npm", "pip"),
	newCategory("ci", "CI/CD configuration changes",
		"ci", "cd", "pipeline", "jenkins", "travis", "github actions"),
	newCategory("chore", "Other changes that don't modify src or test files",
		"chore", "update", "upgrade", "maintenance", "config"),
	newCategory("revert", "Reverts a previous commit",
		"revert", "undo", "rollback"),
}

// scopePattern finds the first parenthesized group anywhere in the message.
// Scope extraction deliberately scans the whole message rather than reusing
// the capture group of the matching category's own pattern.
var scopePattern = regexp.MustCompile(`\(([^)]+)\)`)

// prefixPattern strips everything up to and including the first colon plus
// any following whitespace.
var prefixPattern = regexp.MustCompile(`^[^:]+:\s*`)

func newCategory(id, description string, keywords ...string) CategoryDefinition {
	return CategoryDefinition{
		ID:          id,
		Pattern:     regexp.MustCompile(`(?i)^` + id + `(\([^)]+\))?:\s*.+`),
		Description: description,
		Keywords:    keywords,
	}
}

// Result holds the outcome of classifying a single commit message. Scope is
// empty when the message carries no parenthesized qualifier.
type Result struct {
	Category    string
	Scope       string
	Description string
	Confidence  float64
}

// Classify determines the category of a commit message.
//
// Messages in conventional "type(scope): description" format are matched
// against the rule table in declaration order and classified with full
// confidence. Anything else falls back to keyword matching on the lower-cased
// message; the category with the most keyword hits wins, defaulting to
// DefaultCategory when nothing matches at all.
func Classify(message string) (Result, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Result{}, ErrEmptyMessage
	}

	for _, def := range categories {
		if def.Pattern.MatchString(trimmed) {
			return Result{
				Category:    def.ID,
				Scope:       extractScope(trimmed),
				Description: prefixPattern.ReplaceAllString(trimmed, ""),
				Confidence:  conventionalConfidence,
			}, nil
		}
	}

	lower := strings.ToLower(trimmed)
	best := DefaultCategory
	bestConfidence := 0.0

	for _, def := range categories {
		if countKeywords(lower, def.Keywords) == 0 {
			continue
		}
		confidence := categoryConfidence(trimmed, def)
		if confidence > bestConfidence {
			bestConfidence = confidence
			best = def.ID
		}
	}

	return Result{
		Category:    best,
		Description: trimmed,
		Confidence:  math.Max(bestConfidence, minConfidence),
	}, nil
}

// categoryConfidence scores how well a message fits a single category. A
// conventional-format match is full confidence; otherwise each keyword hit
// adds 0.1 on top of a 0.6 base, capped at 0.9.
func categoryConfidence(message string, def CategoryDefinition) float64 {
	if def.Pattern.MatchString(message) {
		return conventionalConfidence
	}
	matches := countKeywords(strings.ToLower(message), def.Keywords)
	if matches > 0 {
		return math.Min(0.6+float64(matches)*0.1, 0.9)
	}
	return minConfidence
}

func countKeywords(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}

func extractScope(message string) string {
	if m := scopePattern.FindStringSubmatch(message); m != nil {
		return m[1]
	}
	return ""
}

// Categories returns the rule table in declaration order. The returned slice
// is shared; callers must not modify it.
func Categories() []CategoryDefinition {
	return categories
}

// Lookup returns the definition for a category id, or false if the id is not
// part of the table.
func Lookup(id string) (CategoryDefinition, bool) {
	for _, def := range categories {
		if def.ID == id {
			return def, true
		}
	}
	return CategoryDefinition{}, false
}
