package classifier

import (
	"fmt"
	"strings"
	"unicode"
)

// Commit summaries conventionally stay under 72 characters; messages shorter
// than minMessageLength rarely say anything useful.
const (
	minMessageLength = 10
	maxMessageLength = 100
)

// pastTenseIndicators are first-word prefixes that signal past tense instead
// of the imperative mood conventional commits ask for.
var pastTenseIndicators = []string{"added", "fixed", "updated", "changed", "removed", "created"}

// Suggestions derives style advice for a classified commit message. Each
// check is independent; every applicable suggestion is included, in a stable
// order. The returned slice is empty for a well-formed message.
func Suggestions(message string, result Result) []string {
	suggestions := []string{}
	trimmed := strings.TrimSpace(message)

	if def, ok := Lookup(result.Category); ok && !def.Pattern.MatchString(message) {
		suggestions = append(suggestions,
			fmt.Sprintf("Consider using conventional format: %s: %s", result.Category, result.Description))
	}

	if len(trimmed) < minMessageLength {
		suggestions = append(suggestions, "Commit message is too short. Add more details.")
	}
	if len(trimmed) > maxMessageLength {
		suggestions = append(suggestions, "Commit message is long. Consider keeping summary under 72 characters.")
	}

	if firstWord := firstWordLower(result.Description); firstWord != "" {
		for _, indicator := range pastTenseIndicators {
			if strings.HasPrefix(firstWord, indicator) {
				suggestions = append(suggestions, "Use imperative mood (e.g., 'add' instead of 'added')")
				break
			}
		}
	}

	if result.Description != "" {
		if first := []rune(result.Description)[0]; unicode.IsUpper(first) {
			suggestions = append(suggestions, "Start description with lowercase letter")
		}
	}

	return suggestions
}

func firstWordLower(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
