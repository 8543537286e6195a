package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyForTest(t *testing.T, message string) Result {
	t.Helper()
	result, err := Classify(message)
	require.NoError(t, err)
	return result
}

func TestSuggestions_WellFormedMessage(t *testing.T) {
	message := "feat: add login"
	suggestions := Suggestions(message, classifyForTest(t, message))

	assert.Empty(t, suggestions)
}

// A conventional message with a past-tense, capitalized description triggers
// both the imperative-mood and lowercase suggestions; the checks are
// independent and must co-occur.
func TestSuggestions_ImperativeAndLowercase(t *testing.T) {
	message := "feat: Added login"
	suggestions := Suggestions(message, classifyForTest(t, message))

	assert.Contains(t, suggestions, "Use imperative mood (e.g., 'add' instead of 'added')")
	assert.Contains(t, suggestions, "Start description with lowercase letter")
	assert.Len(t, suggestions, 2)
}

func TestSuggestions_NonConventionalFormat(t *testing.T) {
	message := "added new feature"
	suggestions := Suggestions(message, classifyForTest(t, message))

	assert.Contains(t, suggestions, "Consider using conventional format: feat: added new feature")
	assert.Contains(t, suggestions, "Use imperative mood (e.g., 'add' instead of 'added')")
	assert.Len(t, suggestions, 2)
}

func TestSuggestions_TooShort(t *testing.T) {
	message := "fix bug"
	suggestions := Suggestions(message, classifyForTest(t, message))

	assert.Contains(t, suggestions, "Commit message is too short. Add more details.")
}

func TestSuggestions_TooLong(t *testing.T) {
	message := "feat: " + strings.Repeat("a", 120)
	suggestions := Suggestions(message, classifyForTest(t, message))

	assert.Equal(t, []string{"Commit message is long. Consider keeping summary under 72 characters."}, suggestions)
}

// All applicable checks fire, in a stable order.
func TestSuggestions_OrderIsStable(t *testing.T) {
	message := "Fixed"
	suggestions := Suggestions(message, classifyForTest(t, message))

	assert.Equal(t, []string{
		"Consider using conventional format: fix: Fixed",
		"Commit message is too short. Add more details.",
		"Use imperative mood (e.g., 'add' instead of 'added')",
		"Start description with lowercase letter",
	}, suggestions)
}
