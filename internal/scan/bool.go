package scan

import "strings"

// Boolean vocabulary, matched case-insensitively. The single letters cover
// the usual English spellings plus the German ja/nein pair.
var (
	truthyWords = []string{"1", "t", "j", "y", "on", "yes", "true", "ja"}
	falsyWords  = []string{"0", "f", "n", "no", "off", "false", "nein"}
)

// parseBool normalizes a boolean literal to "true" or "false". Shorthand
// accepts the single characters '+' and '-' as true and false; it is only
// enabled for short-option inline values.
func parseBool(literal string, shorthand bool) (string, bool) {
	if shorthand {
		switch literal {
		case "+":
			return "true", true
		case "-":
			return "false", true
		}
	}

	lower := strings.ToLower(literal)

	for _, word := range truthyWords {
		if lower == word {
			return "true", true
		}
	}
	for _, word := range falsyWords {
		if lower == word {
			return "false", true
		}
	}

	return "", false
}
