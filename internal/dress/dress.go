// Package dress quotes output tokens so that the emitted line re-tokenizes
// into the same words when evaluated by a shell.
package dress

import "strings"

// Rules selects which token contents force quoting, beyond whitespace.
type Rules struct {
	// Glob additionally quotes tokens containing glob metacharacters,
	// so the caller's shell does not expand them.
	Glob bool

	// Brace additionally quotes tokens containing brace characters.
	Brace bool
}

const (
	whitespaceChars = " \t\n"
	globChars       = "*?["
	braceChars      = "{}"
)

// Quote wraps the token in double quotes when its content would not survive
// shell word-splitting, escaping embedded quotes and backslashes. Empty
// tokens are always quoted so they remain visible as words.
func (r Rules) Quote(token string) string {
	if !r.needsQuoting(token) {
		return token
	}

	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(token)

	return `"` + escaped + `"`
}

func (r Rules) needsQuoting(token string) bool {
	if token == "" {
		return true
	}
	if strings.ContainsAny(token, whitespaceChars) || strings.Contains(token, `"`) {
		return true
	}
	if r.Glob && strings.ContainsAny(token, globChars) {
		return true
	}
	if r.Brace && strings.ContainsAny(token, braceChars) {
		return true
	}

	return false
}
