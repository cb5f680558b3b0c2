package dress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string

		rules Rules
		token string
		want  string
	}{
		{name: "plain token untouched", token: "abc", want: "abc"},
		{name: "dash-prefixed token untouched", token: "--file", want: "--file"},
		{name: "space forces quoting", token: "1 2 3", want: `"1 2 3"`},
		{name: "tab forces quoting", token: "a\tb", want: "\"a\tb\""},
		{name: "newline forces quoting", token: "a\nb", want: "\"a\nb\""},
		{name: "empty token stays visible", token: "", want: `""`},
		{name: "embedded quote is escaped", token: `say "hi"`, want: `"say \"hi\""`},
		{name: "embedded backslash is escaped", token: `a \"b`, want: `"a \\\"b"`},
		{name: "glob char ignored by default", token: "*.txt", want: "*.txt"},
		{name: "glob rule quotes metacharacters", rules: Rules{Glob: true}, token: "*.txt", want: `"*.txt"`},
		{name: "glob rule quotes bracket sets", rules: Rules{Glob: true}, token: "[ab]c", want: `"[ab]c"`},
		{name: "brace char ignored by default", token: "{a,b}", want: "{a,b}"},
		{name: "brace rule quotes braces", rules: Rules{Brace: true}, token: "{a,b}", want: `"{a,b}"`},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.rules.Quote(tc.token))
		})
	}
}
