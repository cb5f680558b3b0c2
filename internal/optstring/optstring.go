// Package optstring compiles the compact option-grammar string into an
// ordered table of option specifications.
//
// The grammar, in EBNF form:
//
//	optstring   ::= [":"] option-list
//	option-list ::= option [ separator option ... ]
//	separator   ::= "" | "," | whitespace
//	option      ::= identifier [ sigil ]
//	sigil       ::= "" | "!" | ":" [ quantifier ]
//	quantifier  ::= "" | ":" | "?" | "*" | "+"
//	identifier  ::= short | [short] "|" long
//	short       ::= one alphanumeric character
//	long        ::= alphanumeric, then 1+ of [alphanumeric _ -]
//
// Compilation is tolerant: fragments that do not match the grammar are not
// recognized as options and are recorded as rejected fragments instead of
// failing the whole compile.
package optstring

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// ErrEmpty indicates that the optstring contains nothing to compile.
var ErrEmpty = errors.New("empty optstring")

// Kind classifies how an option treats values.
type Kind int

const (
	// KindFlag takes no value.
	KindFlag Kind = iota

	// KindBoolean takes an optional boolean-ish value, true when bare.
	KindBoolean

	// KindValued consumes one or more value tokens, per its Quantifier.
	KindValued
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindBoolean:
		return "boolean"
	case KindValued:
		return "valued"
	default:
		return "unknown"
	}
}

// Quantifier controls how many value tokens a KindValued option consumes.
type Quantifier int

const (
	// RequiredSingle consumes exactly one value (sigil ":").
	RequiredSingle Quantifier = iota

	// OptionalSingle consumes at most one value (sigils "::" and ":?").
	OptionalSingle

	// ZeroOrMore consumes any run of non-option tokens (sigil ":*").
	ZeroOrMore

	// OneOrMore consumes a non-empty run of non-option tokens (sigil ":+").
	OneOrMore
)

func (q Quantifier) String() string {
	switch q {
	case RequiredSingle:
		return "required"
	case OptionalSingle:
		return "optional"
	case ZeroOrMore:
		return "zero-or-more"
	case OneOrMore:
		return "one-or-more"
	default:
		return "unknown"
	}
}

// Spec is one recognized option. At least one of Short/Long is set.
type Spec struct {
	// Short is the single-character form, empty when the option has none.
	Short string `validate:"omitempty,alphanum,len=1"`

	// Long is the long-name form, empty when the option has none.
	Long string `validate:"omitempty,min=2"`

	// Kind tells whether the option is a flag, a boolean or a valued option.
	Kind Kind

	// Quantifier is only meaningful when Kind is KindValued.
	Quantifier Quantifier
}

// Display returns the canonical form used in the output stream: the long
// name when present, the dash-prefixed short character otherwise.
func (s *Spec) Display() string {
	if s.Long != "" {
		return "--" + s.Long
	}

	return "-" + s.Short
}

// MatchStatus is the outcome of a long-name lookup.
type MatchStatus int

const (
	// MatchNone means no table entry matched the name.
	MatchNone MatchStatus = iota

	// MatchExact means the name is a declared long name.
	MatchExact

	// MatchPrefix means the name is a prefix of exactly one long name.
	MatchPrefix

	// MatchAmbiguous means the name is a prefix of several long names.
	MatchAmbiguous
)

// Table is the ordered collection of option specs compiled from one
// optstring. Declaration order is preserved: it only matters for reporting,
// never for match precedence.
type Table struct {
	// Specs are the recognized options, in declaration order.
	Specs []*Spec

	// SilentErrors is set when the optstring starts with ':', and
	// suppresses matcher diagnostics the same way quiet mode does.
	SilentErrors bool

	// Rejected holds the raw fragments that did not match the grammar.
	// The tolerant compile skips them; strict mode reports them.
	Rejected []string

	shorts map[string]*Spec
	longs  map[string]*Spec
}

// Short resolves a single-character option.
func (t *Table) Short(char string) (*Spec, bool) {
	spec, ok := t.shorts[char]

	return spec, ok
}

// Lookup resolves a long name with exact-first precedence: an exact match
// wins over any prefix, an unambiguous prefix resolves, and a prefix shared
// by several long names is reported as ambiguous.
func (t *Table) Lookup(name string) (*Spec, MatchStatus) {
	if name == "" {
		return nil, MatchNone
	}

	if spec, ok := t.longs[name]; ok {
		return spec, MatchExact
	}

	var found *Spec
	count := 0

	for _, spec := range t.Specs {
		if spec.Long != "" && strings.HasPrefix(spec.Long, name) {
			found = spec
			count++
		}
	}

	switch count {
	case 0:
		return nil, MatchNone
	case 1:
		return found, MatchPrefix
	default:
		return nil, MatchAmbiguous
	}
}

// Names returns every canonical display form in the table, sorted. It backs
// the shell completion of the argument vector being matched.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Specs))
	for _, spec := range t.Specs {
		names = append(names, spec.Display())
	}
	slices.Sort(names)

	return names
}

func isShortChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isLongChar(r rune) bool {
	return isShortChar(r) || r == '_' || r == '-'
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Compile parses an optstring into a Table. A leading ':' sets SilentErrors
// and is stripped before parsing. Compile never hard-fails on malformed
// fragments; the only error condition is a blank optstring. Compiling the
// same optstring twice yields an identical table.
func Compile(optstring string) (*Table, error) {
	table := &Table{
		shorts: map[string]*Spec{},
		longs:  map[string]*Spec{},
	}

	src := []rune(optstring)
	if len(src) > 0 && src[0] == ':' {
		table.SilentErrors = true
		src = src[1:]
	}

	if len(strings.TrimFunc(string(src), isSeparator)) == 0 {
		return nil, ErrEmpty
	}

	pos := 0
	for pos < len(src) {
		if isSeparator(src[pos]) {
			pos++

			continue
		}

		spec, next, ok := scanOption(src, pos)
		if !ok {
			table.Rejected = append(table.Rejected, string(src[pos:next]))
			pos = next

			continue
		}

		pos = next

		if dup := table.duplicate(spec); dup != "" {
			table.Rejected = append(table.Rejected, dup)

			continue
		}

		table.add(spec)
	}

	return table, nil
}

func (t *Table) add(spec *Spec) {
	t.Specs = append(t.Specs, spec)
	if spec.Short != "" {
		t.shorts[spec.Short] = spec
	}
	if spec.Long != "" {
		t.longs[spec.Long] = spec
	}
}

// duplicate returns the clashing identifier when the spec re-declares an
// already registered short char or long name. First declaration wins.
func (t *Table) duplicate(spec *Spec) string {
	if spec.Short != "" {
		if _, ok := t.shorts[spec.Short]; ok {
			return spec.Short
		}
	}
	if spec.Long != "" {
		if _, ok := t.longs[spec.Long]; ok {
			return spec.Long
		}
	}

	return ""
}

// scanOption scans one identifier/sigil pair starting at pos. On failure it
// reports the position past the unrecognized fragment so the caller can
// resume at the next separator.
func scanOption(src []rune, pos int) (*Spec, int, bool) {
	spec := &Spec{}
	cur := pos

	switch {
	case isShortChar(src[cur]):
		spec.Short = string(src[cur])
		cur++

		if cur < len(src) && src[cur] == '|' {
			cur++

			long, next, ok := scanLong(src, cur)
			if !ok {
				return nil, skipFragment(src, next), false
			}
			spec.Long = long
			cur = next
		}
	case src[cur] == '|':
		cur++

		long, next, ok := scanLong(src, cur)
		if !ok {
			return nil, skipFragment(src, next), false
		}
		spec.Long = long
		cur = next
	default:
		return nil, skipFragment(src, cur+1), false
	}

	cur = scanSigil(src, cur, spec)

	return spec, cur, true
}

// scanLong consumes a long identifier: one alphanumeric, then at least one
// more of [alphanumeric _ -].
func scanLong(src []rune, pos int) (string, int, bool) {
	if pos >= len(src) || !isShortChar(src[pos]) {
		return "", pos, false
	}

	cur := pos + 1
	for cur < len(src) && isLongChar(src[cur]) {
		cur++
	}

	if cur-pos < 2 {
		return "", cur, false
	}

	return string(src[pos:cur]), cur, true
}

// scanSigil consumes the optional value sigil and sets the spec kind.
func scanSigil(src []rune, pos int, spec *Spec) int {
	if pos >= len(src) {
		return pos
	}

	switch src[pos] {
	case '!':
		spec.Kind = KindBoolean

		return pos + 1
	case ':':
		spec.Kind = KindValued
		spec.Quantifier = RequiredSingle
		pos++

		if pos < len(src) {
			switch src[pos] {
			case ':', '?':
				spec.Quantifier = OptionalSingle
				pos++
			case '*':
				spec.Quantifier = ZeroOrMore
				pos++
			case '+':
				spec.Quantifier = OneOrMore
				pos++
			}
		}

		return pos
	default:
		return pos
	}
}

// skipFragment advances past the unrecognized fragment, up to the next
// separator, so a single bad fragment cannot swallow later valid options.
func skipFragment(src []rune, pos int) int {
	for pos < len(src) && !isSeparator(src[pos]) {
		pos++
	}

	return pos
}
