package parseopt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonicalRoundTrip(t *testing.T) {
	t.Parallel()

	// Short form, long form and negated long form of the same option all
	// surface under one canonical display token.
	const optstr = "v|verbose!"

	for _, args := range [][]string{
		{"-v"},
		{"--verbose"},
		{"--verbose=yes"},
	} {
		line, err := Parse(optstr, args)
		require.NoError(t, err)
		assert.Equal(t, "--verbose true -- ", line, "for %v", args)
	}

	line, err := Parse(optstr, []string{"--no-verbose"})
	require.NoError(t, err)
	assert.Equal(t, "--verbose false -- ", line)
}

func TestParseAbbreviationUniqueness(t *testing.T) {
	t.Parallel()

	const optstr = "|verbose |version"

	line, err := Parse(optstr, []string{"--verb"})
	require.NoError(t, err)
	assert.Equal(t, "--verbose -- ", line)

	line, err = Parse(optstr, []string{"--ver"})
	require.NoError(t, err)
	assert.Equal(t, "-? --ver -- ", line)
}

func TestParseBundling(t *testing.T) {
	t.Parallel()

	line, err := Parse("abc", []string{"-abc"})
	require.NoError(t, err)
	assert.Equal(t, "-a -b -c -- ", line)
}

func TestParseVariadicAccumulation(t *testing.T) {
	t.Parallel()

	line, err := Parse("x:*", []string{"-x", "1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, `-x "1 2 3" -- `, line)
}

func TestParseMissingRequiredValueIsNonFatal(t *testing.T) {
	t.Parallel()

	res, err := ParseArgs("x:+", []string{"-x"})
	require.NoError(t, err)

	line := res.String()
	assert.Contains(t, line, "-? -x")
	assert.Contains(t, line, "--")
	assert.Equal(t, []ErrorKind{MissingRequiredValue}, res.Errs())
}

func TestParsePositionalPassthrough(t *testing.T) {
	t.Parallel()

	line, err := Parse("a", []string{"-a", "--", "-a", "--weird", "pos one"})
	require.NoError(t, err)
	assert.Equal(t, `-a -- -a --weird "pos one"`, line)
}

func TestParseQuietSuppression(t *testing.T) {
	t.Parallel()

	const optstr = "v|verbose! x:+"
	args := []string{"--verbose=maybe", "-x", "--zeta"}

	loudErr := &bytes.Buffer{}
	loud, err := Parse(optstr, args, WithStderr(loudErr))
	require.NoError(t, err)
	require.NotEmpty(t, loudErr.String())

	quietErr := &bytes.Buffer{}
	quiet, err := Parse(optstr, args, WithStderr(quietErr), WithQuiet())
	require.NoError(t, err)

	assert.Equal(t, loud, quiet)
	assert.Empty(t, quietErr.String())

	// A leading ':' in the optstring behaves exactly like WithQuiet.
	silentErr := &bytes.Buffer{}
	silent, err := Parse(":"+optstr, args, WithStderr(silentErr))
	require.NoError(t, err)

	assert.Equal(t, loud, silent)
	assert.Empty(t, silentErr.String())
}

func TestParseProgname(t *testing.T) {
	t.Parallel()

	stderr := &bytes.Buffer{}
	_, err := Parse("a", []string{"-z"}, WithStderr(stderr), WithProgname("mytool"))
	require.NoError(t, err)

	assert.Equal(t, "mytool: illegal option -- z\n", stderr.String())
}

func TestParseEmptyOptstring(t *testing.T) {
	t.Parallel()

	for _, optstr := range []string{"", "  ", ":"} {
		_, err := Parse(optstr, []string{"-a"})
		assert.ErrorIs(t, err, ErrEmptyOptstring, "for %q", optstr)
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	// Tolerant by default, fatal under WithStrict.
	line, err := Parse("a|b c", []string{"-c"})
	require.NoError(t, err)
	assert.Equal(t, "-c -- ", line)

	_, err = Parse("a|b c", []string{"-c"}, WithStrict())
	assert.ErrorIs(t, err, ErrBadOptstring)
}

func TestParseGlobAndBraceQuoting(t *testing.T) {
	t.Parallel()

	line, err := Parse("x:", []string{"-x", "*.txt", "{a,b}"})
	require.NoError(t, err)
	assert.Equal(t, "-x *.txt -- {a,b}", line)

	line, err = Parse("x:", []string{"-x", "*.txt", "{a,b}"}, WithGlobQuoting(), WithBraceQuoting())
	require.NoError(t, err)
	assert.Equal(t, `-x "*.txt" -- "{a,b}"`, line)
}

func TestParseArgsStructure(t *testing.T) {
	t.Parallel()

	res, err := ParseArgs("v|verbose! f|file: a", []string{"-v", "--file", "in.txt", "-a", "pos"})
	require.NoError(t, err)

	require.Len(t, res.Options, 3)
	assert.Equal(t, Resolved{Display: "--verbose", Value: "true", HasValue: true}, res.Options[0])
	assert.Equal(t, Resolved{Display: "--file", Value: "in.txt", HasValue: true}, res.Options[1])
	assert.Equal(t, Resolved{Display: "-a"}, res.Options[2])
	assert.Equal(t, []string{"pos"}, res.Positionals)
	assert.Empty(t, res.Errs())
}
