// Command parseopt is a standalone, shell-agnostic option normalizer: given
// an option grammar and a list of raw parameters, it prints a reparsable
// token stream separating resolved options from positional arguments,
// suitable for `eval set --`.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parseopt/parseopt"
)

const version = "1.1.0"

var errMissingOptstring = errors.New("missing optstring operand")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The matcher never fails; any error here is a usage error.
		os.Exit(2)
	}
}

type cliOptions struct {
	optstr     string
	name       string
	quiet      bool
	quoteGlobs bool
	quoteBrace bool
	strict     bool
	version    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "parseopt [-o optstring] [flags] -- parameters...",
		Short: "Normalize command-line parameters against an option grammar",
		Long: `parseopt resolves a list of raw parameters against a compact option
grammar and prints one line: the matched options with their values, the
literal "--" separator, then the positional arguments, quoted so the line
re-tokenizes cleanly. Malformed parameters never abort the scan; they show
up in-band as "-?" markers, and the exit status stays zero.

When -o is not given, the first parameter is taken as the optstring.
Parameters that start with a dash must be preceded by "--" so they are not
mistaken for parseopt's own flags.`,
		Example: `  parseopt -o 'a b c' -- -abc
  parseopt -o 'v|verbose! x:*' -n mytool -- --no-verb -x 1 2 3 file
  eval set -- "$(parseopt -o 'f|file:' -- "$@")"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.optstr, "options", "o", "", "option grammar declaring the recognized options")
	flags.StringVarP(&opts.name, "name", "n", "parseopt", "program name used in diagnostics")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress diagnostics on stderr")
	flags.BoolVarP(&opts.quoteGlobs, "quote-globs", "f", false, "also quote output tokens containing glob characters")
	flags.BoolVarP(&opts.quoteBrace, "quote-braces", "B", false, "also quote output tokens containing brace characters")
	flags.BoolVar(&opts.strict, "strict", false, "fail on malformed optstring fragments")
	flags.BoolVarP(&opts.version, "version", "V", false, "print version and exit")

	registerCompletions(cmd)

	return cmd
}

func run(cmd *cobra.Command, opts *cliOptions, args []string) error {
	if opts.version {
		fmt.Fprintf(cmd.OutOrStdout(), "parseopt %s\n", version)

		return nil
	}

	optstr := opts.optstr
	if optstr == "" {
		if len(args) == 0 {
			return errMissingOptstring
		}
		optstr, args = args[0], args[1:]
	}

	popts := []parseopt.Option{
		parseopt.WithProgname(opts.name),
		parseopt.WithStderr(cmd.ErrOrStderr()),
	}
	if opts.quiet {
		popts = append(popts, parseopt.WithQuiet())
	}
	if opts.quoteGlobs {
		popts = append(popts, parseopt.WithGlobQuoting())
	}
	if opts.quoteBrace {
		popts = append(popts, parseopt.WithBraceQuoting())
	}
	if opts.strict {
		popts = append(popts, parseopt.WithStrict())
	}

	line, err := parseopt.Parse(optstr, args, popts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)

	return nil
}
