package main

import (
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/parseopt/parseopt/internal/optstring"
)

// registerCompletions wires carapace shell completion onto the command.
// Parameters complete against the option grammar itself: once -o is present
// on the line, the declared canonical option forms are offered.
func registerCompletions(cmd *cobra.Command) {
	comps := carapace.Gen(cmd)
	comps.Standalone()

	comps.PositionalAnyCompletion(carapace.ActionCallback(func(c carapace.Context) carapace.Action {
		optstr := cmd.Flag("options").Value.String()
		if optstr == "" {
			return carapace.ActionValues()
		}

		table, err := optstring.Compile(optstr)
		if err != nil {
			return carapace.ActionValues()
		}

		return carapace.ActionValues(table.Names()...)
	}))
}
