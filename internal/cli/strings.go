package cli

import (
	"github.com/spf13/cobra"

	"github.com/Pure-Company/pureext/stringext"
)

func newDecapitalizeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decapitalize [--strict] WORD...",
		Short: "Lower-case the first character of each argument",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
	}
	cmd.Flags().Bool("strict", false, "reject empty arguments")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		out := make([]string, 0, len(args))
		for i, arg := range args {
			if !strict {
				out = append(out, stringext.Decapitalize(arg))
				continue
			}
			s, err := stringext.DecapitalizeStrict(arg)
			if err != nil {
				return usageError("argument %d: %w", i+1, err)
			}
			out = append(out, s)
		}
		return a.printer(cmd).lines(out)
	})
	return cmd
}
