package cli

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

// newManCommand generates the roff manual for the whole command tree,
// suitable for piping into man:
//
//	yeast2html man | man -l -
func newManCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate the yeast2html man page",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manPage, err := mcobra.NewManPage(1, cmd.Root())
			if err != nil {
				return fmt.Errorf("build man page: %w", err)
			}

			manPage = manPage.WithSection("Copyright",
				"Generated from the yeast2html command definitions.")

			_, err = fmt.Fprint(cmd.OutOrStdout(), manPage.Build(roff.NewDocument()))
			return err
		},
	}

	return cmd
}
