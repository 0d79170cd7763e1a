package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a domain can be meshed",
		Long: `Builds the domain, reporting malformed, self-intersecting or degenerate
boundaries, and prints a summary of its loops.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args)
		},
	}
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	au := a.colors(out)

	input, err := a.readInput(cmd, args)
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", au.Red("invalid"), describeError(err))
		return err
	}

	d := input.Domain
	loops := d.Loops()
	fmt.Fprintf(out, "%s %s\n", au.Green("valid"), au.Bold(input.Name))
	fmt.Fprintf(out, "  nodes:           %d\n", len(d.Nodes()))
	fmt.Fprintf(out, "  boundary edges:  %d\n", len(d.Boundary()))
	fmt.Fprintf(out, "  holes:           %d\n", len(loops)-1)
	fmt.Fprintf(out, "  interior points: %d\n", len(d.InteriorPoints()))
	fmt.Fprintf(out, "  area:            %s\n", au.Cyan(fmt.Sprintf("%g", d.Area())))
	return nil
}
