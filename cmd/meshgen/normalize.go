package main

import (
	"github.com/femhub/meshgen/internal/domainio"
	"github.com/spf13/cobra"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [file]",
		Short: "Fit a domain into the target rectangle and write it back out",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNormalize(cmd, args)
		},
	}
}

func (a *app) runNormalize(cmd *cobra.Command, args []string) error {
	input, err := a.readInput(cmd, args)
	if err != nil {
		return err
	}
	normalized, err := input.Domain.Normalize(a.rect())
	if err != nil {
		return err
	}
	a.logger.Info("normalized domain", "name", input.Name, "bounds", normalized.Bounds())
	return domainio.WriteDomain(cmd.OutOrStdout(), a.cfg.OutputFormat, input.Name, normalized)
}
