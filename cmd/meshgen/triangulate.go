package main

import (
	"os"

	"github.com/femhub/meshgen/internal/domainio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTriangulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triangulate [file]",
		Short: "Mesh a domain and write the mesh document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return a.runTriangulate(cmd, args, output)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the mesh here instead of stdout")
	return cmd
}

func (a *app) runTriangulate(cmd *cobra.Command, args []string, output string) error {
	input, err := a.readInput(cmd, args)
	if err != nil {
		return err
	}

	domain := input.Domain
	if a.cfg.Normalize {
		domain, err = domain.Normalize(a.rect())
		if err != nil {
			return err
		}
	}

	mesh, err := domain.Triangulate()
	if err != nil {
		return errors.Wrapf(err, "triangulating %s", input.Name)
	}
	a.logger.Info("triangulated domain", "name", input.Name, "triangles", len(mesh.Triangles()))

	if output == "" {
		return domainio.WriteMesh(cmd.OutOrStdout(), a.cfg.OutputFormat, input.Name, mesh, a.cfg.ElementTag)
	}
	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := domainio.WriteMesh(f, a.cfg.OutputFormat, input.Name, mesh, a.cfg.ElementTag); err != nil {
		f.Close()
		return err
	}
	// A failed close can mean the mesh never reached the disk
	return errors.Wrap(f.Close(), "closing output")
}
