package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/femhub/meshgen"
	"github.com/femhub/meshgen/internal/config"
	"github.com/femhub/meshgen/internal/domainio"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app is the state shared by the subcommands once flags and config are loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "meshgen",
		Short: "Triangulate drawn 2D domains for finite element solvers",
		Long: `meshgen reads a domain (an outer boundary plus holes, as nodes and edges,
a graph editor drawing, WKT, or plain point rings), validates it, and writes a
triangle mesh with boundary markers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (YAML, JSON or TOML)")
	flags.StringP("input-format", "i", "yaml", "Domain format: yaml (or JSON), wkt, points")
	flags.StringP("output-format", "f", "json", "Output format: json, yaml, wkt")
	flags.Bool("normalize", false, "Fit the domain into the target rectangle before meshing")
	flags.Float64("rect-x", 0, "Target rectangle lower left X")
	flags.Float64("rect-y", 0, "Target rectangle lower left Y")
	flags.Float64("rect-width", 1, "Target rectangle width")
	flags.Float64("rect-height", 1, "Target rectangle height")
	flags.Int("boundary-marker", meshgen.DefaultBoundaryMarker, "Marker attached to every boundary edge")
	flags.Int("element-tag", 0, "Tag attached to every element")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.Bool("color", true, "Color the summary when writing to a terminal")

	for key, flag := range map[string]string{
		"input_format":    "input-format",
		"output_format":   "output-format",
		"normalize":       "normalize",
		"rect.x":          "rect-x",
		"rect.y":          "rect-y",
		"rect.width":      "rect-width",
		"rect.height":     "rect-height",
		"boundary_marker": "boundary-marker",
		"element_tag":     "element-tag",
		"log_level":       "log-level",
		"color":           "color",
	} {
		// Only fails for a nil flag
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newTriangulateCmd(a),
		newValidateCmd(a),
		newNormalizeCmd(a),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	a.logger.Debug("configuration loaded",
		"input_format", cfg.InputFormat,
		"output_format", cfg.OutputFormat,
		"normalize", cfg.Normalize,
	)
	return nil
}

func (a *app) domainOptions() []meshgen.Option {
	return []meshgen.Option{
		meshgen.WithBoundaryMarker(a.cfg.BoundaryMarker),
		meshgen.WithLogger(a.logger),
	}
}

func (a *app) rect() meshgen.Rectangle {
	r := a.cfg.Rect
	return meshgen.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Read the domain from the file named by the first argument, or from stdin
// when there is none or it is "-".
func (a *app) readInput(cmd *cobra.Command, args []string) (*domainio.Input, error) {
	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in, source = f, args[0]
	}
	input, err := domainio.Read(in, source, a.cfg.InputFormat, a.domainOptions()...)
	if err != nil {
		return nil, err
	}
	a.logger.Info("read domain", "name", input.Name, "source", source)
	return input, nil
}

// Colors are only used on terminals, and never when disabled by config.
func (a *app) colors(w io.Writer) aurora.Aurora {
	enabled := a.cfg != nil && a.cfg.Color
	f, ok := w.(*os.File)
	return aurora.NewAurora(enabled && ok && term.IsTerminal(int(f.Fd())))
}

// Errors coming from the engine are prefixed with their kind.
func describeError(err error) string {
	if kind := meshgen.KindOf(err); kind != "" {
		return fmt.Sprintf("%s: %v", kind, err)
	}
	return err.Error()
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.NewAurora(term.IsTerminal(int(os.Stderr.Fd()))).Red(describeError(err)))
		os.Exit(1)
	}
}
