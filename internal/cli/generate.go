package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kitplan/kitplan/internal/demo"
	"github.com/kitplan/kitplan/pkg/kit"
)

// generateOpts holds the command-line flags for the generate command.
// Flags override the corresponding fields of the kit definition file.
type generateOpts struct {
	demo      bool    // generate the built-in demo house instead of a file
	output    string  // output directory for plan files
	paper     string  // page format override
	scale     string  // model scale override
	margin    float64 // page margin override, in points
	formats   string  // comma-separated output formats override
	lineWidth float64 // cut-line stroke width override, in points
	dpi       float64 // raster resolution override for PNG output
}

// newGenerateCmd creates the generate command, the main entry point of
// the tool: it reads a kit definition, runs the build, pack and render
// pipeline and writes the resulting plan files.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [kitfile]",
		Short: "Generate printable plan files from a kit definition",
		Long: `Generate reads a TOML kit definition, scales every part down, packs
the pieces onto pages and writes the plans in the requested formats.

With --demo it generates the built-in example house instead of reading
a definition file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.demo == (len(args) == 1) {
				return fmt.Errorf("provide either a kit definition file or --demo")
			}
			return runGenerate(cmd, args, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.demo, "demo", false, "generate the built-in demo house")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.paper, "paper", "", "page format (default "+kit.DefaultPaper+")")
	cmd.Flags().StringVar(&opts.scale, "scale", "", "model scale, named or N:D (default "+kit.DefaultScale+")")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "page margin in points")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): pdf (default), svg, png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.lineWidth, "line-width", 0, "cut-line stroke width in points")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "raster resolution for png output")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	var (
		kitOpts kit.Options
		parts   []kit.Component
		err     error
	)
	if opts.demo {
		kitOpts = kit.Options{Name: "house"}
		parts, err = demo.Components()
	} else {
		var def *kit.Definition
		def, err = kit.LoadDefinition(args[0])
		if err == nil {
			kitOpts = def.Options
			if kitOpts.Name == "" {
				kitOpts.Name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			parts, err = def.Components()
		}
	}
	if err != nil {
		return err
	}

	applyOverrides(cmd, opts, &kitOpts)
	kitOpts.Logger = logger

	k, err := kit.New(kitOpts)
	if err != nil {
		return err
	}
	for _, c := range parts {
		if err := k.Add(c); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(cmd.Context(), "Generating plans...")
	spinner.Start()
	result, err := k.Generate()
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Packed %d pieces onto %d pages", result.Stats.Pieces, result.Stats.Pages))

	if err := os.MkdirAll(opts.output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	printSuccess("Generated %q at %s on %s", kitOpts.Name, k.Scale().Name, k.Paper().Name)
	for _, artifact := range result.Artifacts {
		for _, file := range artifact.Files {
			path := filepath.Join(opts.output, file.Name)
			if err := os.WriteFile(path, file.Data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printFile(path)
		}
	}
	printDetail("%d pieces · %d pages", result.Stats.Pieces, result.Stats.Pages)
	return nil
}

// applyOverrides copies changed generate flags over the definition's
// options. Unset flags leave the definition values alone.
func applyOverrides(cmd *cobra.Command, opts *generateOpts, kitOpts *kit.Options) {
	if cmd.Flags().Changed("paper") {
		kitOpts.Paper = opts.paper
	}
	if cmd.Flags().Changed("scale") {
		kitOpts.Scale = opts.scale
	}
	if cmd.Flags().Changed("margin") {
		kitOpts.Margin = opts.margin
	}
	if cmd.Flags().Changed("format") {
		kitOpts.Formats = strings.Split(opts.formats, ",")
	}
	if cmd.Flags().Changed("line-width") {
		kitOpts.LineWidth = opts.lineWidth
	}
	if cmd.Flags().Changed("dpi") {
		kitOpts.DPI = opts.dpi
	}
}
