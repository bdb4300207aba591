package kit

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/kitplan/kitplan/pkg/measure"
	"github.com/kitplan/kitplan/pkg/pack"
	"github.com/kitplan/kitplan/pkg/render"
)

// Default values applied by ValidateAndSetDefaults. These are the single
// source of truth for CLI and HTTP surfaces.
const (
	// DefaultPaper is the default page format.
	DefaultPaper = "A4"

	// DefaultScale is the default model scale.
	DefaultScale = "1:24"

	// DefaultMargin is the default page margin in points.
	DefaultMargin = 24.0

	// DefaultLineWidth is the default cut-line stroke width in points.
	DefaultLineWidth = 0.75
)

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// Options configures a kit run. The TOML tags match the kit-definition
// file read by the CLI.
type Options struct {
	// Name is the output base name, used in artifact file names.
	Name string `toml:"name"`

	// Paper is the page format name (see render.PaperNames).
	Paper string `toml:"paper"`

	// Scale is a named model scale or a custom "N:D" ratio.
	Scale string `toml:"scale"`

	// Margin is the page margin in points.
	Margin float64 `toml:"margin"`

	// Formats lists the output formats to render.
	Formats []string `toml:"formats"`

	// LineWidth is the cut-line stroke width in points.
	LineWidth float64 `toml:"line_width"`

	// DPI is the raster resolution for PNG output.
	DPI float64 `toml:"dpi"`

	// Runtime options (not read from files)
	Logger *log.Logger `toml:"-"`
	Packer pack.Packer `toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `toml:"-"`
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent: calling it repeatedly has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Name == "" {
		o.Name = "kit"
	}
	if o.Paper == "" {
		o.Paper = DefaultPaper
	}
	if _, err := render.PaperSize(o.Paper); err != nil {
		return err
	}
	if o.Scale == "" {
		o.Scale = DefaultScale
	}
	if _, err := measure.LookupScale(o.Scale); err != nil {
		return err
	}
	if o.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %g", o.Margin)
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPDF}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return fmt.Errorf("invalid format: %q (must be one of: pdf, svg, png, json)", f)
		}
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.DPI <= 0 {
		o.DPI = render.DefaultDPI
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Packer == nil {
		o.Packer = pack.NewShelfPacker()
	}

	o.validated = true
	return nil
}
