package kit

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/kitplan/kitplan/pkg/errors"
	"github.com/kitplan/kitplan/pkg/geom"
	"github.com/kitplan/kitplan/pkg/measure"
	"github.com/kitplan/kitplan/pkg/observability"
	"github.com/kitplan/kitplan/pkg/pack"
	"github.com/kitplan/kitplan/pkg/render"
)

// pointsPerMeter converts printed meters to printers' points.
const pointsPerMeter = 72 / 0.0254

// state tracks the pipeline phase a Kit has reached.
type state int

const (
	stateNew state = iota
	stateBuilt
	statePacked
	stateRendered
)

// Kit orchestrates a full build → pack → render run over a set of
// top-level components. A Kit is single-use: register components with
// Add, call Generate once, then read the result.
type Kit struct {
	opts   Options
	paper  render.Paper
	scale  measure.Scale
	logger *log.Logger
	packer pack.Packer

	components []Component
	pieces     []*Piece
	pages      []*Page
	state      state
}

// Result contains the outputs of a kit run.
type Result struct {
	// Layout describes every placed piece per page.
	Layout Layout

	// Artifacts holds the rendered documents, one per requested format.
	Artifacts []render.Artifact

	// Stats contains timing information per phase.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Pieces     int
	Pages      int
	BuildTime  time.Duration
	PackTime   time.Duration
	RenderTime time.Duration
}

// New creates a Kit with the given options.
func New(opts Options) (*Kit, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid kit options")
	}
	paper, err := render.PaperSize(opts.Paper)
	if err != nil {
		return nil, err
	}
	scale, err := measure.LookupScale(opts.Scale)
	if err != nil {
		return nil, err
	}
	return &Kit{
		opts:   opts,
		paper:  paper,
		scale:  scale,
		logger: opts.Logger,
		packer: opts.Packer,
	}, nil
}

// Add registers a top-level component as an independently placeable
// piece. Components must be added before Generate runs.
func (k *Kit) Add(c Component) error {
	if k.state != stateNew {
		return errors.New(errors.ErrCodeInternal, "cannot add components after Generate")
	}
	k.components = append(k.components, c)
	return nil
}

// Scale returns the active model scale.
func (k *Kit) Scale() measure.Scale { return k.scale }

// Paper returns the active page format.
func (k *Kit) Paper() render.Paper { return k.paper }

// Pieces returns the registered pieces. Empty before Generate.
func (k *Kit) Pieces() []*Piece { return k.pieces }

// Pages returns the packed pages. Empty before Generate.
func (k *Kit) Pages() []*Page { return k.pages }

// Generate runs the full pipeline and returns the rendered artifacts.
// The three phases run strictly sequentially; the first error aborts the
// run and no partial page state is guaranteed afterwards.
func (k *Kit) Generate() (*Result, error) {
	if k.state != stateNew {
		return nil, errors.New(errors.ErrCodeInternal, "kit already generated")
	}

	result := &Result{}

	hooks := observability.Generation()

	buildStart := time.Now()
	hooks.OnBuildStart(k.opts.Name)
	err := k.build()
	hooks.OnBuildComplete(k.opts.Name, len(k.pieces), time.Since(buildStart), err)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Pieces = len(k.pieces)
	k.logger.Info("built pieces", "count", len(k.pieces), "duration", result.Stats.BuildTime)

	packStart := time.Now()
	hooks.OnPackStart(k.opts.Name, len(k.pieces))
	err = k.packPages()
	hooks.OnPackComplete(k.opts.Name, len(k.pages), time.Since(packStart), err)
	if err != nil {
		return nil, err
	}
	result.Stats.PackTime = time.Since(packStart)
	result.Stats.Pages = len(k.pages)
	k.logger.Info("packed pages", "pages", len(k.pages), "duration", result.Stats.PackTime)

	renderStart := time.Now()
	hooks.OnRenderStart(k.opts.Name, k.opts.Formats)
	artifacts, err := k.renderAll()
	hooks.OnRenderComplete(k.opts.Name, k.opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	k.logger.Info("rendered output", "formats", k.opts.Formats, "duration", result.Stats.RenderTime)

	result.Layout = k.layout()
	return result, nil
}

// build runs Build on every registered component and wraps each one in a
// Piece carrying its printed dimensions.
func (k *Kit) build() error {
	factor := k.scale.Ratio * pointsPerMeter
	for _, c := range k.components {
		if err := c.Build(); err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return errors.Wrap(code, err, "building %q", c.Name())
		}
		ext, err := c.Extent()
		if err != nil {
			return err
		}
		w := ext.X().Meters() * factor
		h := ext.Y().Meters() * factor
		if w <= 0 || h <= 0 {
			return errors.New(errors.ErrCodeInvalidInput,
				"component %q has a degenerate extent %.2f x %.2f pt", c.Name(), w, h)
		}
		p := newPiece(c, w, h)
		k.pieces = append(k.pieces, p)
		k.logger.Debug("built piece",
			"id", p.ID(), "name", c.Name(),
			"width_pt", w, "height_pt", h)
	}
	k.state = stateBuilt
	return nil
}

// packPages places every piece, opening additional pages for overflow
// until nothing remains. A round that places nothing means some piece
// cannot fit on an empty page at all, which is unrecoverable.
func (k *Kit) packPages() error {
	availW := k.paper.Width - 2*k.opts.Margin
	availH := k.paper.Height - 2*k.opts.Margin
	if availW <= 0 || availH <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"margin %g pt leaves no drawable area on %s", k.opts.Margin, k.paper.Name)
	}

	boxes := make([]pack.Box, len(k.pieces))
	for i, p := range k.pieces {
		boxes[i] = pack.Box{Width: p.Width(), Height: p.Height(), Area: p.Area(), Datum: p}
	}

	remaining := boxes
	for len(remaining) > 0 {
		res := k.packer.PackBin(availW, availH, pack.ByAreaDesc, remaining)
		if len(res.Positioned) == 0 {
			p := remaining[0].Datum.(*Piece)
			return errors.New(errors.ErrCodePieceTooLarge,
				"piece %q (%.0f x %.0f pt) cannot fit on an empty %s page (%.0f x %.0f pt drawable)",
				p.Component().Name(), p.Width(), p.Height(), k.paper.Name, availW, availH)
		}

		page := &Page{number: len(k.pages) + 1}
		for _, placed := range res.Positioned {
			piece := placed.Datum.(*Piece)
			piece.place(page.number, placed.X, placed.Y)
			page.pieces = append(page.pieces, piece)
			k.logger.Debug("placed piece",
				"id", piece.ID(), "name", piece.Component().Name(),
				"page", page.number, "x", placed.X, "y", placed.Y)
		}
		k.pages = append(k.pages, page)
		remaining = res.Unpositioned
	}

	k.state = statePacked
	return nil
}

// renderAll walks the packed pages once per requested format.
func (k *Kit) renderAll() ([]render.Artifact, error) {
	artifacts := make([]render.Artifact, 0, len(k.opts.Formats))
	for _, format := range k.opts.Formats {
		canvas, err := k.newCanvas(format)
		if err != nil {
			return nil, err
		}
		if err := k.renderCanvas(canvas); err != nil {
			return nil, err
		}
		art, err := canvas.Output()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "finalizing %s output", format)
		}
		artifacts = append(artifacts, art)
	}
	k.state = stateRendered
	return artifacts, nil
}

func (k *Kit) newCanvas(format string) (render.Canvas, error) {
	switch format {
	case FormatPDF:
		return render.NewPDFCanvas(k.paper, k.opts.Name), nil
	case FormatSVG:
		return render.NewSVGCanvas(k.paper, k.opts.Name), nil
	case FormatPNG:
		return render.NewPNGCanvas(k.paper, k.opts.Name, k.opts.DPI), nil
	case FormatJSON:
		return render.NewRecorder(k.paper, k.opts.Name), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid format %q", format)
	}
}

// renderCanvas draws every page onto one canvas. The transform handed to
// each piece composes, right to left: the master world-to-print scale,
// the piece's page-local shift, and the flip from first-quadrant page
// coordinates to the canvas's top-left y-down convention.
func (k *Kit) renderCanvas(canvas render.Canvas) error {
	_, pageH := canvas.Size()
	flip := geom.TranslateXY(0, pageH).Compose(geom.ReflectAroundXAxis())
	worldToPrint := geom.Resize(k.scale.Ratio * pointsPerMeter)
	style := render.Style{LineWidth: k.opts.LineWidth, Stroke: render.RGB{}}

	for i, page := range k.pages {
		if i > 0 {
			canvas.AdvancePage()
		}
		for _, piece := range page.Pieces() {
			x, y := piece.Position()
			shift := geom.TranslateXY(k.opts.Margin+x, k.opts.Margin+y)
			xform := flip.Compose(shift).Compose(worldToPrint)
			if err := k.renderComponent(piece.Component(), canvas, xform, style); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderComponent draws one component and recurses pre-order into its
// children, extending the transform by each child's stored offset.
func (k *Kit) renderComponent(c Component, canvas render.Canvas, xform geom.Transform, style render.Style) error {
	pen := newPen(canvas, xform, style)
	if err := c.Render(pen); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "rendering %q", c.Name())
	}
	for _, child := range c.Children() {
		childXform := xform.Compose(geom.Translate(child.Offset.X(), child.Offset.Y()))
		if err := k.renderComponent(child.Component, canvas, childXform, style); err != nil {
			return err
		}
	}
	return nil
}
