package kit

import (
	"github.com/kitplan/kitplan/pkg/errors"
	"github.com/kitplan/kitplan/pkg/geom"
	"github.com/kitplan/kitplan/pkg/measure"
)

// Panel is a rectangular part with optional rectangular openings, the
// workhorse component for walls, floors and roof pieces. Dimensions are
// human-readable measurement specs ("2.4 m", "8 ft", "3 ft 6 in"),
// parsed during Build.
type Panel struct {
	Base
	width, height string
}

// NewPanel creates a rectangular panel with the given full-size
// dimensions.
func NewPanel(name, width, height string) *Panel {
	return &Panel{Base: NewBase(name), width: width, height: height}
}

// AddOpening punches a rectangular cutout into the panel. The offset
// places the opening's lower-left corner relative to the panel's.
func (p *Panel) AddOpening(name, width, height, offsetX, offsetY string) error {
	dx, err := measure.Parse(measure.World, offsetX)
	if err != nil {
		return err
	}
	dy, err := measure.Parse(measure.World, offsetY)
	if err != nil {
		return err
	}
	offset, err := geom.NewVector(dx, dy)
	if err != nil {
		return err
	}
	opening := NewPanel(name, width, height)
	if err := opening.Build(); err != nil {
		return err
	}
	return p.AddChild(opening, offset)
}

// Build implements [Component].
func (p *Panel) Build() error {
	width, err := measure.Parse(measure.World, p.width)
	if err != nil {
		return errors.Wrap(errors.ErrCodeParse, err, "width of %q", p.Name())
	}
	height, err := measure.Parse(measure.World, p.height)
	if err != nil {
		return errors.Wrap(errors.ErrCodeParse, err, "height of %q", p.Name())
	}
	size, err := geom.NewSize(width, height)
	if err != nil {
		return err
	}
	return p.SetExtent(size)
}

// Render implements [Component].
func (p *Panel) Render(pen *Pen) error {
	ext, err := p.Extent()
	if err != nil {
		return err
	}
	return RectOutline(pen, ext.X().Meters(), ext.Y().Meters())
}

// RectOutline draws a w by h rectangle with its lower-left corner at
// the local origin. Shared by rectangular components.
func RectOutline(pen *Pen, w, h float64) error {
	pts := make([]geom.Pair, 0, 4)
	for _, xy := range [][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}} {
		p, err := geom.NewPoint(
			measure.FromMeters(measure.World, xy[0]),
			measure.FromMeters(measure.World, xy[1]))
		if err != nil {
			return err
		}
		pts = append(pts, p)
	}
	return pen.Polygon(pts...)
}
