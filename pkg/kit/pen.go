package kit

import (
	"github.com/kitplan/kitplan/pkg/errors"
	"github.com/kitplan/kitplan/pkg/geom"
	"github.com/kitplan/kitplan/pkg/measure"
	"github.com/kitplan/kitplan/pkg/render"
)

// Pen is the drawing handle passed to [Component.Render]. It accepts
// world-frame points in the component's local coordinate system, runs
// them through the transform composed by the pipeline, and forwards the
// projected page-space geometry to the canvas.
type Pen struct {
	canvas render.Canvas
	xform  geom.Transform
	style  render.Style
}

func newPen(canvas render.Canvas, xform geom.Transform, style render.Style) *Pen {
	return &Pen{canvas: canvas, xform: xform, style: style}
}

// Style returns the pen's current style.
func (p *Pen) Style() render.Style { return p.style }

// WithStyle returns a pen drawing with a different style through the
// same transform. The receiver is unchanged.
func (p *Pen) WithStyle(style render.Style) *Pen {
	return &Pen{canvas: p.canvas, xform: p.xform, style: style}
}

// Polygon draws a closed outline through the given local points.
func (p *Pen) Polygon(points ...geom.Pair) error {
	pts, err := p.project(points)
	if err != nil {
		return err
	}
	p.canvas.Polygon(pts, p.style)
	return nil
}

// Polyline draws an open path through the given local points.
func (p *Pen) Polyline(points ...geom.Pair) error {
	pts, err := p.project(points)
	if err != nil {
		return err
	}
	p.canvas.Polyline(pts, p.style)
	return nil
}

// project maps local world-frame points into page coordinates.
func (p *Pen) project(points []geom.Pair) ([]render.Point, error) {
	if len(points) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"a path needs at least 2 points, got %d", len(points))
	}
	out := make([]render.Point, len(points))
	for i, pt := range points {
		if pt.Kind() != geom.Point {
			return nil, errors.New(errors.ErrCodeKindMismatch,
				"path element %d is a %s, want a point", i, pt.Kind())
		}
		if pt.Frame() != measure.World {
			return nil, errors.New(errors.ErrCodeFrameMismatch,
				"path element %d is %s-frame, want world", i, pt.Frame())
		}
		x, y := p.xform.ApplyXY(pt.X().Meters(), pt.Y().Meters())
		out[i] = render.Point{X: x, Y: y}
	}
	return out, nil
}
