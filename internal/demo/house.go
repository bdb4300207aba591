// Package demo provides a built-in example kit: a small gabled house
// with walls, window and door cutouts, gable ends and roof panels. It
// backs the --demo flag of the generate command and doubles as an
// end-to-end exercise of the component pipeline.
package demo

import (
	"github.com/kitplan/kitplan/pkg/geom"
	"github.com/kitplan/kitplan/pkg/kit"
	"github.com/kitplan/kitplan/pkg/measure"
)

// House dimensions, full size. The footprint is houseLength by
// houseWidth; gables rise from wallHeight to ridgeHeight on the
// short sides.
const (
	houseLength = "4 m"
	houseWidth  = "3 m"
	wallHeight  = "2.4 m"
	ridgeRise   = "1.2 m"

	doorWidth    = "80 cm"
	doorHeight   = "1.9 m"
	windowWidth  = "80 cm"
	windowHeight = "90 cm"
	sillHeight   = "1 m"

	roofOverhang = "10 cm"
)

// Components builds the demo house as a list of top-level pieces.
func Components() ([]kit.Component, error) {
	front := kit.NewPanel("wall-front", houseLength, wallHeight)
	if err := front.AddOpening("door", doorWidth, doorHeight, "60 cm", "0"); err != nil {
		return nil, err
	}
	if err := front.AddOpening("window", windowWidth, windowHeight, "2.6 m", sillHeight); err != nil {
		return nil, err
	}

	back := kit.NewPanel("wall-back", houseLength, wallHeight)
	if err := back.AddOpening("window-a", windowWidth, windowHeight, "60 cm", sillHeight); err != nil {
		return nil, err
	}
	if err := back.AddOpening("window-b", windowWidth, windowHeight, "2.6 m", sillHeight); err != nil {
		return nil, err
	}

	left, err := newGableEnd("gable-left")
	if err != nil {
		return nil, err
	}
	right, err := newGableEnd("gable-right")
	if err != nil {
		return nil, err
	}
	roofA, err := newRoofPanel("roof-left")
	if err != nil {
		return nil, err
	}
	roofB, err := newRoofPanel("roof-right")
	if err != nil {
		return nil, err
	}
	return []kit.Component{front, back, left, right, roofA, roofB}, nil
}

func worldLen(spec string) (measure.Measurement, error) {
	return measure.Parse(measure.World, spec)
}

func worldPoint(x, y float64) (geom.Pair, error) {
	return geom.NewPoint(
		measure.FromMeters(measure.World, x),
		measure.FromMeters(measure.World, y))
}

// ===== Gable ends =====

// gableEnd is a short-side wall: a rectangle capped by the triangular
// gable up to the ridge.
type gableEnd struct {
	kit.Base
}

func newGableEnd(name string) (*gableEnd, error) {
	g := &gableEnd{Base: kit.NewBase(name)}
	return g, g.Build()
}

func (g *gableEnd) Build() error {
	width, err := worldLen(houseWidth)
	if err != nil {
		return err
	}
	wall, err := worldLen(wallHeight)
	if err != nil {
		return err
	}
	rise, err := worldLen(ridgeRise)
	if err != nil {
		return err
	}
	total, err := wall.Plus(rise)
	if err != nil {
		return err
	}
	size, err := geom.NewSize(width, total)
	if err != nil {
		return err
	}
	return g.SetExtent(size)
}

func (g *gableEnd) Render(pen *kit.Pen) error {
	ext, err := g.Extent()
	if err != nil {
		return err
	}
	w := ext.X().Meters()
	peak := ext.Y().Meters()
	wall, err := worldLen(wallHeight)
	if err != nil {
		return err
	}
	h := wall.Meters()

	corners := [][2]float64{{0, 0}, {w, 0}, {w, h}, {w / 2, peak}, {0, h}}
	pts := make([]geom.Pair, 0, len(corners))
	for _, xy := range corners {
		p, err := worldPoint(xy[0], xy[1])
		if err != nil {
			return err
		}
		pts = append(pts, p)
	}
	if err := pen.Polygon(pts...); err != nil {
		return err
	}

	// Fold line at the eaves, drawn thin to distinguish it from cuts.
	thin := pen.Style()
	thin.LineWidth = thin.LineWidth / 2
	a, err := worldPoint(0, h)
	if err != nil {
		return err
	}
	b, err := worldPoint(w, h)
	if err != nil {
		return err
	}
	return pen.WithStyle(thin).Polyline(a, b)
}

// ===== Roof panels =====

// roofPanel is one of the two rectangular roof halves. Its depth is the
// slope length from eave to ridge plus the overhang; the slope follows
// from the half-width and the ridge rise.
type roofPanel struct {
	kit.Base
}

func newRoofPanel(name string) (*roofPanel, error) {
	r := &roofPanel{Base: kit.NewBase(name)}
	return r, r.Build()
}

// slopeLength computes the eave-to-ridge distance as the length of the
// (half-width, rise) run.
func slopeLength() (measure.Measurement, error) {
	width, err := worldLen(houseWidth)
	if err != nil {
		return measure.Measurement{}, err
	}
	half, err := width.DividedBy(2)
	if err != nil {
		return measure.Measurement{}, err
	}
	rise, err := worldLen(ridgeRise)
	if err != nil {
		return measure.Measurement{}, err
	}
	run, err := geom.NewVector(half, rise)
	if err != nil {
		return measure.Measurement{}, err
	}
	return run.Length(), nil
}

func (r *roofPanel) Build() error {
	length, err := worldLen(houseLength)
	if err != nil {
		return err
	}
	overhang, err := worldLen(roofOverhang)
	if err != nil {
		return err
	}
	slope, err := slopeLength()
	if err != nil {
		return err
	}

	// Overhang extends both ends of the ridge and the eave edge.
	width, err := length.Plus(overhang)
	if err != nil {
		return err
	}
	width, err = width.Plus(overhang)
	if err != nil {
		return err
	}
	depth, err := slope.Plus(overhang)
	if err != nil {
		return err
	}
	size, err := geom.NewSize(width, depth)
	if err != nil {
		return err
	}
	return r.SetExtent(size)
}

func (r *roofPanel) Render(pen *kit.Pen) error {
	ext, err := r.Extent()
	if err != nil {
		return err
	}
	return kit.RectOutline(pen, ext.X().Meters(), ext.Y().Meters())
}
