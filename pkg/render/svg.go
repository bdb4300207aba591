package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"
)

// SVGCanvas renders each page as a standalone SVG file.
type SVGCanvas struct {
	paper Paper
	base  string
	buf   *bytes.Buffer
	svg   *svg.SVG
	files []File
	done  bool
}

// NewSVGCanvas creates an SVG canvas with the given page format. Output
// files are named base + "-pageNN.svg".
func NewSVGCanvas(paper Paper, base string) *SVGCanvas {
	c := &SVGCanvas{paper: paper, base: base}
	c.startPage()
	return c
}

func (c *SVGCanvas) startPage() {
	c.buf = &bytes.Buffer{}
	c.svg = svg.New(c.buf)
	c.svg.Start(c.paper.Width, c.paper.Height)
}

func (c *SVGCanvas) finishPage() {
	c.svg.End()
	name := fmt.Sprintf("%s-page%02d.svg", c.base, len(c.files)+1)
	c.files = append(c.files, File{Name: name, Data: c.buf.Bytes()})
}

// Size implements [Canvas].
func (c *SVGCanvas) Size() (float64, float64) {
	return c.paper.Width, c.paper.Height
}

// Polygon implements [Canvas].
func (c *SVGCanvas) Polygon(pts []Point, style Style) {
	if c.done || len(pts) < 2 {
		return
	}
	xs, ys := split(pts)
	c.svg.Polygon(xs, ys, svgStyle(style, true))
}

// Polyline implements [Canvas].
func (c *SVGCanvas) Polyline(pts []Point, style Style) {
	if c.done || len(pts) < 2 {
		return
	}
	xs, ys := split(pts)
	c.svg.Polyline(xs, ys, svgStyle(style, false))
}

// AdvancePage implements [Canvas].
func (c *SVGCanvas) AdvancePage() {
	if c.done {
		return
	}
	c.finishPage()
	c.startPage()
}

// Output implements [Canvas].
func (c *SVGCanvas) Output() (Artifact, error) {
	if c.done {
		return Artifact{}, fmt.Errorf("svg canvas already finalized")
	}
	c.done = true
	c.finishPage()
	return Artifact{Format: "svg", Files: c.files}, nil
}

func split(pts []Point) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func svgStyle(s Style, closed bool) string {
	fill := "none"
	if closed && s.Fill != nil {
		fill = fmt.Sprintf("rgb(%d,%d,%d)", s.Fill.R, s.Fill.G, s.Fill.B)
	}
	return fmt.Sprintf("fill:%s;stroke:rgb(%d,%d,%d);stroke-width:%g",
		fill, s.Stroke.R, s.Stroke.G, s.Stroke.B, s.LineWidth)
}
