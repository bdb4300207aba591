package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
)

// DefaultDPI is the raster resolution used by NewPNGCanvas.
const DefaultDPI = 150

// PNGCanvas renders each page as a raster PNG image.
type PNGCanvas struct {
	paper Paper
	base  string
	scale float64 // pixels per point
	dc    *gg.Context
	files []File
	done  bool
	err   error // first encoding failure, reported by Output
}

// NewPNGCanvas creates a PNG canvas with the given page format, rastered
// at dpi dots per inch (0 selects [DefaultDPI]). Output files are named
// base + "-pageNN.png".
func NewPNGCanvas(paper Paper, base string, dpi float64) *PNGCanvas {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	c := &PNGCanvas{paper: paper, base: base, scale: dpi / 72}
	c.startPage()
	return c
}

func (c *PNGCanvas) startPage() {
	w := int(c.paper.Width*c.scale + 0.5)
	h := int(c.paper.Height*c.scale + 0.5)
	c.dc = gg.NewContext(w, h)
	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()
}

func (c *PNGCanvas) finishPage() {
	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		if c.err == nil {
			c.err = fmt.Errorf("encode png: %w", err)
		}
		return
	}
	name := fmt.Sprintf("%s-page%02d.png", c.base, len(c.files)+1)
	c.files = append(c.files, File{Name: name, Data: buf.Bytes()})
}

// Size implements [Canvas].
func (c *PNGCanvas) Size() (float64, float64) {
	return c.paper.Width, c.paper.Height
}

// Polygon implements [Canvas].
func (c *PNGCanvas) Polygon(pts []Point, style Style) {
	c.path(pts, style, true)
}

// Polyline implements [Canvas].
func (c *PNGCanvas) Polyline(pts []Point, style Style) {
	c.path(pts, style, false)
}

func (c *PNGCanvas) path(pts []Point, style Style, closed bool) {
	if c.done || len(pts) < 2 {
		return
	}
	c.dc.MoveTo(pts[0].X*c.scale, pts[0].Y*c.scale)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X*c.scale, p.Y*c.scale)
	}
	if closed {
		c.dc.ClosePath()
	}
	if closed && style.Fill != nil {
		c.dc.SetRGB255(int(style.Fill.R), int(style.Fill.G), int(style.Fill.B))
		c.dc.FillPreserve()
	}
	c.dc.SetRGB255(int(style.Stroke.R), int(style.Stroke.G), int(style.Stroke.B))
	c.dc.SetLineWidth(style.LineWidth * c.scale)
	c.dc.Stroke()
}

// AdvancePage implements [Canvas].
func (c *PNGCanvas) AdvancePage() {
	if c.done {
		return
	}
	// Encoding errors surface in Output.
	c.finishPage()
	c.startPage()
}

// Output implements [Canvas].
func (c *PNGCanvas) Output() (Artifact, error) {
	if c.done {
		return Artifact{}, fmt.Errorf("png canvas already finalized")
	}
	c.done = true
	c.finishPage()
	if c.err != nil {
		return Artifact{}, c.err
	}
	return Artifact{Format: "png", Files: c.files}, nil
}
