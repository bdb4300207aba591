package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFCanvas renders pages into a single multi-page PDF document.
type PDFCanvas struct {
	paper Paper
	base  string
	doc   *fpdf.Fpdf
	done  bool
}

// NewPDFCanvas creates a PDF canvas with the given page format. The base
// name is used for the output file name (base + ".pdf").
func NewPDFCanvas(paper Paper, base string) *PDFCanvas {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &PDFCanvas{paper: paper, base: base, doc: doc}
}

// Size implements [Canvas].
func (c *PDFCanvas) Size() (float64, float64) {
	return c.paper.Width, c.paper.Height
}

// Polygon implements [Canvas].
func (c *PDFCanvas) Polygon(pts []Point, style Style) {
	c.path(pts, style, true)
}

// Polyline implements [Canvas].
func (c *PDFCanvas) Polyline(pts []Point, style Style) {
	c.path(pts, style, false)
}

func (c *PDFCanvas) path(pts []Point, style Style, closed bool) {
	if c.done || len(pts) < 2 {
		return
	}
	c.doc.SetLineWidth(style.LineWidth)
	c.doc.SetDrawColor(int(style.Stroke.R), int(style.Stroke.G), int(style.Stroke.B))
	mode := "D"
	if closed && style.Fill != nil {
		c.doc.SetFillColor(int(style.Fill.R), int(style.Fill.G), int(style.Fill.B))
		mode = "FD"
	}
	c.doc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.doc.LineTo(p.X, p.Y)
	}
	if closed {
		c.doc.ClosePath()
	}
	c.doc.DrawPath(mode)
}

// AdvancePage implements [Canvas].
func (c *PDFCanvas) AdvancePage() {
	if c.done {
		return
	}
	c.doc.AddPage()
}

// Output implements [Canvas].
func (c *PDFCanvas) Output() (Artifact, error) {
	if c.done {
		return Artifact{}, fmt.Errorf("pdf canvas already finalized")
	}
	c.done = true
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return Artifact{}, fmt.Errorf("encode pdf: %w", err)
	}
	return Artifact{
		Format: "pdf",
		Files:  []File{{Name: c.base + ".pdf", Data: buf.Bytes()}},
	}, nil
}
