// Package render provides the drawing backends that turn final page-space
// geometry into persisted documents.
//
// # Overview
//
// The kit pipeline hands this package nothing but polylines in page
// coordinates: the origin at the top-left corner, y growing downward,
// units in printers' points (1/72 inch). Everything scale- or
// measurement-aware happens upstream; a [Canvas] only draws and encodes.
//
// Four canvases are provided:
//
//   - [NewPDFCanvas]: one multi-page PDF document (go-pdf/fpdf)
//   - [NewSVGCanvas]: one SVG file per page (ajstarks/svgo)
//   - [NewPNGCanvas]: one raster image per page (fogleman/gg)
//   - [NewRecorder]: an in-memory canvas for tests and JSON export
//
// # Usage
//
//	paper, _ := render.PaperSize("A4")
//	c := render.NewPDFCanvas(paper, "house")
//	c.Polygon(pts, render.DefaultStyle)
//	c.AdvancePage()
//	...
//	art, err := c.Output()
//	// art.Files holds the encoded document(s)
package render
