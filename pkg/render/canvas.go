package render

// Point is a position in page coordinates: top-left origin, y down,
// printers' points.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Style controls how a polyline is drawn.
type Style struct {
	// LineWidth is the stroke width in points.
	LineWidth float64 `json:"line_width"`

	// Stroke is the outline color.
	Stroke RGB `json:"stroke"`

	// Fill, when non-nil, fills the shape with the given color.
	// Only closed shapes are filled.
	Fill *RGB `json:"fill,omitempty"`
}

// DefaultStyle is a thin black outline with no fill, the style of a
// cutting pattern.
var DefaultStyle = Style{LineWidth: 0.75, Stroke: RGB{}}

// File is one encoded output document.
type File struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// Artifact is the full output of a canvas: a format tag and one or more
// files. Paged formats (PDF) produce a single file; page-per-file formats
// (SVG, PNG) produce one file per page.
type Artifact struct {
	Format string `json:"format"`
	Files  []File `json:"files"`
}

// Canvas is the rendering collaborator of the kit pipeline. The pipeline
// queries the page size once, emits drawing calls for the first page,
// calls AdvancePage between pages, and finally calls Output exactly once.
//
// Implementations are single-use: a Canvas cannot be reset or drawn on
// after Output.
type Canvas interface {
	// Size returns the page dimensions in points.
	Size() (width, height float64)

	// Polygon draws a closed polyline through the given points.
	Polygon(pts []Point, style Style)

	// Polyline draws an open path through the given points.
	Polyline(pts []Point, style Style)

	// AdvancePage finishes the current page and starts the next one.
	AdvancePage()

	// Output finalizes the document and returns the encoded artifact.
	Output() (Artifact, error)
}
