package render

import (
	"encoding/json"
	"fmt"
)

// Shape is one recorded drawing call.
type Shape struct {
	Points []Point `json:"points"`
	Style  Style   `json:"style"`
	Closed bool    `json:"closed"`
}

// RecordedPage holds the drawing calls of one page in call order.
type RecordedPage struct {
	Shapes []Shape `json:"shapes"`
}

// Recorder is an in-memory canvas. It backs the JSON export format and
// lets tests assert on exact drawing calls without decoding PDF or PNG
// output.
type Recorder struct {
	paper Paper
	base  string
	pages []RecordedPage
	done  bool
}

// NewRecorder creates a recording canvas with the given page format.
func NewRecorder(paper Paper, base string) *Recorder {
	return &Recorder{paper: paper, base: base, pages: []RecordedPage{{}}}
}

// Size implements [Canvas].
func (c *Recorder) Size() (float64, float64) {
	return c.paper.Width, c.paper.Height
}

// Polygon implements [Canvas].
func (c *Recorder) Polygon(pts []Point, style Style) {
	c.record(pts, style, true)
}

// Polyline implements [Canvas].
func (c *Recorder) Polyline(pts []Point, style Style) {
	c.record(pts, style, false)
}

func (c *Recorder) record(pts []Point, style Style, closed bool) {
	if c.done {
		return
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	page := &c.pages[len(c.pages)-1]
	page.Shapes = append(page.Shapes, Shape{Points: cp, Style: style, Closed: closed})
}

// AdvancePage implements [Canvas].
func (c *Recorder) AdvancePage() {
	if c.done {
		return
	}
	c.pages = append(c.pages, RecordedPage{})
}

// Pages returns the recorded pages. Valid at any time, including before
// Output, which makes the Recorder convenient in tests.
func (c *Recorder) Pages() []RecordedPage {
	return c.pages
}

// Output implements [Canvas]. The artifact is a single JSON file holding
// the page size and every recorded drawing call.
func (c *Recorder) Output() (Artifact, error) {
	if c.done {
		return Artifact{}, fmt.Errorf("recorder already finalized")
	}
	c.done = true

	doc := struct {
		Paper  string         `json:"paper"`
		Width  float64        `json:"width"`
		Height float64        `json:"height"`
		Pages  []RecordedPage `json:"pages"`
	}{
		Paper:  c.paper.Name,
		Width:  c.paper.Width,
		Height: c.paper.Height,
		Pages:  c.pages,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("encode layout json: %w", err)
	}
	return Artifact{
		Format: "json",
		Files:  []File{{Name: c.base + ".json", Data: data}},
	}, nil
}
