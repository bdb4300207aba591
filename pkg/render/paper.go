package render

import (
	"sort"

	"github.com/kitplan/kitplan/pkg/errors"
)

// Paper is a named page format with dimensions in points.
type Paper struct {
	Name   string
	Width  float64
	Height float64
}

// papers holds the recognized page formats. Dimensions follow the usual
// PDF conventions (1 point = 1/72 inch).
var papers = map[string]Paper{
	"A3":      {Name: "A3", Width: 841.890, Height: 1190.551},
	"A4":      {Name: "A4", Width: 595.276, Height: 841.890},
	"A5":      {Name: "A5", Width: 420.945, Height: 595.276},
	"Letter":  {Name: "Letter", Width: 612, Height: 792},
	"Legal":   {Name: "Legal", Width: 612, Height: 1008},
	"Tabloid": {Name: "Tabloid", Width: 792, Height: 1224},
}

// PaperSize looks up a page format by name.
func PaperSize(name string) (Paper, error) {
	if p, ok := papers[name]; ok {
		return p, nil
	}
	return Paper{}, errors.New(errors.ErrCodeInvalidInput, "unknown paper format %q", name)
}

// PaperNames returns the recognized format names in alphabetical order.
func PaperNames() []string {
	names := make([]string, 0, len(papers))
	for n := range papers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
