package kit

// Layout is a JSON-serializable record of where every piece landed. The
// coordinates are page-local printers' points with the origin at the
// lower-left corner of the drawable area, matching the packer's frame.
type Layout struct {
	Name  string       `json:"name"`
	Paper string       `json:"paper"`
	Scale string       `json:"scale"`
	Pages []LayoutPage `json:"pages"`
}

// LayoutPage lists the pieces placed on one page.
type LayoutPage struct {
	Number int           `json:"number"`
	Pieces []LayoutPiece `json:"pieces"`
}

// LayoutPiece records one placed piece.
type LayoutPiece struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (k *Kit) layout() Layout {
	l := Layout{
		Name:  k.opts.Name,
		Paper: k.opts.Paper,
		Scale: k.opts.Scale,
		Pages: make([]LayoutPage, 0, len(k.pages)),
	}
	for _, page := range k.pages {
		lp := LayoutPage{Number: page.Number()}
		for _, piece := range page.Pieces() {
			x, y := piece.Position()
			lp.Pieces = append(lp.Pieces, LayoutPiece{
				ID:     piece.ID().String(),
				Name:   piece.Component().Name(),
				X:      x,
				Y:      y,
				Width:  piece.Width(),
				Height: piece.Height(),
			})
		}
		l.Pages = append(l.Pages, lp)
	}
	return l
}
