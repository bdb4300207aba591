package kit

// Page is an ordered, append-only list of the pieces placed on one
// output page. Pages are created by the pack phase, one per packing
// round.
type Page struct {
	number int
	pieces []*Piece
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.number }

// Pieces returns the placed pieces in placement order.
func (p *Page) Pieces() []*Piece { return p.pieces }
