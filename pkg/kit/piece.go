package kit

import (
	"github.com/google/uuid"
)

// Piece binds a top-level component to the bare-number width, height and
// area the packer works with, decoupling the packing contract from the
// Measurement type system. A Piece is created during the build phase; the
// pack phase fills in its page and position exactly once, after which it
// no longer changes.
type Piece struct {
	id        uuid.UUID
	component Component

	// printed dimensions in points
	width, height float64

	page int // 1-based page number, 0 while unplaced
	x, y float64
}

func newPiece(c Component, width, height float64) *Piece {
	return &Piece{
		id:        uuid.New(),
		component: c,
		width:     width,
		height:    height,
	}
}

// ID returns the piece's identifier, used in logs and layout exports.
func (p *Piece) ID() uuid.UUID { return p.id }

// Component returns the wrapped top-level component.
func (p *Piece) Component() Component { return p.component }

// Width returns the printed width in points.
func (p *Piece) Width() float64 { return p.width }

// Height returns the printed height in points.
func (p *Piece) Height() float64 { return p.height }

// Area returns the printed area in square points.
func (p *Piece) Area() float64 { return p.width * p.height }

// Page returns the assigned 1-based page number, or 0 before packing.
func (p *Piece) Page() int { return p.page }

// Position returns the page-local lower-left corner in points, measured
// from the inside of the page margin.
func (p *Piece) Position() (x, y float64) { return p.x, p.y }

// place records the packing result. Called once by the pack phase.
func (p *Piece) place(page int, x, y float64) {
	p.page = page
	p.x = x
	p.y = y
}
