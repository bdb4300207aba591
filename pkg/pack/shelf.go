package pack

// ShelfPacker places boxes using the shelf heuristic: boxes are laid out
// left to right on horizontal shelves, and a new shelf is opened above the
// previous one when no existing shelf has room. A shelf's height is fixed
// by its first box, so tall-first orderings (see [ByAreaDesc]) waste the
// least vertical space.
type ShelfPacker struct{}

// NewShelfPacker returns a ShelfPacker.
func NewShelfPacker() *ShelfPacker {
	return &ShelfPacker{}
}

// shelf is one horizontal strip of the bin.
type shelf struct {
	y         float64 // bottom edge
	height    float64 // fixed by the first box placed
	usedWidth float64
}

// PackBin implements [Packer]. Boxes are ordered by less, then placed
// first-fit: each box goes onto the lowest shelf with enough remaining
// width and height, or onto a new shelf on top if the bin has vertical
// room left. Boxes that fit nowhere are returned unpositioned.
func (p *ShelfPacker) PackBin(binWidth, binHeight float64, less func(a, b Box) bool, boxes []Box) Result {
	var res Result
	var shelves []shelf
	nextY := 0.0

	for _, box := range sortBoxes(boxes, less) {
		placed := false

		for i := range shelves {
			s := &shelves[i]
			if box.Width <= binWidth-s.usedWidth && box.Height <= s.height {
				res.Positioned = append(res.Positioned, Placed{Box: box, X: s.usedWidth, Y: s.y})
				s.usedWidth += box.Width
				placed = true
				break
			}
		}

		if !placed && box.Width <= binWidth && box.Height <= binHeight-nextY {
			res.Positioned = append(res.Positioned, Placed{Box: box, X: 0, Y: nextY})
			shelves = append(shelves, shelf{y: nextY, height: box.Height, usedWidth: box.Width})
			nextY += box.Height
			placed = true
		}

		if !placed {
			res.Unpositioned = append(res.Unpositioned, box)
		}
	}

	return res
}
