// Package pack implements 2-D rectangle packing for page layout.
//
// The packing contract is deliberately dimensionless: bins and boxes are
// described by bare numbers, and each box carries an opaque datum so the
// caller can map placements back to its own records. Package kit uses this
// to place kit pieces onto pages without leaking the Measurement type
// system into the packing algorithm.
//
// A single [Packer] call packs one bin. Callers that need overflow
// semantics (more pages until everything is placed) loop over
// [Result.Unpositioned] themselves.
package pack

import "sort"

// Box is a rectangle waiting to be placed.
type Box struct {
	Width  float64
	Height float64
	Area   float64

	// Datum is an opaque payload carried through the packer untouched.
	Datum any
}

// Placed is a Box with its position in the bin. X and Y give the
// lower-left corner in first-quadrant bin coordinates.
type Placed struct {
	Box
	X, Y float64
}

// Result is the outcome of packing one bin.
type Result struct {
	// Positioned holds the boxes that fit, with their placements.
	Positioned []Placed

	// Unpositioned holds the boxes that did not fit in this bin.
	Unpositioned []Box
}

// Packer places boxes into a single bin of the given size. The less
// function orders the candidates before placement; a nil less keeps the
// input order. Implementations must be deterministic for a fixed ordering.
type Packer interface {
	PackBin(binWidth, binHeight float64, less func(a, b Box) bool, boxes []Box) Result
}

// ByAreaDesc orders boxes largest-area first. Combined with a first-fit
// placement strategy this gives the classic best-fit-decreasing heuristic:
// not optimal, but simple and deterministic.
func ByAreaDesc(a, b Box) bool {
	return a.Area > b.Area
}

// sortBoxes returns a copy of boxes ordered by less. The sort is stable so
// equal-area boxes keep their registration order, which keeps page
// assignment reproducible.
func sortBoxes(boxes []Box, less func(a, b Box) bool) []Box {
	out := make([]Box, len(boxes))
	copy(out, boxes)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}
