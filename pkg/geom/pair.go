package geom

import (
	"fmt"
	"math"

	"github.com/kitplan/kitplan/pkg/errors"
	"github.com/kitplan/kitplan/pkg/measure"
)

// Kind tags a Pair as a position, a displacement, or an extent.
type Kind int

const (
	// Point is an absolute position.
	Point Kind = iota

	// Vector is a displacement between positions.
	Vector

	// Size is a width/height extent.
	Size
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Vector:
		return "vector"
	case Size:
		return "size"
	default:
		return "unknown"
	}
}

// Pair is an immutable (x, y) couple of same-frame Measurements tagged
// with a Kind. The zero value is the World-frame origin point.
type Pair struct {
	x, y measure.Measurement
	kind Kind
}

// NewPair constructs a Pair from two Measurements, which must share a frame.
func NewPair(kind Kind, x, y measure.Measurement) (Pair, error) {
	if x.Frame() != y.Frame() {
		return Pair{}, errors.New(errors.ErrCodeFrameMismatch,
			"pair coordinates mix %s and %s frames", x.Frame(), y.Frame())
	}
	return Pair{x: x, y: y, kind: kind}, nil
}

// NewPoint constructs a point Pair.
func NewPoint(x, y measure.Measurement) (Pair, error) { return NewPair(Point, x, y) }

// NewVector constructs a vector Pair.
func NewVector(x, y measure.Measurement) (Pair, error) { return NewPair(Vector, x, y) }

// NewSize constructs a size Pair.
func NewSize(x, y measure.Measurement) (Pair, error) { return NewPair(Size, x, y) }

// PairFrom constructs a Pair from two loose measurement specs (see
// [measure.From] for accepted forms) in the given frame.
func PairFrom(kind Kind, frame measure.Frame, xSpec, ySpec any) (Pair, error) {
	x, err := measure.From(frame, xSpec)
	if err != nil {
		return Pair{}, err
	}
	y, err := measure.From(frame, ySpec)
	if err != nil {
		return Pair{}, err
	}
	return Pair{x: x, y: y, kind: kind}, nil
}

// X returns the x coordinate.
func (p Pair) X() measure.Measurement { return p.x }

// Y returns the y coordinate.
func (p Pair) Y() measure.Measurement { return p.y }

// Kind returns the pair's kind tag.
func (p Pair) Kind() Kind { return p.kind }

// Frame returns the reference frame both coordinates live in.
func (p Pair) Frame() measure.Frame { return p.x.Frame() }

// Plus returns p + o. The only valid kind combinations are
// point + vector (in either operand order, yielding a point) and
// vector + vector (yielding a vector).
func (p Pair) Plus(o Pair) (Pair, error) {
	var kind Kind
	switch {
	case p.kind == Point && o.kind == Vector, p.kind == Vector && o.kind == Point:
		kind = Point
	case p.kind == Vector && o.kind == Vector:
		kind = Vector
	default:
		return Pair{}, errors.New(errors.ErrCodeKindMismatch,
			"cannot add %s and %s", p.kind, o.kind)
	}
	x, err := p.x.Plus(o.x)
	if err != nil {
		return Pair{}, err
	}
	y, err := p.y.Plus(o.y)
	if err != nil {
		return Pair{}, err
	}
	return Pair{x: x, y: y, kind: kind}, nil
}

// Minus returns p - o. The valid kind combinations are
// point − point (vector), point − vector (point), and
// vector − vector (vector).
func (p Pair) Minus(o Pair) (Pair, error) {
	var kind Kind
	switch {
	case p.kind == Point && o.kind == Point:
		kind = Vector
	case p.kind == Point && o.kind == Vector:
		kind = Point
	case p.kind == Vector && o.kind == Vector:
		kind = Vector
	default:
		return Pair{}, errors.New(errors.ErrCodeKindMismatch,
			"cannot subtract %s from %s", o.kind, p.kind)
	}
	x, err := p.x.Minus(o.x)
	if err != nil {
		return Pair{}, err
	}
	y, err := p.y.Minus(o.y)
	if err != nil {
		return Pair{}, err
	}
	return Pair{x: x, y: y, kind: kind}, nil
}

// Times scales both coordinates by a bare number, preserving kind.
func (p Pair) Times(k float64) Pair {
	return Pair{x: p.x.Times(k), y: p.y.Times(k), kind: p.kind}
}

// DividedBy scales both coordinates by 1/k, preserving kind.
// Division by zero is an error.
func (p Pair) DividedBy(k float64) (Pair, error) {
	x, err := p.x.DividedBy(k)
	if err != nil {
		return Pair{}, err
	}
	y, err := p.y.DividedBy(k)
	if err != nil {
		return Pair{}, err
	}
	return Pair{x: x, y: y, kind: p.kind}, nil
}

// Length returns the Euclidean hypotenuse of the pair as a Measurement in
// the pair's frame. This is how a sloped edge length is derived from a
// horizontal run and a vertical rise.
func (p Pair) Length() measure.Measurement {
	return measure.FromMeters(p.Frame(), math.Hypot(p.x.Meters(), p.y.Meters()))
}

// String formats p for logs and error messages.
func (p Pair) String() string {
	return fmt.Sprintf("%s(%g, %g)m (%s)", p.kind, p.x.Meters(), p.y.Meters(), p.Frame())
}
