package geom

import (
	"github.com/kitplan/kitplan/pkg/errors"
	"github.com/kitplan/kitplan/pkg/measure"
)

// Transform is an immutable 2-D affine map in homogeneous coordinates.
// Every transform constructed by this package keeps [0, 0, 1] as its last
// row; matrices supplied via NewTransform are only shape-checked, matching
// the permissive contract of the underlying matrix algebra.
type Transform struct {
	m [3][3]float64
}

// NewTransform constructs a Transform from explicit rows.
// It fails unless exactly three rows of three entries are given.
func NewTransform(rows [][]float64) (Transform, error) {
	if len(rows) != 3 {
		return Transform{}, errors.New(errors.ErrCodeInvalidMatrix,
			"transform needs 3 rows, got %d", len(rows))
	}
	var t Transform
	for i, row := range rows {
		if len(row) != 3 {
			return Transform{}, errors.New(errors.ErrCodeInvalidMatrix,
				"transform row %d needs 3 entries, got %d", i, len(row))
		}
		copy(t.m[i][:], row)
	}
	return t, nil
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Resize returns a uniform scale about the origin.
func Resize(k float64) Transform {
	return Transform{m: [3][3]float64{{k, 0, 0}, {0, k, 0}, {0, 0, 1}}}
}

// Translate returns a translation by the given Measurements.
func Translate(dx, dy measure.Measurement) Transform {
	return TranslateXY(dx.Meters(), dy.Meters())
}

// TranslateXY returns a translation by bare coordinates. The pipeline uses
// this form for page-space shifts, where values are already in output units.
func TranslateXY(dx, dy float64) Transform {
	return Transform{m: [3][3]float64{{1, 0, dx}, {0, 1, dy}, {0, 0, 1}}}
}

// Rotate returns a counterclockwise rotation about the origin.
// Only quarter turns (90, 180, 270 degrees) are supported.
func Rotate(degrees int) (Transform, error) {
	switch degrees {
	case 90:
		return Transform{m: [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}}, nil
	case 180:
		return Transform{m: [3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}}, nil
	case 270:
		return Transform{m: [3][3]float64{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}}, nil
	default:
		return Transform{}, errors.New(errors.ErrCodeInvalidAngle,
			"rotation must be 90, 180 or 270 degrees, got %d", degrees)
	}
}

// ReflectAroundXAxis returns the reflection that flips the sign of y.
func ReflectAroundXAxis() Transform {
	return Transform{m: [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}}
}

// Compose returns the transform that applies o first and then t,
// i.e. the matrix product t × o.
func (t Transform) Compose(o Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += t.m[i][k] * o.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

// Apply maps a point through the transform. The operation is frame-agnostic
// at the matrix level; by pipeline convention the result is tagged with the
// Printed frame, since transforms are only ever applied on the way to the
// page.
func (t Transform) Apply(p Pair) (Pair, error) {
	if p.Kind() != Point {
		return Pair{}, errors.New(errors.ErrCodeKindMismatch,
			"transforms apply to points, got %s", p.Kind())
	}
	x, y := t.ApplyXY(p.X().Meters(), p.Y().Meters())
	return Pair{
		x:    measure.FromMeters(measure.Printed, x),
		y:    measure.FromMeters(measure.Printed, y),
		kind: Point,
	}, nil
}

// ApplyXY maps bare coordinates through the transform by computing
// matrix · [x, y, 1]ᵗ.
func (t Transform) ApplyXY(x, y float64) (float64, float64) {
	ox := t.m[0][0]*x + t.m[0][1]*y + t.m[0][2]
	oy := t.m[1][0]*x + t.m[1][1]*y + t.m[1][2]
	return ox, oy
}

// Matrix returns a copy of the underlying 3×3 matrix.
func (t Transform) Matrix() [3][3]float64 {
	return t.m
}
