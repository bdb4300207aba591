package measure

import (
	"math"
	"testing"

	"github.com/kitplan/kitplan/pkg/errors"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func mustParse(t *testing.T, frame Frame, spec string) Measurement {
	t.Helper()
	m, err := Parse(frame, spec)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", spec, err)
	}
	return m
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want float64 // meters
	}{
		{name: "meters and centimeters", spec: "3 m 46 cm", want: 3.46},
		{name: "no whitespace", spec: "5m62cm", want: 5.62},
		{name: "feet and inches marks", spec: `4' 6"`, want: 1.3716},
		{name: "feet and inches tight", spec: `4'6"`, want: 1.3716},
		{name: "plain meters", spec: "4.56 m", want: 4.56},
		{name: "feet named", spec: "3 ft 6 in", want: 1.0668},
		{name: "single foot", spec: "1 ft", want: 0.3048},
		{name: "twelve inches", spec: "12 in", want: 0.3048},
		{name: "negative value", spec: "-2 m", want: -2},
		{name: "signed positive", spec: "+2 m", want: 2},
		{name: "bare decimal", spec: ".5 m", want: 0.5},
		{name: "millimeters", spec: "25 mm", want: 0.025},
		{name: "kilometers short", spec: "2 km", want: 2000},
		{name: "kilometers long", spec: "2 kilometers", want: 2000},
		{name: "centimetres british", spec: "46 centimetres", want: 0.46},
		{name: "long form singular", spec: "1 metre", want: 1},
		{name: "micrometers", spec: "7 µm", want: 7e-6},
		{name: "micro ascii alias", spec: "7 um", want: 7e-6},
		{name: "decameters", spec: "1 dam", want: 10},
		{name: "megameters capital", spec: "1 Mm", want: 1e6},
		{name: "printers point", spec: "72 pt", want: 0.0254},
		{name: "pica", spec: "6 pica", want: 0.0254},
		{name: "angstrom", spec: "1 angstrom", want: 1e-10},
		{name: "astronomical unit", spec: "1 au", want: 1.495978707e11},
		{name: "mile", spec: "1 mi", want: 1609.344},
		{name: "summing across systems", spec: "1 m 1 ft", want: 1.3048},
		{name: "zero literal", spec: "0", want: 0},
		{name: "zero literal padded", spec: "  0 ", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(World, tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !almostEqual(m.Meters(), tt.want, 1e-3) {
				t.Errorf("Parse(%q) = %v m, want %v m", tt.spec, m.Meters(), tt.want)
			}
			if m.Frame() != World {
				t.Errorf("Parse(%q) frame = %v, want World", tt.spec, m.Frame())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		code errors.Code
	}{
		{name: "dangling number", spec: "3 m 46", code: errors.ErrCodeParse},
		{name: "dangling unit", spec: "m", code: errors.ErrCodeParse},
		{name: "unit before number", spec: "m 3", code: errors.ErrCodeParse},
		{name: "unknown unit", spec: "3 florps", code: errors.ErrCodeUnknownUnit},
		{name: "unknown prefix", spec: "3 xm", code: errors.ErrCodeUnknownUnit},
		{name: "stray punctuation", spec: "3 m; 4 cm", code: errors.ErrCodeParse},
		{name: "empty string", spec: "", code: errors.ErrCodeParse},
		{name: "whitespace only", spec: "   ", code: errors.ErrCodeParse},
		{name: "bare nonzero number", spec: "42", code: errors.ErrCodeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(World, tt.spec)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.spec)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse(%q) error code = %v, want %v", tt.spec, errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestParseUnitEquivalence(t *testing.T) {
	// parse is left-inverse-consistent across unit systems
	pairs := []struct {
		a, b string
	}{
		{"1 ft", "12 in"},
		{"1 yd", "3 ft"},
		{"1 m", "100 cm"},
		{"1 in", "72 pt"},
		{"1 pica", "12 pt"},
		{"1 km", "1000 m"},
	}
	for _, p := range pairs {
		a := mustParse(t, World, p.a)
		b := mustParse(t, World, p.b)
		if !almostEqual(a.Meters(), b.Meters(), tol) {
			t.Errorf("%q = %v m, %q = %v m; want equal", p.a, a.Meters(), p.b, b.Meters())
		}
	}
}

func TestFrom(t *testing.T) {
	t.Run("measurement passthrough", func(t *testing.T) {
		orig := mustParse(t, World, "2 m")
		m, err := From(World, orig)
		if err != nil {
			t.Fatalf("From error: %v", err)
		}
		if m.Meters() != 2 {
			t.Errorf("Meters = %v, want 2", m.Meters())
		}
	})

	t.Run("measurement frame mismatch", func(t *testing.T) {
		orig := mustParse(t, Printed, "2 m")
		_, err := From(World, orig)
		if !errors.Is(err, errors.ErrCodeFrameMismatch) {
			t.Errorf("error = %v, want frame mismatch", err)
		}
	})

	t.Run("string", func(t *testing.T) {
		m, err := From(World, "3 ft")
		if err != nil {
			t.Fatalf("From error: %v", err)
		}
		if !almostEqual(m.Meters(), 0.9144, tol) {
			t.Errorf("Meters = %v, want 0.9144", m.Meters())
		}
	})

	t.Run("value unit pair", func(t *testing.T) {
		m, err := From(World, []any{4.56, "m"})
		if err != nil {
			t.Fatalf("From error: %v", err)
		}
		if !almostEqual(m.Meters(), 4.56, tol) {
			t.Errorf("Meters = %v, want 4.56", m.Meters())
		}
	})

	t.Run("int value in pair", func(t *testing.T) {
		m, err := From(World, []any{3, "cm"})
		if err != nil {
			t.Fatalf("From error: %v", err)
		}
		if !almostEqual(m.Meters(), 0.03, tol) {
			t.Errorf("Meters = %v, want 0.03", m.Meters())
		}
	})

	t.Run("bare zero", func(t *testing.T) {
		m, err := From(World, 0)
		if err != nil {
			t.Fatalf("From error: %v", err)
		}
		if m.Meters() != 0 {
			t.Errorf("Meters = %v, want 0", m.Meters())
		}
	})

	t.Run("bare nonzero rejected", func(t *testing.T) {
		_, err := From(World, 3.5)
		if !errors.Is(err, errors.ErrCodeInvalidOperand) {
			t.Errorf("error = %v, want invalid operand", err)
		}
	})

	t.Run("wrong arity pair", func(t *testing.T) {
		_, err := From(World, []any{1, "m", "extra"})
		if !errors.Is(err, errors.ErrCodeInvalidOperand) {
			t.Errorf("error = %v, want invalid operand", err)
		}
	})
}

func TestArithmetic(t *testing.T) {
	a := mustParse(t, World, "2 m")
	b := mustParse(t, World, "50 cm")

	sum, err := a.Plus(b)
	if err != nil {
		t.Fatalf("Plus error: %v", err)
	}
	if !almostEqual(sum.Meters(), 2.5, tol) {
		t.Errorf("Plus = %v, want 2.5", sum.Meters())
	}

	diff, err := a.Minus(b)
	if err != nil {
		t.Fatalf("Minus error: %v", err)
	}
	if !almostEqual(diff.Meters(), 1.5, tol) {
		t.Errorf("Minus = %v, want 1.5", diff.Meters())
	}

	// a.Plus(b).Minus(b) == a
	back, err := sum.Minus(b)
	if err != nil {
		t.Fatalf("Minus error: %v", err)
	}
	if eq, err := back.Equals(a); err != nil || !eq {
		t.Errorf("a+b-b = %v, want %v (err=%v)", back.Meters(), a.Meters(), err)
	}

	if got := a.Times(3).Meters(); !almostEqual(got, 6, tol) {
		t.Errorf("Times(3) = %v, want 6", got)
	}

	half, err := a.DividedBy(4)
	if err != nil {
		t.Fatalf("DividedBy error: %v", err)
	}
	if !almostEqual(half.Meters(), 0.5, tol) {
		t.Errorf("DividedBy(4) = %v, want 0.5", half.Meters())
	}

	ratio, err := a.Ratio(b)
	if err != nil {
		t.Fatalf("Ratio error: %v", err)
	}
	if !almostEqual(ratio, 4, tol) {
		t.Errorf("Ratio = %v, want 4", ratio)
	}
}

func TestArithmeticErrors(t *testing.T) {
	w := mustParse(t, World, "1 m")
	p := mustParse(t, Printed, "1 m")

	if _, err := w.Plus(p); !errors.Is(err, errors.ErrCodeFrameMismatch) {
		t.Errorf("cross-frame Plus error = %v, want frame mismatch", err)
	}
	if _, err := w.Minus(p); !errors.Is(err, errors.ErrCodeFrameMismatch) {
		t.Errorf("cross-frame Minus error = %v, want frame mismatch", err)
	}
	if _, err := w.Compare(p); !errors.Is(err, errors.ErrCodeFrameMismatch) {
		t.Errorf("cross-frame Compare error = %v, want frame mismatch", err)
	}
	if _, err := w.Ratio(p); !errors.Is(err, errors.ErrCodeFrameMismatch) {
		t.Errorf("cross-frame Ratio error = %v, want frame mismatch", err)
	}
	if _, err := w.DividedBy(0); !errors.Is(err, errors.ErrCodeInvalidOperand) {
		t.Errorf("DividedBy(0) error = %v, want invalid operand", err)
	}
	if _, err := w.Ratio(Zero(World)); !errors.Is(err, errors.ErrCodeInvalidOperand) {
		t.Errorf("Ratio(zero) error = %v, want invalid operand", err)
	}
}

func TestCompare(t *testing.T) {
	small := mustParse(t, World, "1 ft")
	big := mustParse(t, World, "1 m")

	if c, err := small.Compare(big); err != nil || c != -1 {
		t.Errorf("Compare = %v (err=%v), want -1", c, err)
	}
	if c, err := big.Compare(small); err != nil || c != 1 {
		t.Errorf("Compare = %v (err=%v), want 1", c, err)
	}
	twelve := mustParse(t, World, "12 in")
	if c, err := small.Compare(twelve); err != nil || c != 0 {
		t.Errorf("Compare = %v (err=%v), want 0", c, err)
	}
}

func TestIn(t *testing.T) {
	m := mustParse(t, World, "1 m")
	cm, err := m.In("cm")
	if err != nil {
		t.Fatalf("In error: %v", err)
	}
	if !almostEqual(cm, 100, tol) {
		t.Errorf("In(cm) = %v, want 100", cm)
	}
	if _, err := m.In("glorp"); !errors.Is(err, errors.ErrCodeUnknownUnit) {
		t.Errorf("In(glorp) error = %v, want unknown unit", err)
	}
}
