package measure

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kitplan/kitplan/pkg/errors"
)

// Measurement is an immutable length tagged with a reference frame.
// The zero value is a zero-length World measurement.
type Measurement struct {
	meters float64
	frame  Frame
}

// tokenPattern matches the three token classes of the measurement grammar:
// signed decimal numbers, alphabetic unit names, and the single-character
// foot/inch marks. Anything between tokens other than whitespace is a
// parse error.
var tokenPattern = regexp.MustCompile(`[+-]?(?:\d+(?:\.\d+)?|\.\d+)|[A-Za-zµÅ]+|['"]`)

// numberPattern classifies a token as a number.
var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d+)?|\.\d+)$`)

// New constructs a Measurement from a value and a unit name.
func New(frame Frame, value float64, unit string) (Measurement, error) {
	f, err := unitFactor(unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{meters: value * f, frame: frame}, nil
}

// Zero returns a zero-length Measurement in the given frame.
func Zero(frame Frame) Measurement {
	return Measurement{frame: frame}
}

// FromMeters constructs a Measurement directly from a base-unit value.
// This is the escape hatch used when a length must be synthesized from
// bare numbers, such as the hypotenuse of a pair.
func FromMeters(frame Frame, meters float64) Measurement {
	return Measurement{meters: meters, frame: frame}
}

// Parse converts a unit string into a Measurement.
//
// The string is a sequence of alternating signed-decimal and unit tokens;
// whitespace between tokens is optional. Multiple (value, unit) groups are
// summed, so "3 m 46 cm" and "5m62cm" both work. The literal "0" is always
// valid and needs no unit.
//
// Parse fails with a PARSE_* error when the token stream has an odd count
// (a dangling number or unit), a character matches no token class, or a
// unit name is not recognized.
func Parse(frame Frame, spec string) (Measurement, error) {
	if strings.TrimSpace(spec) == "0" {
		return Zero(frame), nil
	}

	toks, err := tokenize(spec)
	if err != nil {
		return Measurement{}, err
	}
	if len(toks) == 0 {
		return Measurement{}, errors.New(errors.ErrCodeParse, "empty measurement %q", spec)
	}
	if len(toks)%2 != 0 {
		return Measurement{}, errors.New(errors.ErrCodeParse,
			"measurement %q has a dangling token %q", spec, toks[len(toks)-1])
	}

	var total float64
	for i := 0; i < len(toks); i += 2 {
		num, unit := toks[i], toks[i+1]
		if !numberPattern.MatchString(num) {
			return Measurement{}, errors.New(errors.ErrCodeParse,
				"expected a number at %q in %q", num, spec)
		}
		if numberPattern.MatchString(unit) {
			return Measurement{}, errors.New(errors.ErrCodeParse,
				"expected a unit at %q in %q", unit, spec)
		}
		value, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Measurement{}, errors.Wrap(errors.ErrCodeParse, err, "bad number %q in %q", num, spec)
		}
		factor, err := unitFactor(unit)
		if err != nil {
			return Measurement{}, err
		}
		total += value * factor
	}
	return Measurement{meters: total, frame: frame}, nil
}

// From coerces a loosely-typed spec into a Measurement. It accepts:
//
//   - a Measurement (frame-checked and returned as-is)
//   - a string (parsed via Parse)
//   - a two-element []any of (number, unit name)
//   - a bare numeric zero
//
// Anything else, including a nonzero bare number, is rejected: bare numbers
// carry no unit and therefore no length.
func From(frame Frame, spec any) (Measurement, error) {
	switch v := spec.(type) {
	case Measurement:
		if v.frame != frame {
			return Measurement{}, errors.New(errors.ErrCodeFrameMismatch,
				"measurement is %s, expected %s", v.frame, frame)
		}
		return v, nil
	case string:
		return Parse(frame, v)
	case []any:
		if len(v) != 2 {
			return Measurement{}, errors.New(errors.ErrCodeInvalidOperand,
				"measurement pair spec must have 2 elements, got %d", len(v))
		}
		value, ok := toFloat(v[0])
		if !ok {
			return Measurement{}, errors.New(errors.ErrCodeInvalidOperand,
				"first element %v is not a number", v[0])
		}
		unit, ok := v[1].(string)
		if !ok {
			return Measurement{}, errors.New(errors.ErrCodeInvalidOperand,
				"second element %v is not a unit name", v[1])
		}
		return New(frame, value, unit)
	default:
		if value, ok := toFloat(spec); ok && value == 0 {
			return Zero(frame), nil
		}
		return Measurement{}, errors.New(errors.ErrCodeInvalidOperand,
			"cannot interpret %v (%T) as a measurement", spec, spec)
	}
}

// tokenize splits spec into number and unit tokens, rejecting any character
// that belongs to neither class.
func tokenize(spec string) ([]string, error) {
	var toks []string
	pos := 0
	for _, loc := range tokenPattern.FindAllStringIndex(spec, -1) {
		if gap := spec[pos:loc[0]]; strings.TrimSpace(gap) != "" {
			return nil, errors.New(errors.ErrCodeParse,
				"unexpected character %q in %q", strings.TrimSpace(gap), spec)
		}
		toks = append(toks, spec[loc[0]:loc[1]])
		pos = loc[1]
	}
	if rest := spec[pos:]; strings.TrimSpace(rest) != "" {
		return nil, errors.New(errors.ErrCodeParse,
			"unexpected character %q in %q", strings.TrimSpace(rest), spec)
	}
	return toks, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Frame returns the reference frame of m.
func (m Measurement) Frame() Frame { return m.frame }

// Meters returns the length of m in the canonical base unit.
func (m Measurement) Meters() float64 { return m.meters }

// In converts m to the given unit.
func (m Measurement) In(unit string) (float64, error) {
	f, err := unitFactor(unit)
	if err != nil {
		return 0, err
	}
	return m.meters / f, nil
}

// Plus returns m + o. Both operands must share a frame.
func (m Measurement) Plus(o Measurement) (Measurement, error) {
	if err := m.checkFrame(o, "add"); err != nil {
		return Measurement{}, err
	}
	return Measurement{meters: m.meters + o.meters, frame: m.frame}, nil
}

// Minus returns m - o. Both operands must share a frame.
func (m Measurement) Minus(o Measurement) (Measurement, error) {
	if err := m.checkFrame(o, "subtract"); err != nil {
		return Measurement{}, err
	}
	return Measurement{meters: m.meters - o.meters, frame: m.frame}, nil
}

// Times scales m by a bare number.
func (m Measurement) Times(k float64) Measurement {
	return Measurement{meters: m.meters * k, frame: m.frame}
}

// DividedBy scales m by 1/k. Division by zero is an error.
func (m Measurement) DividedBy(k float64) (Measurement, error) {
	if k == 0 {
		return Measurement{}, errors.New(errors.ErrCodeInvalidOperand, "division by zero")
	}
	return Measurement{meters: m.meters / k, frame: m.frame}, nil
}

// Ratio returns the dimensionless quotient m / o for two same-frame
// Measurements. Division by a zero-length Measurement is an error.
func (m Measurement) Ratio(o Measurement) (float64, error) {
	if err := m.checkFrame(o, "divide"); err != nil {
		return 0, err
	}
	if o.meters == 0 {
		return 0, errors.New(errors.ErrCodeInvalidOperand, "division by zero-length measurement")
	}
	return m.meters / o.meters, nil
}

// Compare returns -1, 0, or +1 as m is less than, equal to, or greater
// than o. Both operands must share a frame.
func (m Measurement) Compare(o Measurement) (int, error) {
	if err := m.checkFrame(o, "compare"); err != nil {
		return 0, err
	}
	switch {
	case m.meters < o.meters:
		return -1, nil
	case m.meters > o.meters:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equals reports whether m and o have exactly equal lengths.
// Both operands must share a frame.
func (m Measurement) Equals(o Measurement) (bool, error) {
	c, err := m.Compare(o)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// String formats m for logs and error messages.
func (m Measurement) String() string {
	return fmt.Sprintf("%gm (%s)", m.meters, m.frame)
}

func (m Measurement) checkFrame(o Measurement, op string) error {
	if m.frame != o.frame {
		return errors.New(errors.ErrCodeFrameMismatch,
			"cannot %s %s measurement and %s measurement", op, m.frame, o.frame)
	}
	return nil
}
