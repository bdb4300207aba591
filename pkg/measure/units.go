package measure

import (
	"regexp"
	"strings"

	"github.com/kitplan/kitplan/pkg/errors"
)

// irregularUnits maps unit names that do not follow the SI prefix grammar
// to their length in meters. Checked before the metric path, and wins on
// collision (so "pt" is a printers' point, never a prefixed meter).
var irregularUnits = map[string]float64{
	// Imperial
	"in":     0.0254,
	"inch":   0.0254,
	"inches": 0.0254,
	`"`:      0.0254,
	"ft":     0.3048,
	"foot":   0.3048,
	"feet":   0.3048,
	"'":      0.3048,
	"yd":     0.9144,
	"yard":   0.9144,
	"yards":  0.9144,
	"mi":     1609.344,
	"mile":   1609.344,
	"miles":  1609.344,
	"thou":   0.0000254,
	"mil":    0.0000254,

	// Printers' units
	"pt":     0.0254 / 72,
	"point":  0.0254 / 72,
	"points": 0.0254 / 72,
	"pica":   0.0254 / 6,
	"picas":  0.0254 / 6,

	// Nautical and rural
	"fathom":   1.8288,
	"fathoms":  1.8288,
	"furlong":  201.168,
	"furlongs": 201.168,
	"nmi":      1852,
	"hand":     0.1016,
	"hands":    0.1016,

	// Very small and very large
	"angstrom":   1e-10,
	"angstroms":  1e-10,
	"å":          1e-10,
	"au":         1.495978707e11,
	"pc":         3.0856775814913673e16,
	"parsec":     3.0856775814913673e16,
	"parsecs":    3.0856775814913673e16,
	"ly":         9.4607304725808e15,
	"lightyear":  9.4607304725808e15,
	"lightyears": 9.4607304725808e15,
}

// siPrefixes maps short SI prefix symbols to their power-of-ten multiplier.
// Lookup is case-sensitive: "Mm" is a megameter, "mm" a millimeter.
var siPrefixes = map[string]float64{
	"Q": 1e30, "R": 1e27, "Y": 1e24, "Z": 1e21, "E": 1e18,
	"P": 1e15, "T": 1e12, "G": 1e9, "M": 1e6, "k": 1e3,
	"h": 1e2, "da": 1e1,
	"d": 1e-1, "c": 1e-2, "m": 1e-3,
	"µ": 1e-6, "u": 1e-6,
	"n": 1e-9, "p": 1e-12, "f": 1e-15, "a": 1e-18,
	"z": 1e-21, "y": 1e-24, "r": 1e-27, "q": 1e-30,
}

// siPrefixNames maps long-form prefix names (lowercase) to multipliers,
// for the "kilometer"/"centimetres" spelling family.
var siPrefixNames = map[string]float64{
	"quetta": 1e30, "ronna": 1e27, "yotta": 1e24, "zetta": 1e21, "exa": 1e18,
	"peta": 1e15, "tera": 1e12, "giga": 1e9, "mega": 1e6, "kilo": 1e3,
	"hecto": 1e2, "deca": 1e1, "deka": 1e1,
	"deci": 1e-1, "centi": 1e-2, "milli": 1e-3, "micro": 1e-6,
	"nano": 1e-9, "pico": 1e-12, "femto": 1e-15, "atto": 1e-18,
	"zepto": 1e-21, "yocto": 1e-24, "ronto": 1e-27, "quecto": 1e-30,
}

// longFormPattern matches "meter", "centimetres", "kilometers", etc.
// The captured group is the (possibly empty) prefix name.
var longFormPattern = regexp.MustCompile(`^([a-z]*)met(?:er|re)s?$`)

// unitFactor resolves a unit token to its length in meters.
func unitFactor(unit string) (float64, error) {
	if f, ok := irregularUnits[unit]; ok {
		return f, nil
	}
	if f, ok := irregularUnits[strings.ToLower(unit)]; ok {
		return f, nil
	}

	// Short metric form: bare "m" or SI prefix + "m".
	if unit == "m" {
		return 1, nil
	}
	if strings.HasSuffix(unit, "m") && len(unit) > 1 {
		if f, ok := siPrefixes[strings.TrimSuffix(unit, "m")]; ok {
			return f, nil
		}
	}

	// Long metric form.
	if m := longFormPattern.FindStringSubmatch(strings.ToLower(unit)); m != nil {
		if m[1] == "" {
			return 1, nil
		}
		if f, ok := siPrefixNames[m[1]]; ok {
			return f, nil
		}
	}

	return 0, errors.New(errors.ErrCodeUnknownUnit, "unrecognized unit %q", unit)
}
