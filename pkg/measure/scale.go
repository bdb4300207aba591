package measure

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kitplan/kitplan/pkg/errors"
)

// Scale is a model:world size ratio with a human description.
// Ratio is the factor applied to world lengths to obtain model lengths,
// e.g. 1/87 for HO.
type Scale struct {
	Name        string
	Ratio       float64
	Description string
}

// namedScales holds the standard model scales recognized by name.
var namedScales = map[string]Scale{
	"Z":  {Name: "Z", Ratio: 1.0 / 220, Description: "Z gauge model railroad (1:220)"},
	"N":  {Name: "N", Ratio: 1.0 / 160, Description: "N gauge model railroad (1:160)"},
	"TT": {Name: "TT", Ratio: 1.0 / 120, Description: "TT gauge model railroad (1:120)"},
	"HO": {Name: "HO", Ratio: 1.0 / 87, Description: "HO gauge model railroad (1:87)"},
	"OO": {Name: "OO", Ratio: 1.0 / 76.2, Description: "OO gauge model railroad (1:76.2)"},
	"S":  {Name: "S", Ratio: 1.0 / 64, Description: "S gauge model railroad (1:64)"},
	"O":  {Name: "O", Ratio: 1.0 / 48, Description: "O gauge model railroad (1:48)"},
	"1":  {Name: "1", Ratio: 1.0 / 32, Description: "Gauge 1 model railroad (1:32)"},
	"G":  {Name: "G", Ratio: 1.0 / 22.5, Description: "G gauge garden railroad (1:22.5)"},
	"F":  {Name: "F", Ratio: 1.0 / 20.32, Description: "F gauge model railroad (1:20.32)"},

	"dollhouse": {Name: "dollhouse", Ratio: 1.0 / 12, Description: "standard dollhouse (1:12)"},
	"playscale": {Name: "playscale", Ratio: 1.0 / 6, Description: "fashion-doll playscale (1:6)"},
	"half":      {Name: "half", Ratio: 1.0 / 24, Description: "half-inch dollhouse (1:24)"},
	"full":      {Name: "full", Ratio: 1, Description: "full size (1:1)"},
}

// LookupScale resolves a scale spec into a Scale.
//
// The spec is either the name of a standard model scale ("HO", "N",
// "dollhouse", ...) or a custom ratio in "N:D" form ("1:87"). Custom
// ratios fail when N or D is non-numeric or zero, or when the string does
// not contain exactly one colon.
func LookupScale(spec string) (Scale, error) {
	spec = strings.TrimSpace(spec)
	if s, ok := namedScales[spec]; ok {
		return s, nil
	}

	if n := strings.Count(spec, ":"); n != 1 {
		return Scale{}, errors.New(errors.ErrCodeInvalidScale,
			"unknown scale %q (not a named scale, and a custom ratio needs exactly one colon)", spec)
	}

	parts := strings.SplitN(spec, ":", 2)
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Scale{}, errors.New(errors.ErrCodeInvalidScale, "scale numerator %q is not a number", parts[0])
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Scale{}, errors.New(errors.ErrCodeInvalidScale, "scale denominator %q is not a number", parts[1])
	}
	if num == 0 || den == 0 {
		return Scale{}, errors.New(errors.ErrCodeInvalidScale, "scale %q has a zero term", spec)
	}

	return Scale{
		Name:        spec,
		Ratio:       num / den,
		Description: "custom ratio " + spec,
	}, nil
}

// Scales returns the standard scale table sorted from smallest ratio
// (most reduction) to largest.
func Scales() []Scale {
	out := make([]Scale, 0, len(namedScales))
	for _, s := range namedScales {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ratio != out[j].Ratio {
			return out[i].Ratio < out[j].Ratio
		}
		return out[i].Name < out[j].Name
	})
	return out
}
