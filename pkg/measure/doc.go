// Package measure implements the dimensional arithmetic layer for kitplan.
//
// # Overview
//
// A [Measurement] is an immutable scalar length stored internally in meters
// and tagged with a reference [Frame]: [World] for real-world dimensions of
// the modeled object, [Printed] for ink on the output page. Keeping the two
// frames apart at the type level catches the classic scale-model bug of
// adding a wall height to a page margin.
//
// # Parsing
//
// [Parse] accepts human-readable unit strings with any number of
// (value, unit) groups, which are summed:
//
//	m, err := measure.Parse(measure.World, "3 m 46 cm")   // 3.46 m
//	m, err := measure.Parse(measure.World, `4' 6"`)       // 1.3716 m
//	m, err := measure.Parse(measure.World, "5m62cm")      // whitespace optional
//
// Unit resolution checks an irregular-name table first (imperial units,
// printers' units, astronomical units and other oddballs), then the metric
// path: a short SI prefix followed by "m", or the long form
// prefix + "meter"/"metre" with an optional plural "s".
//
// The literal "0" is always valid and needs no unit.
//
// # Arithmetic
//
// Plus and Minus require operands in the same frame. Times and DividedBy
// scale by a bare number. Dividing one Measurement by another of the same
// frame yields a dimensionless ratio. All operations return new values;
// a Measurement is never mutated after construction.
//
// # Scales
//
// [LookupScale] resolves a named model scale ("HO", "N", ...) or a custom
// "N:D" ratio string into a [Scale] carrying the model:world ratio used by
// the master transform.
package measure
