package measure

// Frame identifies the reference frame a Measurement lives in.
// Arithmetic is only defined between Measurements of the same frame.
type Frame int

const (
	// World is the coordinate space of the real-world object being modeled.
	World Frame = iota

	// Printed is the coordinate space of ink on the output page.
	Printed
)

// String returns a human-readable frame name.
func (f Frame) String() string {
	switch f {
	case World:
		return "world"
	case Printed:
		return "printed"
	default:
		return "unknown"
	}
}
