package kit

import (
	"github.com/kitplan/kitplan/pkg/errors"
	"github.com/kitplan/kitplan/pkg/geom"
	"github.com/kitplan/kitplan/pkg/measure"
)

// Component is a drawable part of a kit.
//
// Implementations build their geometry exactly once, in world-frame
// Measurements, inside Build. After Build returns, Extent must report the
// part's footprint; before that it must fail with LAYOUT_NOT_BUILT rather
// than return a zero size. Render draws the part's own geometry only, in
// local first-quadrant coordinates with the lower-left corner at the
// origin; children are rendered by the pipeline, not by the parent.
type Component interface {
	// Name identifies the component in logs and layout exports.
	Name() string

	// Build constructs the component's geometry, extent and children.
	Build() error

	// Extent returns the world-frame (width, height) footprint.
	// It fails if called before Build has completed.
	Extent() (geom.Pair, error)

	// Render draws the component's own geometry through the pen.
	Render(pen *Pen) error

	// Children returns the owned child components with their fixed
	// offsets relative to this component's local origin.
	Children() []Child
}

// Child binds a component to its position inside a parent. The offset is
// a world-frame vector from the parent's local origin to the child's.
type Child struct {
	Component Component
	Offset    geom.Pair
}

// Base provides the bookkeeping half of the Component contract: extent
// storage with build-state tracking, and the child list. Concrete parts
// embed a Base and implement Build and Render themselves.
type Base struct {
	name     string
	extent   geom.Pair
	built    bool
	children []Child
}

// NewBase creates a Base with the given component name.
func NewBase(name string) Base {
	return Base{name: name}
}

// Name implements [Component].
func (b *Base) Name() string { return b.name }

// SetExtent records the component's footprint and marks it built.
// The pair must be a world-frame size.
func (b *Base) SetExtent(size geom.Pair) error {
	if size.Kind() != geom.Size {
		return errors.New(errors.ErrCodeKindMismatch,
			"extent of %q must be a size, got %s", b.name, size.Kind())
	}
	if size.Frame() != measure.World {
		return errors.New(errors.ErrCodeFrameMismatch,
			"extent of %q must be world-frame, got %s", b.name, size.Frame())
	}
	b.extent = size
	b.built = true
	return nil
}

// Extent implements [Component]. It fails loudly when called before
// SetExtent, so a misordered pipeline surfaces immediately instead of
// packing zero-sized pieces.
func (b *Base) Extent() (geom.Pair, error) {
	if !b.built {
		return geom.Pair{}, errors.New(errors.ErrCodeNotBuilt,
			"extent of %q requested before build", b.name)
	}
	return b.extent, nil
}

// AddChild attaches a child component at a fixed offset from this
// component's local origin. The offset must be a world-frame vector.
func (b *Base) AddChild(c Component, offset geom.Pair) error {
	if offset.Kind() != geom.Vector {
		return errors.New(errors.ErrCodeKindMismatch,
			"child offset must be a vector, got %s", offset.Kind())
	}
	if offset.Frame() != measure.World {
		return errors.New(errors.ErrCodeFrameMismatch,
			"child offset must be world-frame, got %s", offset.Frame())
	}
	b.children = append(b.children, Child{Component: c, Offset: offset})
	return nil
}

// Children implements [Component].
func (b *Base) Children() []Child {
	return b.children
}
