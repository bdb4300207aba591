// Package geom provides typed 2-D geometry on top of package measure.
//
// A [Pair] is an immutable (x, y) couple of same-frame Measurements tagged
// with a [Kind]: point, vector, or size. Arithmetic between pairs follows
// the usual affine-space closure rules (point − point is a vector, point +
// vector is a point, and so on); any other combination is rejected.
//
// A [Transform] is an immutable 3×3 homogeneous matrix representing a 2-D
// affine map. Named constructors cover the transforms the kit pipeline
// actually composes: uniform resize, translation, quarter-turn rotations,
// and reflection around the x axis. Composition follows the usual
// right-to-left convention: A.Compose(B) applies B first.
package geom
