// Package kit implements the build → pack → render pipeline for printable
// scale-model kits.
//
// # Overview
//
// A kit is a collection of drawable parts. Each part implements
// [Component]: it builds its own geometry once from world-frame
// Measurements, reports its extent, and can own positioned child
// components. Top-level components are registered on a [Kit], which packs
// them onto as many pages as needed and renders every page through the
// output canvases.
//
// # Pipeline
//
// [Kit.Generate] runs three strictly sequential phases:
//
//  1. Build: every registered component constructs its geometry and
//     extent; a [Piece] is created per top-level component.
//  2. Pack: pieces are placed onto pages largest-area first; pieces that
//     overflow are retried on further pages. A piece too large for an
//     empty page aborts the run.
//  3. Render: a pre-order walk draws every component through a [Pen]
//     carrying the composed transform (page shift, parent offsets, and
//     the master world-to-print map with scale ratio and y-axis flip).
//
// Component code never composes transforms itself: parts draw in their
// own first-quadrant local coordinates, lower-left corner at the origin,
// and the pipeline does the rest.
//
// # Usage
//
//	k, err := kit.New(kit.Options{Name: "house", Paper: "A4", Scale: "1:24"})
//	k.Add(newWall(...))
//	k.Add(newRoofPanel(...))
//	result, err := k.Generate()
//	// result.Artifacts holds the encoded documents per format
package kit
