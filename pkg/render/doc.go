// Package render maps a robot's variant, attribute map and name to an
// ordered sequence of drawing primitives. The mapping is pure: identical
// input always yields an identical sequence, and unrecognized attribute
// values fall back to the documented default style instead of failing.
// The surface paints primitives back to front, so order is significant.
package render
