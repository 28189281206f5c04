// Package drawing implements the drawing predicates exposed by the server.
//
// There are six entry points on Painter, in two families:
//
// Sequence predicates (handle names an image sequence, points are
// [x, y, frame]):
//   - DrawLineSeg: rasterize a 3D segment through the frames
//   - DrawRect: outline a rectangle on a clamped range of frames
//   - DrawPoints: set individual pixels on their frames
//
// Image predicates (handle names a single image, points are [x, y]):
//   - DrawLineSeg2D
//   - DrawRect2D
//   - DrawPoints2D
//
// # Colors
//
// Colors are symbols keyed on their first character, case-insensitive:
// "red", "R" and "rose" all draw red. Unrecognized symbols draw black and
// are never an error.
//
// # Errors
//
// Invalid handles, handles of the wrong kind, coordinate vectors of the wrong
// length and out-of-range frame indices in point lists are reported as
// errors before any pixel is written. Pixel coordinates outside a frame are
// clipped silently.
package drawing
