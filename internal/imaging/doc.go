// Package imaging owns the drawable buffers behind the MCP server.
//
// Buffers are either single images or image sequences (ordered, same-sized
// frames indexed 0..T). Each buffer lives in a Registry and is addressed by an
// opaque handle string such as "image/3" or "sequence/7". Handles are the only
// way callers reach a buffer; there is no pointer or address encoding.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Frame: index into a sequence (0 = first frame)
//
// Every buffer is an *image.NRGBA whose bounds start at (0,0); loaded images
// are rebased when they are copied into the registry.
//
// # Thread Safety
//
// The Registry type is safe for concurrent use. It does not lock pixel data:
// drawing into the same buffer from several goroutines must be synchronized by
// the caller. The MCP server handles one request at a time, which satisfies
// this.
//
// # Error Handling
//
// Functions return errors for:
//   - Unknown or released handles (ErrUnknownHandle)
//   - A sequence handle used as an image or vice versa (ErrWrongKind)
//   - Non-positive sizes or frame counts
//   - Frames of differing size in one sequence
//   - File I/O and decoding/encoding failures
package imaging
