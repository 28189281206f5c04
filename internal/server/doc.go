// Package server implements the MCP (Model Context Protocol) server for the
// drawing tools.
//
// This package provides a JSON-RPC 2.0 server that lets an external caller
// draw into image buffers held by the server. The caller never sees buffer
// memory: it creates or loads buffers, receives opaque handles, and passes
// those handles back to the drawing tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Sequence drawing (points are [x, y, frame]):
//   - draw_line_seg: 3D line segment through the frames
//   - draw_rect: rectangle outline on a clamped range of frames
//   - draw_points: single pixels on their frames
//
// Image drawing (points are [x, y]):
//   - draw_line_seg_2d
//   - draw_rect_2d
//   - draw_points_2d
//
// Buffer management:
//   - image_create, sequence_create: allocate buffers
//   - image_load, sequence_load: decode files into buffers
//   - buffer_list, buffer_describe: inspect buffers
//   - buffer_sample_color: read one pixel
//   - buffer_export: PNG of an image or frame, optionally saved to disk
//   - buffer_release: drop a handle
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Bad handles, coordinate vectors of the wrong length and frame indices
// outside a sequence are tool execution errors; nothing is drawn. Unknown
// color symbols are not errors; they draw black.
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
