package server

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ironsheep/image-draw-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "draw_rect", "sequence_create").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	slog.Debug("tool call", "tool", params.Name)
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		slog.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Drawing handlers unmarshal their arguments and forward them unchanged to
// the drawing.Painter, which owns argument checking. Buffer handlers manage
// the registry that drawing handles point into.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Sequence drawing
	case "draw_line_seg":
		return s.handleDrawLineSeg(args)
	case "draw_rect":
		return s.handleDrawRect(args)
	case "draw_points":
		return s.handleDrawPoints(args)

	// Image drawing
	case "draw_line_seg_2d":
		return s.handleDrawLineSeg2D(args)
	case "draw_rect_2d":
		return s.handleDrawRect2D(args)
	case "draw_points_2d":
		return s.handleDrawPoints2D(args)

	// Buffer management
	case "image_create":
		return s.handleImageCreate(args)
	case "sequence_create":
		return s.handleSequenceCreate(args)
	case "image_load":
		return s.handleImageLoad(args)
	case "sequence_load":
		return s.handleSequenceLoad(args)
	case "buffer_list":
		return s.handleBufferList(args)
	case "buffer_describe":
		return s.handleBufferDescribe(args)
	case "buffer_sample_color":
		return s.handleBufferSampleColor(args)
	case "buffer_export":
		return s.handleBufferExport(args)
	case "buffer_release":
		return s.handleBufferRelease(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// DrawResult is returned by every drawing tool.
type DrawResult struct {
	Success bool   `json:"success"`
	Handle  string `json:"handle"`
}

// === Sequence Drawing Handlers ===

type drawLineSegArgs struct {
	Sequence string `json:"sequence"`
	Start    []int  `json:"start"`
	End      []int  `json:"end"`
	Color    string `json:"color"`
}

func (s *Server) handleDrawLineSeg(args json.RawMessage) (interface{}, error) {
	var a drawLineSegArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.painter.DrawLineSeg(a.Sequence, a.Start, a.End, a.Color); err != nil {
		return nil, err
	}
	return &DrawResult{Success: true, Handle: a.Sequence}, nil
}

type drawRectArgs struct {
	Sequence string `json:"sequence"`
	Center   []int  `json:"center"`
	Radius   []int  `json:"radius"`
	Color    string `json:"color"`
}

func (s *Server) handleDrawRect(args json.RawMessage) (interface{}, error) {
	var a drawRectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.painter.DrawRect(a.Sequence, a.Center, a.Radius, a.Color); err != nil {
		return nil, err
	}
	return &DrawResult{Success: true, Handle: a.Sequence}, nil
}

type drawPointsArgs struct {
	Sequence string  `json:"sequence"`
	Points   [][]int `json:"points"`
	Color    string  `json:"color"`
}

func (s *Server) handleDrawPoints(args json.RawMessage) (interface{}, error) {
	var a drawPointsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.painter.DrawPoints(a.Sequence, a.Points, a.Color); err != nil {
		return nil, err
	}
	return &DrawResult{Success: true, Handle: a.Sequence}, nil
}

// === Image Drawing Handlers ===

type drawLineSeg2DArgs struct {
	Image string `json:"image"`
	Start []int  `json:"start"`
	End   []int  `json:"end"`
	Color string `json:"color"`
}

func (s *Server) handleDrawLineSeg2D(args json.RawMessage) (interface{}, error) {
	var a drawLineSeg2DArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.painter.DrawLineSeg2D(a.Image, a.Start, a.End, a.Color); err != nil {
		return nil, err
	}
	return &DrawResult{Success: true, Handle: a.Image}, nil
}

type drawRect2DArgs struct {
	Image  string `json:"image"`
	Center []int  `json:"center"`
	Radius []int  `json:"radius"`
	Color  string `json:"color"`
}

func (s *Server) handleDrawRect2D(args json.RawMessage) (interface{}, error) {
	var a drawRect2DArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.painter.DrawRect2D(a.Image, a.Center, a.Radius, a.Color); err != nil {
		return nil, err
	}
	return &DrawResult{Success: true, Handle: a.Image}, nil
}

type drawPoints2DArgs struct {
	Image  string  `json:"image"`
	Points [][]int `json:"points"`
	Color  string  `json:"color"`
}

func (s *Server) handleDrawPoints2D(args json.RawMessage) (interface{}, error) {
	var a drawPoints2DArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.painter.DrawPoints2D(a.Image, a.Points, a.Color); err != nil {
		return nil, err
	}
	return &DrawResult{Success: true, Handle: a.Image}, nil
}

// === Buffer Management Handlers ===

type imageCreateArgs struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Frames     int    `json:"frames"`
	Background string `json:"background"`
}

func (s *Server) handleImageCreate(args json.RawMessage) (interface{}, error) {
	var a imageCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Background == "" {
		a.Background = "#000000"
	}
	bg, err := imaging.ParseHexColor(a.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}
	h, err := s.registry.CreateImage(a.Width, a.Height, bg)
	if err != nil {
		return nil, err
	}
	return s.registry.Describe(h)
}

func (s *Server) handleSequenceCreate(args json.RawMessage) (interface{}, error) {
	var a imageCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Background == "" {
		a.Background = "#000000"
	}
	bg, err := imaging.ParseHexColor(a.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}
	h, err := s.registry.CreateSequence(a.Width, a.Height, a.Frames, bg)
	if err != nil {
		return nil, err
	}
	return s.registry.Describe(h)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	h, err := s.registry.LoadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return s.registry.Describe(h)
}

type sequenceLoadArgs struct {
	Paths []string `json:"paths"`
}

func (s *Server) handleSequenceLoad(args json.RawMessage) (interface{}, error) {
	var a sequenceLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	h, err := s.registry.LoadSequence(a.Paths)
	if err != nil {
		return nil, err
	}
	return s.registry.Describe(h)
}

// BufferListResult lists every live buffer.
type BufferListResult struct {
	Buffers []imaging.BufferInfo `json:"buffers"`
}

func (s *Server) handleBufferList(args json.RawMessage) (interface{}, error) {
	result := &BufferListResult{Buffers: []imaging.BufferInfo{}}
	for _, h := range s.registry.Handles() {
		info, err := s.registry.Describe(h)
		if err != nil {
			// Released between listing and describing
			continue
		}
		result.Buffers = append(result.Buffers, *info)
	}
	return result, nil
}

type bufferArgs struct {
	Handle string `json:"handle"`
}

func (s *Server) handleBufferDescribe(args json.RawMessage) (interface{}, error) {
	var a bufferArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.registry.Describe(a.Handle)
}

type bufferSampleColorArgs struct {
	Handle string `json:"handle"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Frame  int    `json:"frame"`
}

func (s *Server) handleBufferSampleColor(args json.RawMessage) (interface{}, error) {
	var a bufferSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.registry.Frame(a.Handle, a.Frame)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type bufferExportArgs struct {
	Handle string `json:"handle"`
	Frame  int    `json:"frame"`
	Path   string `json:"path"`
}

func (s *Server) handleBufferExport(args json.RawMessage) (interface{}, error) {
	var a bufferExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.registry.Frame(a.Handle, a.Frame)
	if err != nil {
		return nil, err
	}
	return imaging.Export(img, a.Path)
}

// ReleaseResult confirms a released handle.
type ReleaseResult struct {
	Released string `json:"released"`
}

func (s *Server) handleBufferRelease(args json.RawMessage) (interface{}, error) {
	var a bufferArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.registry.Release(a.Handle); err != nil {
		return nil, err
	}
	return &ReleaseResult{Released: a.Handle}, nil
}
