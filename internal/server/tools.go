package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// intVector returns the schema of an integer array of exactly n elements.
func intVector(n int, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "integer"},
		"minItems":    n,
		"maxItems":    n,
		"description": description,
	}
}

// colorProperty is shared by every drawing tool.
var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Color symbol, keyed on its first letter (case-insensitive): r(ed), g(reen), b(lue), y(ellow), w(hite). Anything else draws black.",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Sequence drawing
		{
			Name:        "draw_line_seg",
			Description: "Draw a 3D line segment through an image sequence. Each point along the segment is drawn as one pixel on the frame given by its third coordinate. Points outside the sequence volume are skipped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"sequence": map[string]interface{}{
						"type":        "string",
						"description": "Sequence handle",
					},
					"start": intVector(3, "Start point [x, y, frame]"),
					"end":   intVector(3, "End point [x, y, frame]"),
					"color": colorProperty,
				},
				"required": []string{"sequence", "start", "end", "color"},
			},
		},
		{
			Name:        "draw_rect",
			Description: "Draw a rectangle outline on a range of frames of an image sequence. Frames run from center[2]-radius[2] to center[2]+radius[2], each end clamped to the sequence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"sequence": map[string]interface{}{
						"type":        "string",
						"description": "Sequence handle",
					},
					"center": intVector(3, "Rectangle center [x, y, frame]"),
					"radius": intVector(3, "Half-extents [rx, ry, rframe]"),
					"color":  colorProperty,
				},
				"required": []string{"sequence", "center", "radius", "color"},
			},
		},
		{
			Name:        "draw_points",
			Description: "Draw single pixels on frames of an image sequence, in list order. An empty list draws nothing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"sequence": map[string]interface{}{
						"type":        "string",
						"description": "Sequence handle",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"items":       intVector(3, "Point [x, y, frame]"),
						"description": "Points to draw",
					},
					"color": colorProperty,
				},
				"required": []string{"sequence", "points", "color"},
			},
		},

		// Image drawing
		{
			Name:        "draw_line_seg_2d",
			Description: "Draw a line segment on a single image. Both endpoints are drawn.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": map[string]interface{}{
						"type":        "string",
						"description": "Image handle",
					},
					"start": intVector(2, "Start point [x, y]"),
					"end":   intVector(2, "End point [x, y]"),
					"color": colorProperty,
				},
				"required": []string{"image", "start", "end", "color"},
			},
		},
		{
			Name:        "draw_rect_2d",
			Description: "Draw a rectangle outline on a single image, from center-radius to center+radius inclusive.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": map[string]interface{}{
						"type":        "string",
						"description": "Image handle",
					},
					"center": intVector(2, "Rectangle center [x, y]"),
					"radius": intVector(2, "Half-extents [rx, ry]"),
					"color":  colorProperty,
				},
				"required": []string{"image", "center", "radius", "color"},
			},
		},
		{
			Name:        "draw_points_2d",
			Description: "Draw single pixels on a single image, in list order. An empty list draws nothing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image": map[string]interface{}{
						"type":        "string",
						"description": "Image handle",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":        "array",
							"items":       map[string]interface{}{"type": "integer"},
							"minItems":    2,
							"maxItems":    3,
							"description": "Point [x, y]; a third element is ignored",
						},
						"description": "Points to draw",
					},
					"color": colorProperty,
				},
				"required": []string{"image", "points", "color"},
			},
		},

		// Buffer management
		{
			Name:        "image_create",
			Description: "Allocate a new image filled with a background color and return its handle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  map[string]interface{}{"type": "integer", "description": "Width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Height in pixels"},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background as hex (default #000000)",
						"default":     "#000000",
					},
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "sequence_create",
			Description: "Allocate a new image sequence of same-sized frames and return its handle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  map[string]interface{}{"type": "integer", "description": "Frame width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Frame height in pixels"},
					"frames": map[string]interface{}{"type": "integer", "description": "Number of frames"},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background as hex (default #000000)",
						"default":     "#000000",
					},
				},
				"required": []string{"width", "height", "frames"},
			},
		},
		{
			Name:        "image_load",
			Description: "Load an image file (PNG, JPEG, GIF, BMP, TIFF) into a new image buffer and return its handle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "sequence_load",
			Description: "Load image files, in order, as the frames of a new sequence. All files must have the same dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths to the frame images",
					},
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "buffer_list",
			Description: "List all live image and sequence handles with their dimensions.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "buffer_describe",
			Description: "Get the kind, width, height and frame count of a buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": map[string]interface{}{
						"type":        "string",
						"description": "Image or sequence handle",
					},
				},
				"required": []string{"handle"},
			},
		},
		{
			Name:        "buffer_sample_color",
			Description: "Get the exact color value at a pixel of an image or of a sequence frame.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": map[string]interface{}{
						"type":        "string",
						"description": "Image or sequence handle",
					},
					"x": map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
					"y": map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
					"frame": map[string]interface{}{
						"type":        "integer",
						"description": "Frame index for sequences (default 0)",
						"default":     0,
					},
				},
				"required": []string{"handle", "x", "y"},
			},
		},
		{
			Name:        "buffer_export",
			Description: "Return an image, or one frame of a sequence, as base64-encoded PNG. Optionally also write it to a file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": map[string]interface{}{
						"type":        "string",
						"description": "Image or sequence handle",
					},
					"frame": map[string]interface{}{
						"type":        "integer",
						"description": "Frame index for sequences (default 0)",
						"default":     0,
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional absolute path to write the PNG to",
					},
				},
				"required": []string{"handle"},
			},
		},
		{
			Name:        "buffer_release",
			Description: "Release a buffer. Its handle becomes invalid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": map[string]interface{}{
						"type":        "string",
						"description": "Image or sequence handle",
					},
				},
				"required": []string{"handle"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
