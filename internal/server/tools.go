package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// noArgsSchema is the input schema of tools that take no arguments.
func noArgsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// File Operations
		{
			Name:        "image_load",
			Description: "Open an image file (PNG, JPEG, GIF, BMP, TIFF, WebP) as the image being edited. Replaces the current image. The undo/redo history is cleared unless the server is configured with reset_history_on_load: false.",
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
			Name:        "image_save",
			Description: "Write the current image to a file as PNG. Does not change the image or its history.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the output file",
					},
				},
				"required": []string{"path"},
			},
		},

		// History
		{
			Name:        "image_undo",
			Description: "Revert the most recent edit. Does nothing when there is nothing to undo.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "image_redo",
			Description: "Re-apply the most recently undone edit. Does nothing when there is nothing to redo.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "image_state",
			Description: "Report whether an image is loaded, its dimensions, and the undo/redo depths.",
			InputSchema: noArgsSchema(),
		},

		// Geometric Operators
		{
			Name:        "image_resize",
			Description: "Resize the current image to exact dimensions. Resizing to the current size is a no-op and records no history. Targets above the configured pixel cap are rejected.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels (>= 1)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels (>= 1)",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"nearest", "triangle", "catmullrom", "gaussian", "lanczos3"},
						"description": "Resampling filter. Default triangle",
						"default":     "triangle",
					},
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Keep only a rectangle of the current image. The rectangle must lie inside the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based, inclusive)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based, inclusive)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Rectangle width in pixels (>= 1)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Rectangle height in pixels (>= 1)",
					},
				},
				"required": []string{"x", "y", "width", "height"},
			},
		},
		{
			Name:        "image_rotate",
			Description: "Rotate the current image clockwise by 90, 180 or 270 degrees. Lossless.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"degrees": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{90, 180, 270},
						"description": "Clockwise rotation angle",
					},
				},
				"required": []string{"degrees"},
			},
		},
		{
			Name:        "image_flip",
			Description: "Mirror the current image vertically (top to bottom) or horizontally (left to right).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"axis": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"vertical", "horizontal"},
						"description": "Flip direction",
					},
				},
				"required": []string{"axis"},
			},
		},

		// Photometric and Filtering Operators
		{
			Name:        "image_blur",
			Description: "Apply a Gaussian blur to the current image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"sigma": map[string]interface{}{
						"type":        "number",
						"description": "Standard deviation of the Gaussian (>= 0). Larger values blur more",
					},
				},
				"required": []string{"sigma"},
			},
		},
		{
			Name:        "image_brightness",
			Description: "Add a signed amount to every color channel, saturating at 0 and 255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"delta": map[string]interface{}{
						"type":        "integer",
						"description": "Amount to add to R, G and B (e.g. -30 to 30)",
					},
				},
				"required": []string{"delta"},
			},
		},
		{
			Name:        "image_sharpen",
			Description: "Sharpen the current image with an unsharp mask.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Radius of the internal blur pass (>= 0)",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum per-channel difference before a pixel is sharpened",
					},
				},
				"required": []string{"radius", "threshold"},
			},
		},
		{
			Name:        "image_contrast",
			Description: "Increase (positive) or decrease (negative) contrast around the mid channel value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"delta": map[string]interface{}{
						"type":        "number",
						"description": "Contrast change (e.g. -30.0 to 30.0)",
					},
				},
				"required": []string{"delta"},
			},
		},

		// Presentation
		{
			Name:        "image_preview",
			Description: "Return the current image as base64-encoded PNG, scaled down to fit a bounding box if needed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum width and height of the preview. 0 disables scaling. Default from server configuration",
					},
				},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a pixel of the current image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "image_mean_color",
			Description: "Get the average color of the current image.",
			InputSchema: noArgsSchema(),
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
