package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_rotate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// StateResult describes the session after a tool call.
type StateResult struct {
	Loaded    bool   `json:"loaded"`
	Path      string `json:"path,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	UndoDepth int    `json:"undo_depth"`
	RedoDepth int    `json:"redo_depth"`

	// Changed is true when the call replaced the current image.
	Changed bool `json:"changed"`

	// Operation names the operator or history step that ran.
	Operation string `json:"operation,omitempty"`
}

// LoadResult is returned by image_load.
type LoadResult struct {
	StateResult
	Format        string `json:"format"`
	FileSizeBytes int64  `json:"file_size_bytes"`
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
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
// Mutating tools build one imaging.Operator from their arguments and hand it
// to the session, so history is recorded the same way for every operator.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// File Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)

	// History
	case "image_undo":
		_, ok := s.session.Undo()
		return s.state(ok, "undo"), nil
	case "image_redo":
		_, ok := s.session.Redo()
		return s.state(ok, "redo"), nil
	case "image_state":
		return s.state(false, ""), nil

	// Operators
	case "image_resize", "image_crop", "image_rotate", "image_flip",
		"image_blur", "image_brightness", "image_sharpen", "image_contrast":
		op, err := parseOperator(name, args, s.session.MaxPixels())
		if err != nil {
			return nil, err
		}
		return s.apply(op)

	// Presentation
	case "image_preview":
		return s.handleImagePreview(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_mean_color":
		cur, err := s.current()
		if err != nil {
			return nil, err
		}
		return imaging.MeanColor(cur), nil

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

// decodeArgs unmarshals tool arguments, treating missing arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) state(changed bool, operation string) *StateResult {
	r := &StateResult{
		Path:      s.path,
		UndoDepth: s.session.UndoDepth(),
		RedoDepth: s.session.RedoDepth(),
		Changed:   changed,
		Operation: operation,
	}
	if cur := s.session.Current(); cur != nil {
		r.Loaded = true
		r.Width = cur.Width()
		r.Height = cur.Height()
	}
	return r
}

func (s *Server) current() (*imaging.Buffer, error) {
	cur := s.session.Current()
	if cur == nil {
		return nil, editor.ErrNoImageLoaded
	}
	return cur, nil
}

func (s *Server) apply(op imaging.Operator) (*StateResult, error) {
	before := s.session.Current()
	after, err := s.session.Apply(op)
	if err != nil {
		return nil, err
	}
	return s.state(after != nil && after != before, op.Name()), nil
}

// === File Operation Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	buf, err := s.session.Load(a.Path)
	if err != nil {
		return nil, err
	}
	s.path = a.Path

	result := &LoadResult{StateResult: *s.state(true, "load")}
	if info, err := imaging.FileInfo(buf, a.Path); err == nil {
		result.Format = info.Format
		result.FileSizeBytes = info.FileSizeBytes
	}
	return result, nil
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if err := s.session.Save(a.Path); err != nil {
		return nil, err
	}
	s.path = a.Path
	return s.state(false, "save"), nil
}

// === Operator Argument Parsing ===

type imageResizeArgs struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Filter string `json:"filter"`
}

type imageCropArgs struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type imageRotateArgs struct {
	Degrees int `json:"degrees"`
}

type imageFlipArgs struct {
	Axis string `json:"axis"`
}

type imageBlurArgs struct {
	Sigma float64 `json:"sigma"`
}

type imageBrightnessArgs struct {
	Delta int `json:"delta"`
}

type imageSharpenArgs struct {
	Radius    float64 `json:"radius"`
	Threshold int     `json:"threshold"`
}

type imageContrastArgs struct {
	Delta float64 `json:"delta"`
}

// parseOperator builds the operator for a mutating tool from its arguments.
// maxPixels bounds resize targets.
func parseOperator(tool string, args json.RawMessage, maxPixels int) (imaging.Operator, error) {
	switch tool {
	case "image_resize":
		var a imageResizeArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		filter, err := imaging.ParseResampleFilter(a.Filter)
		if err != nil {
			return nil, err
		}
		return imaging.Resize{Width: a.Width, Height: a.Height, Filter: filter, MaxPixels: maxPixels}, nil

	case "image_crop":
		var a imageCropArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return imaging.Crop{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}, nil

	case "image_rotate":
		var a imageRotateArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return imaging.RotateBy(a.Degrees)

	case "image_flip":
		var a imageFlipArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return imaging.FlipAlong(a.Axis)

	case "image_blur":
		var a imageBlurArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return imaging.GaussianBlur{Sigma: a.Sigma}, nil

	case "image_brightness":
		var a imageBrightnessArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return imaging.Brightness{Delta: a.Delta}, nil

	case "image_sharpen":
		var a imageSharpenArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return imaging.Sharpen{Radius: a.Radius, Threshold: a.Threshold}, nil

	case "image_contrast":
		var a imageContrastArgs
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return imaging.Contrast{Delta: a.Delta}, nil
	}
	return nil, fmt.Errorf("unknown tool: %s", tool)
}

// === Presentation Handlers ===

type imagePreviewArgs struct {
	MaxSize *int `json:"max_size"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cur, err := s.current()
	if err != nil {
		return nil, err
	}
	maxSize := s.previewMaxSize
	if a.MaxSize != nil {
		maxSize = *a.MaxSize
	}
	return imaging.Preview(cur, maxSize)
}

type imageSampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cur, err := s.current()
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(cur, a.X, a.Y)
}
