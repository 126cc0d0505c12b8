// Package server implements the MCP (Model Context Protocol) server that
// drives an image editing session.
//
// The server owns exactly one editor.Session. Each tool call maps to one
// session call, and the session records undo/redo history around every edit.
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
// File Operations:
//   - image_load: Open an image as the one being edited
//   - image_save: Write the current image as PNG
//
// History:
//   - image_undo, image_redo: Step backwards or forwards through edits
//   - image_state: Dimensions and history depths
//
// Operators:
//   - image_resize, image_crop, image_rotate, image_flip
//   - image_blur, image_brightness, image_sharpen, image_contrast
//
// Presentation:
//   - image_preview: Current image as base64 PNG
//   - image_sample_color: Color at a pixel
//   - image_mean_color: Average color
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "no image loaded" or
//     "invalid region: crop region ... outside image bounds ..."
//
// Requests are processed one at a time, so the session never sees
// concurrent calls.
package server
