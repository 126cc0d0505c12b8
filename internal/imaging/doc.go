// Package imaging provides the pixel buffer type, the file codec boundary and
// the catalog of transformation operators used by the editor.
//
// # Buffers
//
// A Buffer is an 8-bit NRGBA pixel grid anchored at (0,0). Buffers are never
// modified once produced; every operator returns a new Buffer.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Crop rectangles are given as a top-left corner (inclusive) plus a size
//
// # Operators
//
// Each operator is a small parameter struct implementing Operator:
//
//   - Geometric: Resize, Crop, Rotate90, Rotate180, Rotate270,
//     FlipVertical, FlipHorizontal
//   - Photometric: Brightness, Contrast
//   - Filtering: GaussianBlur, Sharpen
//
// Rotations are clockwise and lossless. Resize implements IdentityChecker so
// that a resize to the current dimensions can be skipped entirely.
//
// # Codec
//
// FileCodec decodes PNG, JPEG, GIF, BMP, TIFF and WebP files and always
// encodes PNG.
//
// # Error Handling
//
// Failures wrap one of the sentinel errors so callers can use errors.Is:
//   - ErrDecode: unreadable path or unsupported content
//   - ErrEncode: destination not writable or encoding failure
//   - ErrInvalidRegion: crop rectangle outside the buffer
//   - ErrInvalidParameter: operator parameter out of range
//
// # Thread Safety
//
// Buffers are read-only and operators are stateless, so both may be used from
// multiple goroutines.
package imaging
