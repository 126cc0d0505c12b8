package editor

import (
	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/rs/zerolog"
)

// Decoder turns a file path into a Buffer.
type Decoder interface {
	Decode(path string) (*imaging.Buffer, error)
}

// Encoder writes a Buffer to a file path.
type Encoder interface {
	Encode(buf *imaging.Buffer, path string) error
}

// Codec is the external capability a Session uses for Load and Save.
type Codec interface {
	Decoder
	Encoder
}

// Option configures a Session.
type Option func(*Session)

// WithCodec replaces the default imaging.FileCodec.
func WithCodec(c Codec) Option {
	return func(s *Session) { s.codec = c }
}

// WithLogger sets the logger used for history events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l.With().Str("component", "editor").Logger() }
}

// WithHistoryLimit caps the undo stack at n snapshots, dropping the oldest
// first. Zero or a negative value means unbounded.
func WithHistoryLimit(n int) Option {
	return func(s *Session) { s.historyLimit = n }
}

// WithMaxPixels caps the area of Resize targets. Zero or a negative value
// keeps imaging.DefaultMaxPixels.
func WithMaxPixels(n int) Option {
	return func(s *Session) { s.maxPixels = n }
}

// WithClearRedoOnEdit controls whether a new edit discards the redo stack.
// Enabled by default.
func WithClearRedoOnEdit(v bool) Option {
	return func(s *Session) { s.clearRedoOnEdit = v }
}

// WithResetHistoryOnLoad controls whether a successful Load empties both
// stacks. Enabled by default.
func WithResetHistoryOnLoad(v bool) Option {
	return func(s *Session) { s.resetHistoryOnLoad = v }
}

// WithStrictNoImage controls what an operator does on an empty session:
// return ErrNoImageLoaded (true, the default) or silently do nothing.
func WithStrictNoImage(v bool) Option {
	return func(s *Session) { s.strictNoImage = v }
}
