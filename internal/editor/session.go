package editor

import (
	"fmt"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
	"github.com/rs/zerolog"
)

// State is the coarse state of a Session.
type State int

const (
	// StateEmpty means no image has been loaded.
	StateEmpty State = iota
	// StateLoaded means a current image is present.
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "empty"
}

// Session owns the image being edited and its undo/redo history.
//
// Every mutating call pushes a deep copy of the pre-operation buffer onto the
// undo stack. Undo moves the current buffer onto the redo stack and restores
// the top undo snapshot; Redo is the mirror. Doing N undos followed by N redos
// restores the exact buffer that was current before the undos.
//
// Memory grows with history depth times image size. Use WithHistoryLimit to
// bound it.
//
// A Session is not safe for concurrent use; callers serialise access.
type Session struct {
	current *imaging.Buffer
	undo    stack
	redo    stack

	codec              Codec
	log                zerolog.Logger
	historyLimit       int
	maxPixels          int
	clearRedoOnEdit    bool
	resetHistoryOnLoad bool
	strictNoImage      bool
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	s := &Session{
		codec:              imaging.FileCodec{},
		log:                zerolog.Nop(),
		clearRedoOnEdit:    true,
		resetHistoryOnLoad: true,
		strictNoImage:      true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the buffer being edited, or nil when the session is empty.
func (s *Session) Current() *imaging.Buffer { return s.current }

// State reports whether an image is loaded.
func (s *Session) State() State {
	if s.current == nil {
		return StateEmpty
	}
	return StateLoaded
}

// MaxPixels returns the area cap applied to Resize targets. Zero means
// imaging.DefaultMaxPixels.
func (s *Session) MaxPixels() int { return s.maxPixels }

// UndoDepth returns the number of snapshots available to Undo.
func (s *Session) UndoDepth() int { return s.undo.len() }

// RedoDepth returns the number of snapshots available to Redo.
func (s *Session) RedoDepth() int { return s.redo.len() }

// CanUndo reports whether Undo would change the current buffer.
func (s *Session) CanUndo() bool { return s.undo.len() > 0 }

// CanRedo reports whether Redo would change the current buffer.
func (s *Session) CanRedo() bool { return s.redo.len() > 0 }

// Load decodes the image at path and makes it current. On failure the session
// is left unchanged and the error wraps imaging.ErrDecode. Unless disabled
// with WithResetHistoryOnLoad, both history stacks are emptied on success.
func (s *Session) Load(path string) (*imaging.Buffer, error) {
	buf, err := s.codec.Decode(path)
	if err != nil {
		s.log.Debug().Err(err).Str("path", path).Msg("load failed")
		return nil, err
	}
	if buf == nil {
		return nil, fmt.Errorf("%w: %s: decoder returned no image", imaging.ErrDecode, path)
	}
	s.current = buf
	if s.resetHistoryOnLoad {
		s.undo.clear()
		s.redo.clear()
	}
	s.log.Debug().
		Str("path", path).
		Int("width", buf.Width()).
		Int("height", buf.Height()).
		Msg("image loaded")
	return buf, nil
}

// Save writes the current buffer to path. It never changes the session.
func (s *Session) Save(path string) error {
	if s.current == nil {
		return ErrNoImageLoaded
	}
	if err := s.codec.Encode(s.current, path); err != nil {
		s.log.Debug().Err(err).Str("path", path).Msg("save failed")
		return err
	}
	s.log.Debug().Str("path", path).Msg("image saved")
	return nil
}

// Apply runs op on the current buffer and records the previous buffer in the
// undo history.
//
// Outcomes:
//   - No image loaded: ErrNoImageLoaded, or (nil, nil) when strict mode is off.
//   - op reports itself as an identity for the current buffer: the current
//     buffer is returned and no history is recorded.
//   - op fails: the error is returned and the session is unchanged.
//   - Otherwise the new buffer becomes current and is returned.
func (s *Session) Apply(op imaging.Operator) (*imaging.Buffer, error) {
	if s.current == nil {
		if s.strictNoImage {
			return nil, fmt.Errorf("%s: %w", op.Name(), ErrNoImageLoaded)
		}
		return nil, nil
	}
	if ic, ok := op.(imaging.IdentityChecker); ok && ic.IsIdentity(s.current) {
		s.log.Debug().Str("op", op.Name()).Msg("identity operation skipped")
		return s.current, nil
	}

	next, err := op.Apply(s.current)
	if err != nil {
		s.log.Debug().Err(err).Str("op", op.Name()).Msg("operation rejected")
		return nil, err
	}

	s.undo.push(s.current.Clone())
	if s.clearRedoOnEdit {
		s.redo.clear()
	}
	if dropped := s.undo.trim(s.historyLimit); dropped > 0 {
		s.log.Warn().Int("dropped", dropped).Int("limit", s.historyLimit).Msg("undo history trimmed")
	}
	s.current = next

	s.log.Debug().
		Str("op", op.Name()).
		Int("width", next.Width()).
		Int("height", next.Height()).
		Int("undo_depth", s.undo.len()).
		Int("redo_depth", s.redo.len()).
		Msg("operation applied")
	return next, nil
}

// Undo restores the most recent snapshot. It returns the new current buffer
// and true, or nil and false when there is nothing to undo.
func (s *Session) Undo() (*imaging.Buffer, bool) {
	return s.step(&s.undo, &s.redo, "undo")
}

// Redo re-applies the most recently undone buffer. It returns the new current
// buffer and true, or nil and false when there is nothing to redo.
func (s *Session) Redo() (*imaging.Buffer, bool) {
	return s.step(&s.redo, &s.undo, "redo")
}

// step pops from src, saves the current buffer onto dst and makes the popped
// snapshot current.
func (s *Session) step(src, dst *stack, name string) (*imaging.Buffer, bool) {
	prev, ok := src.pop()
	if !ok {
		return nil, false
	}
	if s.current != nil {
		dst.push(s.current)
	}
	s.current = prev
	if dropped := s.undo.trim(s.historyLimit); dropped > 0 {
		s.log.Warn().Int("dropped", dropped).Int("limit", s.historyLimit).Str("op", name).Msg("undo history trimmed")
	}
	s.log.Debug().
		Str("op", name).
		Int("undo_depth", s.undo.len()).
		Int("redo_depth", s.redo.len()).
		Msg("history step")
	return prev, true
}

// Resize scales the current image to width x height. A resize to the current
// dimensions does nothing and records no history.
func (s *Session) Resize(width, height int, filter imaging.ResampleFilter) (*imaging.Buffer, error) {
	return s.Apply(imaging.Resize{Width: width, Height: height, Filter: filter, MaxPixels: s.maxPixels})
}

// Crop keeps the width x height rectangle whose top-left corner is (x, y).
func (s *Session) Crop(x, y, width, height int) (*imaging.Buffer, error) {
	return s.Apply(imaging.Crop{X: x, Y: y, Width: width, Height: height})
}

// Rotate90 rotates the current image a quarter turn clockwise.
func (s *Session) Rotate90() (*imaging.Buffer, error) { return s.Apply(imaging.Rotate90{}) }

// Rotate180 rotates the current image a half turn.
func (s *Session) Rotate180() (*imaging.Buffer, error) { return s.Apply(imaging.Rotate180{}) }

// Rotate270 rotates the current image three quarter turns clockwise.
func (s *Session) Rotate270() (*imaging.Buffer, error) { return s.Apply(imaging.Rotate270{}) }

// FlipVertical mirrors the current image top to bottom.
func (s *Session) FlipVertical() (*imaging.Buffer, error) { return s.Apply(imaging.FlipVertical{}) }

// FlipHorizontal mirrors the current image left to right.
func (s *Session) FlipHorizontal() (*imaging.Buffer, error) {
	return s.Apply(imaging.FlipHorizontal{})
}

// Blur applies a Gaussian blur with the given sigma.
func (s *Session) Blur(sigma float64) (*imaging.Buffer, error) {
	return s.Apply(imaging.GaussianBlur{Sigma: sigma})
}

// Brightness adds delta to every color channel, saturating.
func (s *Session) Brightness(delta int) (*imaging.Buffer, error) {
	return s.Apply(imaging.Brightness{Delta: delta})
}

// Sharpen applies an unsharp mask.
func (s *Session) Sharpen(radius float64, threshold int) (*imaging.Buffer, error) {
	return s.Apply(imaging.Sharpen{Radius: radius, Threshold: threshold})
}

// Contrast adjusts contrast by delta.
func (s *Session) Contrast(delta float64) (*imaging.Buffer, error) {
	return s.Apply(imaging.Contrast{Delta: delta})
}
