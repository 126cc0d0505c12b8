package editor

import "github.com/ironsheep/image-editor-mcp/internal/imaging"

// stack is a LIFO sequence of buffer snapshots.
type stack struct {
	items []*imaging.Buffer
}

func (s *stack) push(b *imaging.Buffer) {
	s.items = append(s.items, b)
}

func (s *stack) pop() (*imaging.Buffer, bool) {
	n := len(s.items)
	if n == 0 {
		return nil, false
	}
	b := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return b, true
}

func (s *stack) len() int { return len(s.items) }

func (s *stack) clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// trim drops the oldest entries so that at most limit remain and returns the
// number dropped. A limit of zero or less keeps everything.
func (s *stack) trim(limit int) int {
	if limit <= 0 || len(s.items) <= limit {
		return 0
	}
	drop := len(s.items) - limit
	n := copy(s.items, s.items[drop:])
	clear(s.items[n:])
	s.items = s.items[:n]
	return drop
}
