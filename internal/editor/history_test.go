package editor

import (
	"testing"

	"github.com/ironsheep/image-editor-mcp/internal/imaging"
)

func TestStack(t *testing.T) {
	var s stack
	if _, ok := s.pop(); ok {
		t.Fatal("pop on empty stack should fail")
	}

	a, b := gradient(2, 2), gradient(3, 3)
	s.push(a)
	s.push(b)
	if s.len() != 2 {
		t.Fatalf("len: got %d, want 2", s.len())
	}

	got, ok := s.pop()
	if !ok || got != b {
		t.Error("pop should return the last pushed buffer")
	}
	s.clear()
	if s.len() != 0 {
		t.Errorf("len after clear: got %d", s.len())
	}
}

func TestStack_Trim(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		limit     int
		wantLen   int
		wantDrop  int
		wantFirst int
	}{
		{"unbounded", 5, 0, 5, 0, 0},
		{"negative limit", 5, -1, 5, 0, 0},
		{"under limit", 3, 5, 3, 0, 0},
		{"at limit", 5, 5, 5, 0, 0},
		{"over limit", 5, 2, 2, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s stack
			bufs := make([]*imaging.Buffer, tt.size)
			for i := range bufs {
				bufs[i] = gradient(i+1, 1)
				s.push(bufs[i])
			}

			if got := s.trim(tt.limit); got != tt.wantDrop {
				t.Errorf("dropped: got %d, want %d", got, tt.wantDrop)
			}
			if s.len() != tt.wantLen {
				t.Errorf("len: got %d, want %d", s.len(), tt.wantLen)
			}
			if s.items[0] != bufs[tt.wantFirst] {
				t.Error("oldest entries should be dropped first")
			}
		})
	}
}
