// Package editor holds the edit session: the current image and the undo and
// redo stacks that make every operation reversible.
//
// A Session starts empty. Load makes an image current; each operator call
// snapshots the current image before replacing it; Undo and Redo move
// snapshots between the two stacks in strict LIFO order. Undo and Redo on an
// empty stack are no-ops, never errors.
//
// The session does not render anything. Every call returns the new current
// buffer, and presenting it is left to the caller.
package editor
