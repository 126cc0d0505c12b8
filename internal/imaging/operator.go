package imaging

// Operator is a pure transformation from one Buffer to a new Buffer.
//
// Apply must not modify src. On error the returned Buffer is nil and src is
// still valid.
type Operator interface {
	// Name is a short, stable identifier used in logs and tool results.
	Name() string

	// Apply computes the transformed buffer.
	Apply(src *Buffer) (*Buffer, error)
}

// IdentityChecker is implemented by operators that can tell, without doing
// any pixel work, that applying them to src would return src unchanged.
// Callers that record history skip both the computation and the snapshot
// when IsIdentity returns true.
type IdentityChecker interface {
	IsIdentity(src *Buffer) bool
}
