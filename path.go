package shelf

import (
	"slices"
	"strconv"
	"strings"
)

// Path is the sequence of names leading from a tree's root to a node.
// The empty path addresses the root itself.
type Path []string

// Parent returns the path with its last segment removed.
// The parent of the root is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return slices.Clone(p[:len(p)-1])
}

// Child returns a new path extended by name. The receiver is not modified.
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}

// IsRoot reports whether the path addresses the root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Last returns the final segment, or "" for the root.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// Key returns a string that identifies the path unambiguously.
// Segments are length-prefixed, so names containing separators cannot collide.
func (p Path) Key() string {
	var b strings.Builder
	for _, seg := range p {
		b.WriteString(strconv.Itoa(len(seg)))
		b.WriteByte(':')
		b.WriteString(seg)
	}
	return b.String()
}

// String returns a human-readable rendering for logs.
func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}
