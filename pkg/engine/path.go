package engine

// Path is an ordered, non-empty sequence of nodes from the start node to
// the current frontier node. Paths are immutable once enqueued: Extend
// always allocates, so frontier entries sharing a prefix never alias.
type Path[N comparable] []N

// First returns the start node of the path.
func (p Path[N]) First() N {
	return p[0]
}

// Last returns the frontier node of the path.
func (p Path[N]) Last() N {
	return p[len(p)-1]
}

// Contains reports whether n already occurs in the path.
func (p Path[N]) Contains(n N) bool {
	for _, m := range p {
		if m == n {
			return true
		}
	}
	return false
}

// Extend returns a new path with n appended. The receiver is not modified.
func (p Path[N]) Extend(n N) Path[N] {
	next := make(Path[N], len(p)+1)
	copy(next, p)
	next[len(p)] = n
	return next
}
