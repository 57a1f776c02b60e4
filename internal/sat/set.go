package sat

// resetSet is a set of small integers in [0, capacity) that can be cleared
// in O(1) by bumping a generation counter instead of zeroing the backing
// array, adapted from the teacher's ResetSet (internal/sat/set.go). Pure-
// literal elimination (propagate.go) uses a pair of these — one per
// polarity — to track, per sweep, which polarities of each variable have
// been seen across unsatisfied clauses.
type resetSet struct {
	seenAt []uint32
	gen    uint32
}

// newResetSet returns a resetSet with room for n elements (1-indexed; index
// 0 is unused so variable ids can be used directly).
func newResetSet(n int) *resetSet {
	return &resetSet{seenAt: make([]uint32, n+1)}
}

// Contains reports whether v was Add-ed since the last Clear.
func (rs *resetSet) Contains(v int) bool {
	return rs.seenAt[v] == rs.gen
}

// Add marks v as seen in the current generation.
func (rs *resetSet) Add(v int) {
	rs.seenAt[v] = rs.gen
}

// Clear empties the set in constant time.
func (rs *resetSet) Clear() {
	rs.gen++
	if rs.gen == 0 { // overflow, extremely unlikely but must stay correct
		rs.gen = 1
		for i := range rs.seenAt {
			rs.seenAt[i] = 0
		}
	}
}
