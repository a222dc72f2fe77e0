package soix

import "cmp"

// leafNode holds up to degree sorted unique (key, value) pairs. Slots at
// index >= cnt are vacated storage, never meaningful data.
type leafNode[K cmp.Ordered, V any] struct {
	keys []K // len == degree
	vals []V // len == degree
	cnt  int
}

func newLeafNode[K cmp.Ordered, V any](degree int) *leafNode[K, V] {
	return &leafNode[K, V]{
		keys: make([]K, degree),
		vals: make([]V, degree),
	}
}

func (n *leafNode[K, V]) full() bool {
	return n.cnt == len(n.keys)
}

func (n *leafNode[K, V]) lookup(k K) *V {
	i := lowerBound(n.keys[:n.cnt], k)
	if i == n.cnt || n.keys[i] != k {
		return nil
	}
	return &n.vals[i]
}

// insert upserts (k, v). The caller must have split a full node first,
// inserting into a full leaf is a contract violation.
func (n *leafNode[K, V]) insert(k K, v V) (old V, replaced bool) {
	if n.full() {
		panic(panicLeafFull)
	}
	i := lowerBound(n.keys[:n.cnt], k)
	if i == n.cnt {
		n.keys[i] = k
		n.vals[i] = v
		n.cnt++
		return
	}
	if n.keys[i] == k {
		old, replaced = n.vals[i], true
		n.vals[i] = v
		return
	}
	copy(n.keys[i+1:n.cnt+1], n.keys[i:n.cnt])
	copy(n.vals[i+1:n.cnt+1], n.vals[i:n.cnt])
	n.keys[i] = k
	n.vals[i] = v
	n.cnt++
	return
}

// split moves the upper half of the entries into a fresh right node. The
// receiver becomes the left half in place. Returns the maximum key left
// in the receiver and the right node.
func (n *leafNode[K, V]) split() (K, *leafNode[K, V]) {
	leftCnt := n.cnt / 2
	right := newLeafNode[K, V](len(n.keys))
	right.cnt = n.cnt - leftCnt
	copy(right.keys, n.keys[leftCnt:n.cnt])
	copy(right.vals, n.vals[leftCnt:n.cnt])
	// drop the moved entries so the left half does not pin them
	clear(n.keys[leftCnt:n.cnt])
	clear(n.vals[leftCnt:n.cnt])
	n.cnt = leftCnt
	return n.keys[leftCnt-1], right
}

// internalNode routes by separator keys: keys[i] is the maximum key
// reachable under sons[i], the last child is unbounded. cnt counts
// children, so only keys[0:cnt-1] are meaningful.
type internalNode[K cmp.Ordered] struct {
	keys []K       // len == degree-1
	sons []nodeRef // len == degree
	cnt  int
}

// newInternalNode builds a node with the single child first covering the
// whole key space.
func newInternalNode[K cmp.Ordered](degree int, first nodeRef) *internalNode[K] {
	n := &internalNode[K]{
		keys: make([]K, degree-1),
		sons: make([]nodeRef, degree),
		cnt:  1,
	}
	n.sons[0] = first
	return n
}

func (n *internalNode[K]) full() bool {
	return n.cnt == len(n.sons)
}

// lookup selects the child that may hold k: the leftmost child whose
// recorded maximum is >= k, or the last child when k exceeds them all.
func (n *internalNode[K]) lookup(k K) (int, nodeRef) {
	i := lowerBound(n.keys[:n.cnt-1], k)
	return i, n.sons[i]
}

// insert links right as the child at position pos. leftMax is the
// maximum key of the child at pos-1, the node whose split produced
// right.
func (n *internalNode[K]) insert(pos int, leftMax K, right nodeRef) {
	if n.full() {
		panic(panicInternalFull)
	}
	// pos == cnt appends after the previous last child, which kept no
	// separator of its own, so there is nothing to shift.
	if pos < n.cnt {
		copy(n.keys[pos:n.cnt], n.keys[pos-1:n.cnt-1])
		copy(n.sons[pos+1:n.cnt+1], n.sons[pos:n.cnt])
	}
	n.keys[pos-1] = leftMax
	n.sons[pos] = right
	n.cnt++
}

// split halves the children. The separator between the halves is
// consumed as the return value, it ends up in neither partition.
func (n *internalNode[K]) split() (K, *internalNode[K]) {
	leftCnt := n.cnt / 2
	rightCnt := n.cnt - leftCnt
	right := &internalNode[K]{
		keys: make([]K, len(n.keys)),
		sons: make([]nodeRef, len(n.sons)),
		cnt:  rightCnt,
	}
	copy(right.keys, n.keys[leftCnt:leftCnt+rightCnt-1])
	copy(right.sons, n.sons[leftCnt:leftCnt+rightCnt])
	sep := n.keys[leftCnt-1]
	clear(n.keys[leftCnt-1 : n.cnt-1])
	clear(n.sons[leftCnt:n.cnt])
	n.cnt = leftCnt
	return sep, right
}
