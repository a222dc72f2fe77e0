package soix

// Range calls fn for every (key, value) pair with key >= start in
// ascending key order, stopping early when fn returns false. The tree
// must not be mutated while the scan runs.
func (t *BTree[K, V]) Range(start K, fn func(k K, v V) bool) {
	var s stack
	cur := t.root
	for !cur.isLeaf() {
		nd := t.in.at(cur.index())
		i, next := nd.lookup(start)
		s.push(stackElement{ref: cur, pos: i})
		cur = next
	}
	lf := t.lf.at(cur.index())
	i := lowerBound(lf.keys[:lf.cnt], start)
	for {
		for ; i < lf.cnt; i++ {
			if !fn(lf.keys[i], lf.vals[i]) {
				return
			}
		}
		next, ok := t.nextLeaf(&s)
		if !ok {
			return
		}
		lf = next
		i = 0
	}
}

// nextLeaf climbs the recorded descent path to the nearest ancestor with
// an unvisited right child, then descends to the leftmost leaf under it.
func (t *BTree[K, V]) nextLeaf(s *stack) (*leafNode[K, V], bool) {
	for {
		e, ok := s.pop()
		if !ok {
			return nil, false
		}
		nd := t.in.at(e.ref.index())
		if e.pos+1 >= nd.cnt {
			continue
		}
		s.push(stackElement{ref: e.ref, pos: e.pos + 1})
		cur := nd.sons[e.pos+1]
		for !cur.isLeaf() {
			s.push(stackElement{ref: cur, pos: 0})
			cur = t.in.at(cur.index()).sons[0]
		}
		return t.lf.at(cur.index()), true
	}
}
