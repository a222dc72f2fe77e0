package soix

import (
	"cmp"
	"fmt"
	"log/slog"
)

// BTree is an in-memory ordered index. All nodes live in two append-only
// arenas owned by the tree and cross-reference each other by nodeRef
// only. Operations are not safe for concurrent use, a caller needing
// that must serialize externally.
type BTree[K cmp.Ordered, V any] struct {
	in     arena[internalNode[K]]
	lf     arena[leafNode[K, V]]
	root   nodeRef
	degree int
	size   int
	logger *slog.Logger
	stat   iStat
}

// New constructs an empty tree whose root is a single empty leaf.
func New[K cmp.Ordered, V any](cfg Config) (*BTree[K, V], error) {
	degree := cfg.Degree
	if degree == 0 {
		degree = DefaultDegree
	}
	if degree < minDegree || degree > maxDegree {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrDegreeOutOfRange, degree, minDegree, maxDegree)
	}
	t := &BTree[K, V]{
		in:     newArena[internalNode[K]](64),
		lf:     newArena[leafNode[K, V]](64),
		degree: degree,
		logger: cfg.Logger,
	}
	t.root = leafRef(t.lf.alloc(newLeafNode[K, V](degree)))
	return t, nil
}

func (t *BTree[K, V]) trace(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Debug(msg, args...)
	}
}

// growRoot allocates a new internal root with first as its sole child
// and returns the new root's arena index. The only way the tree gains
// height.
func (t *BTree[K, V]) growRoot(first nodeRef) int {
	id := t.in.alloc(newInternalNode[K](t.degree, first))
	t.root = internalRef(id)
	t.stat.rootGrows++
	t.trace("root grown", "root", t.root, "firstChild", first)
	return id
}

// Put upserts (k, v) and reports the value it replaced, if any.
//
// The descent is a single top-down pass: any full node on the path is
// split before it is descended into, so its father (split one step
// earlier) always has room for the extra child and no split ever
// cascades back up. The loop carries the father's arena index and the
// child slot the current node occupies in it.
func (t *BTree[K, V]) Put(k K, v V) (old V, replaced bool) {
	var (
		cur       = t.root
		fatherID  = -1 // arena index of the father internal node, -1 at the root
		fatherSon = 0  // cur is the fatherSon-th child of the father
	)
	for {
		if !cur.isLeaf() {
			id := cur.index()
			nd := t.in.at(id)
			if nd.full() {
				leftMax, right := nd.split()
				rightID := t.in.alloc(right)
				t.stat.internalSplits++
				t.trace("internal split", "left", internalRef(id), "right", internalRef(rightID))
				if fatherID < 0 {
					fatherID = t.growRoot(internalRef(id))
					fatherSon = 0
				}
				t.in.at(fatherID).insert(fatherSon+1, leftMax, internalRef(rightID))
				// the key belongs in the new sibling
				if leftMax < k {
					id = rightID
					nd = right
				}
			}
			fatherID = id
			fatherSon, cur = nd.lookup(k)
		} else {
			id := cur.index()
			lf := t.lf.at(id)
			if lf.full() {
				leftMax, right := lf.split()
				rightID := t.lf.alloc(right)
				t.stat.leafSplits++
				t.trace("leaf split", "left", leafRef(id), "right", leafRef(rightID))
				if fatherID < 0 {
					fatherID = t.growRoot(leafRef(id))
					fatherSon = 0
				}
				t.in.at(fatherID).insert(fatherSon+1, leftMax, leafRef(rightID))
				if leftMax < k {
					lf = right
				}
			}
			old, replaced = lf.insert(k, v)
			t.stat.puts++
			if replaced {
				t.stat.replaces++
			} else {
				t.size++
			}
			return
		}
	}
}

// Ref returns a pointer to the value stored under k, or nil when the key
// is absent. The pointer stays valid for the lifetime of the tree,
// writes through it are visible to later lookups.
func (t *BTree[K, V]) Ref(k K) *V {
	t.stat.gets++
	cur := t.root
	for !cur.isLeaf() {
		_, cur = t.in.at(cur.index()).lookup(k)
	}
	p := t.lf.at(cur.index()).lookup(k)
	if p != nil {
		t.stat.getHits++
	}
	return p
}

func (t *BTree[K, V]) Get(k K) (v V, found bool) {
	p := t.Ref(k)
	if p == nil {
		return
	}
	return *p, true
}

// Len reports the number of live keys.
func (t *BTree[K, V]) Len() int {
	return t.size
}

// Height reports the number of levels from the root down to the leaves.
// An empty tree has height 1.
func (t *BTree[K, V]) Height() int {
	h := 1
	for cur := t.root; !cur.isLeaf(); h++ {
		cur = t.in.at(cur.index()).sons[0]
	}
	return h
}

func (t *BTree[K, V]) MinKey() (k K, ok bool) {
	cur := t.root
	for !cur.isLeaf() {
		cur = t.in.at(cur.index()).sons[0]
	}
	lf := t.lf.at(cur.index())
	if lf.cnt == 0 {
		return
	}
	return lf.keys[0], true
}

func (t *BTree[K, V]) MaxKey() (k K, ok bool) {
	cur := t.root
	for !cur.isLeaf() {
		nd := t.in.at(cur.index())
		cur = nd.sons[nd.cnt-1]
	}
	lf := t.lf.at(cur.index())
	if lf.cnt == 0 {
		return
	}
	return lf.keys[lf.cnt-1], true
}

// Stat snapshots the tree's counters.
func (t *BTree[K, V]) Stat() ExportStat {
	return ExportStat{
		Puts:           t.stat.puts,
		Replaces:       t.stat.replaces,
		Gets:           t.stat.gets,
		GetHits:        t.stat.getHits,
		LeafSplits:     t.stat.leafSplits,
		InternalSplits: t.stat.internalSplits,
		RootGrows:      t.stat.rootGrows,
		LeafNodes:      uint64(t.lf.size()),
		InternalNodes:  uint64(t.in.size()),
	}
}
