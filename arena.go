package soix

// arena is an append-only store of nodes addressed by slot index. Nodes
// are heap-allocated once and never move, freed or reused, so pointers
// into them stay valid even as the index slice grows.
type arena[T any] struct {
	list []*T
}

func newArena[T any](initCap int) arena[T] {
	return arena[T]{list: make([]*T, 0, initCap)}
}

// alloc takes ownership of n and returns its slot index.
func (a *arena[T]) alloc(n *T) int {
	a.list = append(a.list, n)
	return len(a.list) - 1
}

func (a *arena[T]) at(idx int) *T {
	return a.list[idx]
}

func (a *arena[T]) size() int {
	return len(a.list)
}
