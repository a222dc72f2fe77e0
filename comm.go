package soix

import (
	"log/slog"
	"strconv"
)

const (
	// DefaultDegree targets a node payload in the neighborhood of one 4KB
	// page for small fixed-size keys. Deriving the degree from an actual
	// byte budget is future work, for now it stays a plain knob.
	DefaultDegree = 32

	minDegree = 3
	maxDegree = 1024
)

// nodeRef addresses a node inside one of the two arenas. The msb selects
// the arena, the rest is the slot index. A ref stays valid for the
// lifetime of the tree, arenas only grow.
type nodeRef uint64

const refInternalBit nodeRef = 1 << 63

func leafRef(idx int) nodeRef {
	return nodeRef(idx)
}

func internalRef(idx int) nodeRef {
	return nodeRef(idx) | refInternalBit
}

func (r nodeRef) isLeaf() bool {
	return r&refInternalBit == 0
}

func (r nodeRef) index() int {
	return int(r &^ refInternalBit)
}

func (r nodeRef) String() string {
	if r.isLeaf() {
		return "leaf(" + strconv.Itoa(r.index()) + ")"
	}
	return "internal(" + strconv.Itoa(r.index()) + ")"
}

type Config struct {
	// Degree is the maximum child count of an internal node and the
	// maximum entry count of a leaf. 0 selects DefaultDegree.
	Degree int
	// Logger traces structural events (splits, root growth) at debug
	// level. nil disables tracing.
	Logger *slog.Logger
}
