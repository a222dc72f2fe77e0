package soix

// ExportStat is a point-in-time snapshot of tree counters.
type ExportStat struct {
	Puts           uint64
	Replaces       uint64
	Gets           uint64
	GetHits        uint64
	LeafSplits     uint64
	InternalSplits uint64
	RootGrows      uint64
	LeafNodes      uint64
	InternalNodes  uint64
}

// iStat holds the live counters. Plain integers, the tree contract is
// single-threaded.
type iStat struct {
	puts           uint64
	replaces       uint64
	gets           uint64
	getHits        uint64
	leafSplits     uint64
	internalSplits uint64
	rootGrows      uint64
}
