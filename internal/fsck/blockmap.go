package fsck

import (
	"sort"
)

// BlockStatus is the allocation state of a block.
type BlockStatus uint8

const (
	BlockUnreferenced BlockStatus = iota
	BlockFree
	BlockOwned
)

func (s BlockStatus) String() string {
	switch s {
	case BlockUnreferenced:
		return "unreferenced"
	case BlockFree:
		return "free"
	case BlockOwned:
		return "owned"
	}
	return "unknown"
}

// BlockState is the state of one block. Level, Owner and Offset are only
// meaningful when Status is BlockOwned.
type BlockState struct {
	Status BlockStatus
	Level  Level
	Owner  uint32
	Offset uint32
}

// BlockMap tracks the state of every block. Blocks beyond the block count
// are kept in a side table so that repeated claims on them are still seen.
type BlockMap struct {
	states   []BlockState
	overflow map[uint32]BlockState
}

// NewBlockMap returns a map of n unreferenced blocks.
func NewBlockMap(n uint32) *BlockMap {
	return &BlockMap{
		states:   make([]BlockState, n),
		overflow: make(map[uint32]BlockState),
	}
}

// Len returns the number of in-range blocks.
func (m *BlockMap) Len() int {
	return len(m.states)
}

// Get returns the state of block b.
func (m *BlockMap) Get(b uint32) BlockState {
	if int64(b) < int64(len(m.states)) {
		return m.states[b]
	}
	return m.overflow[b]
}

func (m *BlockMap) set(b uint32, s BlockState) {
	if int64(b) < int64(len(m.states)) {
		m.states[b] = s
		return
	}
	m.overflow[b] = s
}

// MarkFree puts block b on the free list, whatever its prior state.
func (m *BlockMap) MarkFree(b uint32) {
	m.set(b, BlockState{Status: BlockFree})
}

// Claim records that inode owner references block b at the given level and
// returns the state it replaced. The new claim always wins.
func (m *BlockMap) Claim(b uint32, level Level, owner, offset uint32) BlockState {
	prior := m.Get(b)
	m.set(b, BlockState{Status: BlockOwned, Level: level, Owner: owner, Offset: offset})
	return prior
}

// Overflow returns the out-of-range block numbers that carry state, in
// ascending order.
func (m *BlockMap) Overflow() []uint32 {
	return sortedKeys(m.overflow)
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
