package fsck

// InodeStatus is the allocation state of an inode.
type InodeStatus uint8

const (
	InodeUnreferenced InodeStatus = iota
	InodeFree
	InodeAllocated
)

func (s InodeStatus) String() string {
	switch s {
	case InodeUnreferenced:
		return "unreferenced"
	case InodeFree:
		return "free"
	case InodeAllocated:
		return "allocated"
	}
	return "unknown"
}

// InodeState is the state of one inode. The link and parent fields are only
// meaningful when Status is InodeAllocated. Parent 0 means not yet known.
type InodeState struct {
	Status        InodeStatus
	DeclaredLinks uint32
	ObservedLinks uint32
	Parent        uint32
}

// InodeMap tracks the state of every inode, indexed 1..count. Inodes beyond
// the count are kept in a side table.
type InodeMap struct {
	states   []InodeState
	overflow map[uint32]InodeState
}

// NewInodeMap returns a map of count unreferenced inodes.
func NewInodeMap(count uint32) *InodeMap {
	return &InodeMap{
		states:   make([]InodeState, int64(count)+1),
		overflow: make(map[uint32]InodeState),
	}
}

// Len returns the number of in-range slots, including the unused slot 0.
func (m *InodeMap) Len() int {
	return len(m.states)
}

// Lookup returns the state of inode i and whether i carries any state at
// all. Every in-range inode does; an out-of-range one only once a record
// has named it.
func (m *InodeMap) Lookup(i uint32) (InodeState, bool) {
	if int64(i) < int64(len(m.states)) {
		return m.states[i], true
	}
	s, ok := m.overflow[i]
	return s, ok
}

// Get returns the state of inode i.
func (m *InodeMap) Get(i uint32) InodeState {
	s, _ := m.Lookup(i)
	return s
}

func (m *InodeMap) set(i uint32, s InodeState) {
	if int64(i) < int64(len(m.states)) {
		m.states[i] = s
		return
	}
	m.overflow[i] = s
}

// MarkFree puts inode i on the free list, whatever its prior state.
func (m *InodeMap) MarkFree(i uint32) {
	m.set(i, InodeState{Status: InodeFree})
}

// Allocate records an inode-table entry for i and returns the state it
// replaced. The root directory is its own parent.
func (m *InodeMap) Allocate(i, declaredLinks uint32) InodeState {
	prior := m.Get(i)
	s := InodeState{Status: InodeAllocated, DeclaredLinks: declaredLinks}
	if i == RootInode {
		s.Parent = RootInode
	}
	m.set(i, s)
	return prior
}

// AddLink counts one more directory entry naming inode i.
func (m *InodeMap) AddLink(i uint32) {
	s := m.Get(i)
	s.ObservedLinks++
	m.set(i, s)
}

// SetParent records dir as the parent of inode i.
func (m *InodeMap) SetParent(i, dir uint32) {
	s := m.Get(i)
	s.Parent = dir
	m.set(i, s)
}

// Each calls fn for every inode carrying state: in-range inodes first, then
// out-of-range ones, each in ascending order.
func (m *InodeMap) Each(fn func(i uint32, s InodeState)) {
	for i, s := range m.states {
		fn(uint32(i), s)
	}
	for _, i := range sortedKeys(m.overflow) {
		fn(i, m.overflow[i])
	}
}
