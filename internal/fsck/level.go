package fsck

import "fmt"

// Level is the depth of pointer indirection through which a block is
// addressed.
type Level uint8

const (
	Direct Level = iota
	Single
	Double
	Triple
)

const (
	// DirectSlots is the number of direct block pointers held by an inode.
	DirectSlots = 12

	// PointerSlots is the total number of block pointers held by an inode.
	PointerSlots = 15
)

// indirectSlotOffsets are the logical offsets reported for the single,
// double and triple indirect pointer slots.
var indirectSlotOffsets = [...]uint32{12, 268, 65804}

// SlotLevel returns the indirection level of inode pointer slot n.
func SlotLevel(n int) Level {
	if n < DirectSlots {
		return Direct
	}
	return Level(n - DirectSlots + 1)
}

// SlotOffset returns the logical offset reported for a claim made through
// inode pointer slot n. Every direct slot reports 0.
func SlotOffset(n int) uint32 {
	if n < DirectSlots {
		return 0
	}
	return indirectSlotOffsets[n-DirectSlots]
}

// Valid reports whether l is one of the four known levels.
func (l Level) Valid() bool {
	return l <= Triple
}

func (l Level) String() string {
	switch l {
	case Direct:
		return "direct"
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}
