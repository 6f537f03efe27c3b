package fsck

import (
	"fmt"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
	"github.com/deploymenttheory/go-fscheck/internal/dump"
)

// RootInode is the inode number of the root directory.
const RootInode = 2

// Geometry is the filesystem layout derived from the superblock and group
// descriptor.
type Geometry struct {
	TotalBlocks           uint32 `json:"total_blocks" plist:"total_blocks"`
	TotalInodes           uint32 `json:"total_inodes" plist:"total_inodes"`
	BlockSize             uint32 `json:"block_size" plist:"block_size"`
	InodeSize             uint32 `json:"inode_size" plist:"inode_size"`
	FirstNonReservedInode uint32 `json:"first_nonreserved_inode" plist:"first_nonreserved_inode"`
	InodeTableStart       uint32 `json:"inode_table_start" plist:"inode_table_start"`
}

// NewGeometry derives the layout from the dump's metadata records.
func NewGeometry(sb dump.Superblock, g dump.Group) (Geometry, error) {
	if sb.BlockSize == 0 {
		return Geometry{}, fmt.Errorf("%w: %w: block size is zero", errors.ErrFatalInput, errors.ErrInvalidGeometry)
	}
	return Geometry{
		TotalBlocks:           sb.TotalBlocks,
		TotalInodes:           sb.TotalInodes,
		BlockSize:             sb.BlockSize,
		InodeSize:             sb.InodeSize,
		FirstNonReservedInode: sb.FirstNonReservedInode,
		InodeTableStart:       g.InodeTableStart,
	}, nil
}

// InodeTableBlocks is the number of blocks the inode table spans.
func (g Geometry) InodeTableBlocks() int64 {
	bytes := uint64(g.TotalInodes) * uint64(g.InodeSize)
	bs := uint64(g.BlockSize)
	return int64((bytes + bs - 1) / bs)
}

// LastReservedBlock is the last block of the inode table. Every block up to
// and including it belongs to filesystem bookkeeping.
func (g Geometry) LastReservedBlock() int64 {
	return int64(g.InodeTableStart) + g.InodeTableBlocks() - 1
}

// ReservedInodes is the number of inodes reserved below the first
// non-reserved one.
func (g Geometry) ReservedInodes() int64 {
	return int64(g.FirstNonReservedInode) - 1
}

// IsReservedBlock reports whether b lies in the bookkeeping region.
func (g Geometry) IsReservedBlock(b uint32) bool {
	return int64(b) <= g.LastReservedBlock()
}

// IsValidBlock reports whether b is below the block count.
func (g Geometry) IsValidBlock(b uint32) bool {
	return b < g.TotalBlocks
}

// IsDataBlock reports whether b may legally be claimed by an inode.
func (g Geometry) IsDataBlock(b uint32) bool {
	return !g.IsReservedBlock(b) && g.IsValidBlock(b)
}
