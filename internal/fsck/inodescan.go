package fsck

import "github.com/deploymenttheory/go-fscheck/internal/dump"

// scanInodes allocates every inode in the table and claims the blocks its
// pointer slots reference.
func (c *checker) scanInodes(inodes []dump.Inode) {
	for _, ino := range inodes {
		if c.inodes.Get(ino.Number).Status == InodeFree {
			c.report(FreelistConflict{Category: Allocated, Subject: InodeSubject, Element: ino.Number})
		}
		c.inodes.Allocate(ino.Number, ino.LinkCount)

		// Symlink slots may hold the target path rather than block numbers.
		if ino.IsSymlink() {
			continue
		}

		for slot, block := range ino.Pointers {
			if block == 0 {
				continue
			}
			c.claimSlot(ino.Number, slot, block)
		}
	}
}

func (c *checker) claimSlot(inode uint32, slot int, block uint32) {
	level := SlotLevel(slot)
	offset := SlotOffset(slot)

	if !c.geo.IsDataBlock(block) {
		category := Invalid
		if c.geo.IsReservedBlock(block) {
			category = Reserved
		}
		c.report(BlockIssue{Category: category, Level: level, Block: block, Inode: inode, Offset: offset})
	}

	prior := c.blocks.Claim(block, level, inode, offset)
	switch prior.Status {
	case BlockFree:
		c.report(FreelistConflict{Category: Allocated, Subject: BlockSubject, Element: block})
	case BlockOwned:
		c.report(BlockIssue{Category: Duplicate, Level: level, Block: block, Inode: inode, Offset: offset})
		c.report(BlockIssue{Category: Duplicate, Level: prior.Level, Block: block, Inode: prior.Owner, Offset: prior.Offset})
	case BlockUnreferenced:
	}
}
