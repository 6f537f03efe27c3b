package fsck

// sweep reports data blocks and non-reserved inodes nothing referenced, and
// every allocated inode whose link count is wrong.
func (c *checker) sweep() {
	for b := 0; b < c.blocks.Len(); b++ {
		block := uint32(b)
		if c.geo.IsReservedBlock(block) {
			continue
		}
		if c.blocks.Get(block).Status == BlockUnreferenced {
			c.report(UnreferencedBlock{Block: block})
		}
	}

	reserved := c.geo.ReservedInodes()
	c.inodes.Each(func(i uint32, s InodeState) {
		switch s.Status {
		case InodeUnreferenced:
			if int64(i) > reserved {
				c.report(FreelistConflict{Category: Unallocated, Subject: InodeSubject, Element: i})
			}
		case InodeAllocated:
			if s.DeclaredLinks != s.ObservedLinks {
				c.report(LinkCountMismatch{Inode: i, Observed: s.ObservedLinks, Declared: s.DeclaredLinks})
			}
		case InodeFree:
		}
	})
}
