package fsck

// ingestFreeLists marks every listed block and inode free. Nothing is
// reported here; conflicts surface when an allocation is seen later.
func (c *checker) ingestFreeLists(blocks, inodes []uint32) {
	for _, b := range blocks {
		c.blocks.MarkFree(b)
	}
	for _, i := range inodes {
		c.inodes.MarkFree(i)
	}
}
