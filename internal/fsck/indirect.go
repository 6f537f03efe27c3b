package fsck

import "github.com/deploymenttheory/go-fscheck/internal/dump"

// scanIndirect claims the blocks referenced from inside indirect blocks.
// When several problems apply, invalid beats reserved beats duplicate.
func (c *checker) scanIndirect(refs []dump.Indirect) {
	for _, ref := range refs {
		level := Level(ref.Level)
		block := ref.Referenced

		var (
			category Category
			found    bool
		)
		if c.blocks.Get(block).Status == BlockOwned {
			category, found = Duplicate, true
		}
		if c.geo.IsReservedBlock(block) {
			category, found = Reserved, true
		}
		if !c.geo.IsValidBlock(block) {
			category, found = Invalid, true
		}
		if found {
			c.report(BlockIssue{Category: category, Level: level, Block: block, Inode: ref.Owner, Offset: ref.Offset})
		}

		c.blocks.Claim(block, level, ref.Owner, ref.Offset)
	}
}
