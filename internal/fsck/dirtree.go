package fsck

import (
	"sort"

	"github.com/deploymenttheory/go-fscheck/internal/dump"
)

// resolveDirectories counts links and checks parent back-references. Entries
// are taken in order of their raw record text so the result does not depend
// on dump order. Each entry validates, then overwrites, exactly one parent
// back-reference.
func (c *checker) resolveDirectories(entries []dump.DirEntry) {
	sorted := make([]dump.DirEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Raw < sorted[j].Raw })

	for _, e := range sorted {
		c.resolveEntry(e)
	}
}

func (c *checker) resolveEntry(e dump.DirEntry) {
	state, known := c.inodes.Lookup(e.Inode)
	if known && state.Status != InodeAllocated {
		c.report(DirEntryIssue{Category: Unallocated, DirInode: e.Parent, Inode: e.Inode, Name: e.Name})
		return
	}
	if e.Inode > c.geo.TotalInodes {
		c.report(DirEntryIssue{Category: Invalid, DirInode: e.Parent, Inode: e.Inode, Name: e.Name})
		return
	}

	c.inodes.AddLink(e.Inode)

	switch e.Name {
	case SelfLink:
		if e.Inode != e.Parent {
			c.report(ParentMismatch{DirInode: e.Parent, Link: SelfLink, Inode: e.Inode, Correct: e.Parent})
		}

	case ParentLink:
		dir := c.inodes.Get(e.Parent)
		if dir.Status != InodeAllocated {
			return
		}
		if dir.Parent != 0 && dir.Parent != e.Inode {
			c.report(ParentMismatch{
				DirInode: e.Parent,
				Link:     ParentLink,
				Inode:    e.Inode,
				Correct:  c.inodes.Get(e.Inode).Parent,
			})
		}
		c.inodes.SetParent(e.Parent, e.Inode)

	default:
		child := c.inodes.Get(e.Inode)
		if child.Parent != 0 && child.Parent != e.Parent {
			c.report(ParentMismatch{DirInode: e.Inode, Link: ParentLink, Inode: child.Parent, Correct: e.Parent})
		}
		c.inodes.SetParent(e.Inode, e.Parent)
	}
}
