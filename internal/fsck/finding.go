package fsck

import "fmt"

// Finding is one detected inconsistency.
type Finding interface {
	// Kind is a stable identifier for the variant, used by structured reports.
	Kind() string

	// Render returns the canonical report line.
	Render() string
}

// BlockIssue is a block pointer that is invalid, reserved or claimed twice.
type BlockIssue struct {
	Category Category
	Level    Level
	Block    uint32
	Inode    uint32
	Offset   uint32
}

func (BlockIssue) Kind() string { return "block" }

func (f BlockIssue) Render() string {
	return fmt.Sprintf("%s BLOCK %d IN INODE %d AT OFFSET %d",
		f.Category.BlockLabel(f.Level), f.Block, f.Inode, f.Offset)
}

// UnreferencedBlock is a data block that is neither owned nor free.
type UnreferencedBlock struct {
	Block uint32
}

func (UnreferencedBlock) Kind() string { return "unreferenced_block" }

func (f UnreferencedBlock) Render() string {
	return fmt.Sprintf("UNREFERENCED BLOCK %d", f.Block)
}

// FreelistConflict is an element whose allocation state disagrees with the
// free list it belongs to.
type FreelistConflict struct {
	Category Category
	Subject  Subject
	Element  uint32
}

func (FreelistConflict) Kind() string { return "freelist" }

func (f FreelistConflict) Render() string {
	label := f.Category.SubjectLabel(f.Subject)
	not := ""
	if len(label) > 0 && label[0] == 'U' {
		not = "NOT "
	}
	return fmt.Sprintf("%s %d %sON FREELIST", label, f.Element, not)
}

// LinkCountMismatch is an inode whose declared link count differs from the
// number of directory entries naming it.
type LinkCountMismatch struct {
	Inode    uint32
	Observed uint32
	Declared uint32
}

func (LinkCountMismatch) Kind() string { return "link_count" }

func (f LinkCountMismatch) Render() string {
	return fmt.Sprintf("INODE %d HAS %d LINKS BUT LINKCOUNT IS %d", f.Inode, f.Observed, f.Declared)
}

// DirEntryIssue is a directory entry naming an unallocated or out-of-range
// inode.
type DirEntryIssue struct {
	Category Category
	DirInode uint32
	Inode    uint32
	Name     string
}

func (DirEntryIssue) Kind() string { return "directory_entry" }

func (f DirEntryIssue) Render() string {
	return fmt.Sprintf("DIRECTORY INODE %d NAME '%s' %s INODE %d",
		f.DirInode, f.Name, f.Category.Label(), f.Inode)
}

const (
	// SelfLink is the name of a directory's entry for itself.
	SelfLink = "."

	// ParentLink is the name of a directory's entry for its parent.
	ParentLink = ".."
)

// ParentMismatch is a "." or ".." entry that disagrees with the directory
// tree.
type ParentMismatch struct {
	DirInode uint32
	Link     string
	Inode    uint32
	Correct  uint32
}

func (ParentMismatch) Kind() string { return "parent" }

func (f ParentMismatch) Render() string {
	return fmt.Sprintf("DIRECTORY INODE %d NAME '%s' LINK TO INODE %d SHOULD BE %d",
		f.DirInode, f.Link, f.Inode, f.Correct)
}
