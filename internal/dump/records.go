// Package dump decodes the comma-separated metadata dump consumed by the
// checker.
package dump

// Record type keywords, matched against the first field of each line.
const (
	KindSuperblock = "SUPERBLOCK"
	KindGroup      = "GROUP"
	KindFreeBlock  = "BFREE"
	KindFreeInode  = "IFREE"
	KindInode      = "INODE"
	KindDirEntry   = "DIRENT"
	KindIndirect   = "INDIRECT"
)

// MaxIndirectLevel is the deepest indirection an INDIRECT record may name.
const MaxIndirectLevel = 3

// FileType is the single-character type tag of an INODE record.
type FileType byte

const (
	TypeDirectory FileType = 'd'
	TypeRegular   FileType = 'f'
	TypeSymlink   FileType = 's'
	TypeOther     FileType = '?'
)

// Superblock holds the SUPERBLOCK fields the checker uses.
type Superblock struct {
	TotalBlocks           uint32
	TotalInodes           uint32
	BlockSize             uint32
	InodeSize             uint32
	FirstNonReservedInode uint32
}

// Group holds the GROUP fields the checker uses.
type Group struct {
	InodeTableStart uint32
}

// Inode is one INODE record.
type Inode struct {
	Number    uint32
	Type      FileType
	LinkCount uint32

	// Pointers are the 15 block pointer slots. Symlink records may carry
	// fewer; missing slots are zero.
	Pointers [15]uint32
}

// IsSymlink reports whether the record describes a symbolic link, whose
// pointer slots may hold inline path data.
func (i Inode) IsSymlink() bool {
	return i.Type == TypeSymlink
}

// DirEntry is one DIRENT record.
type DirEntry struct {
	Parent uint32
	Inode  uint32
	Name   string

	// Raw is the record text, used to order entries deterministically.
	Raw string
}

// Indirect is one INDIRECT record: a pointer stored inside an indirect block.
type Indirect struct {
	Owner      uint32
	Level      uint8
	Offset     uint32
	Containing uint32
	Referenced uint32
}

// Dump is a fully decoded metadata dump. Record slices keep file order.
type Dump struct {
	Superblock Superblock
	Group      Group
	FreeBlocks []uint32
	FreeInodes []uint32
	Inodes     []Inode
	DirEntries []DirEntry
	Indirects  []Indirect
}

// Counts summarises how many records of each kind were decoded.
type Counts struct {
	FreeBlocks int `json:"free_blocks" plist:"free_blocks"`
	FreeInodes int `json:"free_inodes" plist:"free_inodes"`
	Inodes     int `json:"inodes" plist:"inodes"`
	DirEntries int `json:"dir_entries" plist:"dir_entries"`
	Indirects  int `json:"indirects" plist:"indirects"`
}

// Counts returns per-kind record counts.
func (d *Dump) Counts() Counts {
	return Counts{
		FreeBlocks: len(d.FreeBlocks),
		FreeInodes: len(d.FreeInodes),
		Inodes:     len(d.Inodes),
		DirEntries: len(d.DirEntries),
		Indirects:  len(d.Indirects),
	}
}
