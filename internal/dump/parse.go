package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

const maxLineLength = 1 << 20

// Parse decodes a dump. Only the first SUPERBLOCK and first GROUP record are
// used and both must be present. Any field the checker consumes that fails
// to decode makes the whole dump untrustworthy and is reported as
// errors.ErrFatalInput.
func Parse(r io.Reader) (*Dump, error) {
	p := &parser{d: &Dump{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimSuffix(scanner.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %s", errors.ErrFatalInput, errors.ErrFileReadError, err.Error())
	}

	if !p.haveSuperblock {
		return nil, fmt.Errorf("%w: %w: %s", errors.ErrFatalInput, errors.ErrMissingRecord, KindSuperblock)
	}
	if !p.haveGroup {
		return nil, fmt.Errorf("%w: %w: %s", errors.ErrFatalInput, errors.ErrMissingRecord, KindGroup)
	}

	return p.d, nil
}

// ParseString decodes a dump held in memory.
func ParseString(s string) (*Dump, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	d              *Dump
	line           int
	haveSuperblock bool
	haveGroup      bool
}

func (p *parser) parseLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	fields := strings.Split(line, ",")
	fr := &fieldReader{fields: fields, kind: fields[0], line: p.line}

	switch fields[0] {
	case KindSuperblock:
		if p.haveSuperblock {
			return nil
		}
		fr.require(6)
		p.d.Superblock = Superblock{
			TotalBlocks:           fr.uint(1, "total_blocks"),
			TotalInodes:           fr.uint(2, "total_inodes"),
			BlockSize:             fr.uint(3, "block_size"),
			InodeSize:             fr.uint(4, "inode_size"),
			FirstNonReservedInode: fr.uint(len(fields)-1, "first_nonreserved_inode"),
		}
		p.haveSuperblock = fr.err == nil

	case KindGroup:
		if p.haveGroup {
			return nil
		}
		fr.require(2)
		p.d.Group = Group{InodeTableStart: fr.uint(len(fields)-1, "inode_table_block")}
		p.haveGroup = fr.err == nil

	case KindFreeBlock:
		fr.require(2)
		p.d.FreeBlocks = append(p.d.FreeBlocks, fr.uint(1, "block"))

	case KindFreeInode:
		fr.require(2)
		p.d.FreeInodes = append(p.d.FreeInodes, fr.uint(1, "inode"))

	case KindInode:
		p.d.Inodes = append(p.d.Inodes, p.inode(fr))

	case KindDirEntry:
		fr.require(7)
		entry := DirEntry{
			Parent: fr.uint(1, "parent_inode"),
			Inode:  fr.uint(3, "inode"),
			Raw:    line,
		}
		if fr.err == nil {
			entry.Name = strings.ReplaceAll(strings.Join(fields[6:], ","), "'", "")
		}
		p.d.DirEntries = append(p.d.DirEntries, entry)

	case KindIndirect:
		fr.require(6)
		ind := Indirect{
			Owner:      fr.uint(1, "inode"),
			Offset:     fr.uint(3, "offset"),
			Containing: fr.uint(4, "indirect_block"),
			Referenced: fr.uint(5, "referenced_block"),
		}
		level := fr.uint(2, "level")
		if fr.err == nil && level > MaxIndirectLevel {
			fr.fail("level %d out of range", level)
		}
		ind.Level = uint8(level)
		p.d.Indirects = append(p.d.Indirects, ind)
	}

	return fr.err
}

func (p *parser) inode(fr *fieldReader) Inode {
	fr.require(12)
	ino := Inode{
		Number:    fr.uint(1, "inode"),
		LinkCount: fr.uint(6, "link_count"),
	}
	if fr.err != nil {
		return ino
	}

	tag := strings.TrimSpace(fr.fields[2])
	if len(tag) != 1 {
		fr.fail("type %q is not a single character", tag)
		return ino
	}
	ino.Type = FileType(tag[0])

	const firstPointer = 12
	if !ino.IsSymlink() {
		fr.require(firstPointer + len(ino.Pointers))
	}
	for i := range ino.Pointers {
		if firstPointer+i >= len(fr.fields) {
			break
		}
		ino.Pointers[i] = fr.uint(firstPointer+i, fmt.Sprintf("block_pointer_%d", i))
	}
	return ino
}

// fieldReader decodes numeric fields of one record, keeping the first error.
type fieldReader struct {
	fields []string
	kind   string
	line   int
	err    error
}

func (fr *fieldReader) fail(format string, args ...interface{}) {
	if fr.err != nil {
		return
	}
	fr.err = fmt.Errorf("%w: %w: line %d (%s): %s",
		errors.ErrFatalInput, errors.ErrMalformedRecord, fr.line, fr.kind, fmt.Sprintf(format, args...))
}

func (fr *fieldReader) require(n int) {
	if len(fr.fields) < n {
		fr.fail("expected at least %d fields, found %d", n, len(fr.fields))
	}
}

func (fr *fieldReader) uint(i int, name string) uint32 {
	if fr.err != nil {
		return 0
	}
	if i < 0 || i >= len(fr.fields) {
		fr.fail("missing field %s", name)
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(fr.fields[i]), 10, 32)
	if err != nil {
		fr.fail("field %s: %q is not an unsigned integer", name, fr.fields[i])
		return 0
	}
	return uint32(v)
}
