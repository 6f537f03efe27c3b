package fsck

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-fscheck/internal/dump"
)

// The test image has 64 blocks and 24 inodes. The inode table starts at
// block 7 and spans 3 blocks, so blocks 0-9 are reserved; inodes 1-10 are
// reserved. Root (2) owns block 10 and lost+found (11) owns block 11.
const testHeader = "SUPERBLOCK,64,24,1024,128,8192,24,11\nGROUP,0,64,24,0,0,3,4,7\n"

type image struct {
	lines     []string
	usedBlock map[uint32]bool
	usedInode map[uint32]bool
}

func newImage() *image {
	img := &image{usedBlock: map[uint32]bool{}, usedInode: map[uint32]bool{}}
	img.inode(2, 'd', 3, 10)
	img.inode(11, 'd', 2, 11)
	img.dirent(2, 2, ".")
	img.dirent(2, 2, "..")
	img.dirent(2, 11, "lost+found")
	img.dirent(11, 11, ".")
	img.dirent(11, 2, "..")
	return img
}

func (img *image) inode(num uint32, typ byte, links uint32, ptrs ...uint32) *image {
	var slots [PointerSlots]uint32
	copy(slots[:], ptrs)
	fields := []string{"INODE", fmt.Sprint(num), string(typ), "644", "0", "0", fmt.Sprint(links),
		"03/14/17 12:00:00", "03/14/17 12:00:00", "03/14/17 12:00:00", "1024", "2"}
	for _, p := range slots {
		fields = append(fields, fmt.Sprint(p))
		if typ != 's' {
			img.usedBlock[p] = true
		}
	}
	img.usedInode[num] = true
	return img.add(strings.Join(fields, ","))
}

func (img *image) dirent(parent, inode uint32, name string) *image {
	return img.add(fmt.Sprintf("DIRENT,%d,0,%d,12,%d,'%s'", parent, inode, len(name), name))
}

func (img *image) add(line string) *image {
	img.lines = append(img.lines, line)
	return img
}

// text renders the image, putting every unused data block and non-reserved
// inode on the free lists except those in skip.
func (img *image) text(skipBlocks, skipInodes []uint32) string {
	skip := func(list []uint32, n uint32) bool {
		for _, s := range list {
			if s == n {
				return true
			}
		}
		return false
	}

	var b strings.Builder
	b.WriteString(testHeader)
	for blk := uint32(10); blk < 64; blk++ {
		if !img.usedBlock[blk] && !skip(skipBlocks, blk) {
			fmt.Fprintf(&b, "BFREE,%d\n", blk)
		}
	}
	for ino := uint32(11); ino <= 24; ino++ {
		if !img.usedInode[ino] && !skip(skipInodes, ino) {
			fmt.Fprintf(&b, "IFREE,%d\n", ino)
		}
	}
	for _, l := range img.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func runCheck(t *testing.T, text string) *Result {
	t.Helper()
	d, err := dump.ParseString(text)
	if err != nil {
		t.Fatalf("failed to parse dump: %v", err)
	}
	res, err := Check(context.Background(), d)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	return res
}

func assertMessages(t *testing.T, res *Result, want ...string) {
	t.Helper()
	got := res.Diagnostics.Messages()
	if len(got) != len(want) {
		t.Fatalf("got %d findings, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("finding %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func assertContains(t *testing.T, res *Result, want ...string) {
	t.Helper()
	got := res.Diagnostics.Messages()
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing finding %q in:\n%s", w, strings.Join(got, "\n"))
		}
	}
}
