// Package fsck cross-references the records of a metadata dump and reports
// every structural inconsistency it finds.
//
// A check runs in fixed phases, each depending on the state left by the one
// before: free lists, inode table, directory entries, indirect-block
// contents, then a final sweep for leftovers and link-count mismatches.
package fsck

import (
	"context"

	"github.com/deploymenttheory/go-fscheck/internal/dump"
	"github.com/deploymenttheory/go-fscheck/internal/logger"
)

// Result is the outcome of a check.
type Result struct {
	Geometry    Geometry
	Blocks      *BlockMap
	Inodes      *InodeMap
	Diagnostics *Diagnostics
}

// Check runs every phase over d. The returned error is either a fatal input
// error from the geometry or the context's error; inconsistencies are
// findings in the result, never errors.
func Check(ctx context.Context, d *dump.Dump) (*Result, error) {
	geo, err := NewGeometry(d.Superblock, d.Group)
	if err != nil {
		return nil, err
	}

	c := newChecker(geo)
	logger.LogDebug("Derived filesystem geometry", map[string]interface{}{
		"total_blocks":        geo.TotalBlocks,
		"total_inodes":        geo.TotalInodes,
		"last_reserved_block": geo.LastReservedBlock(),
		"reserved_inodes":     geo.ReservedInodes(),
	})

	phases := []struct {
		name string
		run  func()
	}{
		{"free lists", func() { c.ingestFreeLists(d.FreeBlocks, d.FreeInodes) }},
		{"inode table", func() { c.scanInodes(d.Inodes) }},
		{"directory entries", func() { c.resolveDirectories(d.DirEntries) }},
		{"indirect blocks", func() { c.scanIndirect(d.Indirects) }},
		{"final sweep", c.sweep},
	}

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before := c.diag.Len()
		phase.run()
		logger.LogDebug("Completed check phase", map[string]interface{}{
			"phase":    phase.name,
			"findings": c.diag.Len() - before,
		})
	}

	if overflow := c.blocks.Overflow(); len(overflow) > 0 {
		logger.LogWarn("Dump references blocks beyond the block count", map[string]interface{}{
			"count": len(overflow),
			"first": overflow[0],
		})
	}

	return &Result{
		Geometry:    geo,
		Blocks:      c.blocks,
		Inodes:      c.inodes,
		Diagnostics: c.diag,
	}, nil
}

// checker owns the ownership maps and the findings for a single run.
type checker struct {
	geo    Geometry
	blocks *BlockMap
	inodes *InodeMap
	diag   *Diagnostics
}

func newChecker(geo Geometry) *checker {
	return &checker{
		geo:    geo,
		blocks: NewBlockMap(geo.TotalBlocks),
		inodes: NewInodeMap(geo.TotalInodes),
		diag:   NewDiagnostics(),
	}
}

func (c *checker) report(f Finding) {
	c.diag.Add(f)
}
