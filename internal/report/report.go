// Package report renders the outcome of a check for people and for tools.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	compression "github.com/deploymenttheory/go-fscheck/internal/common/compressionutil"
	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
	"github.com/deploymenttheory/go-fscheck/internal/common/jsonutil"
	"github.com/deploymenttheory/go-fscheck/internal/common/plistutil"
	"github.com/deploymenttheory/go-fscheck/internal/dump"
	"github.com/deploymenttheory/go-fscheck/internal/fsck"
)

// Format selects how a report is written.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPlist Format = "plist"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatPlist:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, name)
	}
}

// Finding is one reported inconsistency.
type Finding struct {
	Kind    string `json:"kind" plist:"kind"`
	Message string `json:"message" plist:"message"`
}

// Report is the machine-readable form of a check.
type Report struct {
	Source      string        `json:"source" plist:"source"`
	Compression string        `json:"compression" plist:"compression"`
	Digest      string        `json:"digest,omitempty" plist:"digest,omitempty"`
	Geometry    fsck.Geometry `json:"geometry" plist:"geometry"`
	Records     dump.Counts   `json:"records" plist:"records"`
	Count       int           `json:"count" plist:"count"`
	Findings    []Finding     `json:"findings" plist:"findings"`
}

// New assembles a report for a checked dump. digest may be empty.
func New(src *dump.Source, d *dump.Dump, result *fsck.Result, digest string) *Report {
	entries := result.Diagnostics.Entries()
	findings := make([]Finding, 0, len(entries))
	for _, e := range entries {
		findings = append(findings, Finding{Kind: e.Finding.Kind(), Message: e.Message})
	}

	format := compression.FormatNone
	path := ""
	if src != nil {
		format = src.Compression
		path = src.Path
	}

	return &Report{
		Source:      path,
		Compression: string(format),
		Digest:      digest,
		Geometry:    result.Geometry,
		Records:     d.Counts(),
		Count:       len(findings),
		Findings:    findings,
	}
}

// Write renders rep to w. The text format is one finding per line and
// nothing else. plistFormat selects the property list flavour and is ignored
// by the other formats.
func Write(w io.Writer, rep *Report, format Format, plistFormat plistutil.Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, rep)
	case FormatJSON:
		return jsonutil.Encode(w, rep)
	case FormatPlist:
		return plistutil.Encode(w, rep, plistFormat)
	default:
		return fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, format)
	}
}

func writeText(w io.Writer, rep *Report) error {
	bw := bufio.NewWriter(w)
	for _, f := range rep.Findings {
		if _, err := fmt.Fprintln(bw, f.Message); err != nil {
			return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}
	return nil
}
