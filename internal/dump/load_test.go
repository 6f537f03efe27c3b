package dump

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	compression "github.com/deploymenttheory/go-fscheck/internal/common/compressionutil"
	commonerrors "github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

func TestReadSourceCompressed(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		format   compression.Format
		compress func(*bytes.Buffer, []byte) error
	}{
		{"plain", "dump.csv", compression.FormatNone, func(b *bytes.Buffer, d []byte) error { _, err := b.Write(d); return err }},
		{"gzip", "dump.csv.gz", compression.FormatGzip, func(b *bytes.Buffer, d []byte) error { return compression.CompressGZIP(b, d) }},
		{"bzip2", "dump.csv.bz2", compression.FormatBzip2, func(b *bytes.Buffer, d []byte) error { return compression.CompressBZIP2(b, d) }},
		{"xz", "dump.csv.xz", compression.FormatXZ, func(b *bytes.Buffer, d []byte) error { return compression.CompressXZ(b, d) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.compress(&buf, []byte(sample)); err != nil {
				t.Fatalf("failed to build fixture: %v", err)
			}
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			src, err := ReadSource(path)
			if err != nil {
				t.Fatalf("ReadSource failed: %v", err)
			}
			if src.Compression != tt.format {
				t.Errorf("Compression = %s, want %s", src.Compression, tt.format)
			}
			if string(src.Data) != sample {
				t.Errorf("decoded data does not match")
			}

			d, err := src.Parse()
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(d.Inodes) != 2 {
				t.Errorf("parsed %d inodes, want 2", len(d.Inodes))
			}
		})
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, commonerrors.ErrFileNotFound) || !errors.Is(err, commonerrors.ErrFatalInput) {
		t.Errorf("expected fatal file-not-found error, got %v", err)
	}
}
