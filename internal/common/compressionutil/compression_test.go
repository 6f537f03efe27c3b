package compression

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	commonerrors "github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		header   []byte
		filename string
		want     Format
	}{
		{"gzip magic", []byte{0x1F, 0x8B, 0x08}, "dump", FormatGzip},
		{"bzip2 magic", []byte("BZh91AY"), "dump", FormatBzip2},
		{"xz magic", []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, "dump", FormatXZ},
		{"magic beats extension", []byte{0x1F, 0x8B}, "dump.xz", FormatGzip},
		{"gz extension", []byte("SUPERB"), "dump.GZ", FormatGzip},
		{"bz2 extension", nil, "dump.csv.bz2", FormatBzip2},
		{"plain", []byte("SUPERB"), "dump.csv", FormatNone},
		{"empty", nil, "", FormatNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.header, tt.filename); got != tt.want {
				t.Errorf("DetectFormat() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("BFREE,42\n"), 500)

	tests := []struct {
		format   Format
		compress func(*bytes.Buffer, []byte) error
	}{
		{FormatGzip, func(b *bytes.Buffer, d []byte) error { return CompressGZIP(b, d) }},
		{FormatBzip2, func(b *bytes.Buffer, d []byte) error { return CompressBZIP2(b, d) }},
		{FormatXZ, func(b *bytes.Buffer, d []byte) error { return CompressXZ(b, d) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.compress(&buf, data); err != nil {
				t.Fatalf("compress failed: %v", err)
			}

			path := filepath.Join(t.TempDir(), "dump")
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			got, format, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %s, want %s", format, tt.format)
			}
			if !bytes.Equal(got, data) {
				t.Errorf("decompressed %d bytes, want %d", len(got), len(data))
			}
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := ReadFile(filepath.Join(dir, "missing")); !errors.Is(err, commonerrors.ErrFileNotFound) {
		t.Errorf("missing file: expected ErrFileNotFound, got %v", err)
	}

	corrupt := filepath.Join(dir, "dump.csv")
	if err := os.WriteFile(corrupt, []byte{0x1F, 0x8B, 0x00, 0x01, 0x02}, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, _, err := ReadFile(corrupt); !errors.Is(err, commonerrors.ErrDecompressionFailed) {
		t.Errorf("corrupt gzip: expected ErrDecompressionFailed, got %v", err)
	}

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	data, format, err := ReadFile(empty)
	if err != nil || format != FormatNone || len(data) != 0 {
		t.Errorf("empty file = %q, %s, %v", data, format, err)
	}
}

func TestNewReaderUnsupported(t *testing.T) {
	if _, err := NewReader(bytes.NewReader(nil), Format("zstd")); !errors.Is(err, commonerrors.ErrUnsupportedCompression) {
		t.Errorf("expected ErrUnsupportedCompression, got %v", err)
	}
}
