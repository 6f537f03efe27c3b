package compression

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// Format identifies the compression wrapping of a file.
type Format string

const (
	FormatNone  Format = "none"
	FormatGzip  Format = "gzip"
	FormatBzip2 Format = "bzip2"
	FormatXZ    Format = "xz"
)

var magicNumbers = []struct {
	format Format
	magic  []byte
}{
	{FormatGzip, []byte{0x1F, 0x8B}},
	{FormatBzip2, []byte{0x42, 0x5A, 0x68}},
	{FormatXZ, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}},
}

// headerLen is the number of bytes needed to recognise every magic number.
const headerLen = 6

// DetectFormat determines the compression format using magic numbers first
// and the file extension second. Anything unrecognised is FormatNone.
func DetectFormat(header []byte, filename string) Format {
	for _, m := range magicNumbers {
		if bytes.HasPrefix(header, m.magic) {
			return m.format
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz", ".gzip":
		return FormatGzip
	case ".bz2", ".bzip2":
		return FormatBzip2
	case ".xz":
		return FormatXZ
	default:
		return FormatNone
	}
}

// NewReader wraps r so that reads return decompressed data.
func NewReader(r io.Reader, format Format) (io.ReadCloser, error) {
	switch format {
	case FormatNone:
		return io.NopCloser(r), nil
	case FormatGzip:
		return NewGZIPReader(r)
	case FormatBzip2:
		return NewBZIP2Reader(r)
	case FormatXZ:
		return NewXZReader(r)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedCompression, format)
	}
}

// ReadFile reads the whole of path, decompressing it if it is wrapped in a
// supported format. The file is closed before ReadFile returns.
func ReadFile(path string) ([]byte, Format, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, FormatNone, fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, FormatNone, fmt.Errorf("%w: %s", errors.ErrPermissionDenied, path)
		}
		return nil, FormatNone, fmt.Errorf("%w: %s", errors.ErrFileReadError, err.Error())
	}
	defer file.Close()

	buffered := bufio.NewReader(file)
	header, err := buffered.Peek(headerLen)
	if err != nil && err != io.EOF {
		return nil, FormatNone, fmt.Errorf("%w: %s", errors.ErrFileReadError, err.Error())
	}

	format := DetectFormat(header, path)
	reader, err := NewReader(buffered, format)
	if err != nil {
		return nil, format, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		if format == FormatNone {
			return nil, format, fmt.Errorf("%w: %s", errors.ErrFileReadError, err.Error())
		}
		return nil, format, fmt.Errorf("%w: %s: %s", errors.ErrDecompressionFailed, format, err.Error())
	}

	return data, format, nil
}
