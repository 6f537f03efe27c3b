package compression

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// NewGZIPReader returns a reader that decompresses GZIP data from r
func NewGZIPReader(r io.Reader) (io.ReadCloser, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %s", errors.ErrDecompressionFailed, err.Error())
	}
	return gzipReader, nil
}

// CompressGZIP writes data to w in GZIP format
func CompressGZIP(w io.Writer, data []byte) error {
	gzipWriter := gzip.NewWriter(w)
	if _, err := gzipWriter.Write(data); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("failed to compress data: %w", err)
	}
	return gzipWriter.Close()
}
