package compression

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// NewBZIP2Reader returns a reader that decompresses BZIP2 data from r
func NewBZIP2Reader(r io.Reader) (io.ReadCloser, error) {
	bzip2Reader, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: bzip2: %s", errors.ErrDecompressionFailed, err.Error())
	}
	return bzip2Reader, nil
}

// CompressBZIP2 writes data to w in BZIP2 format
func CompressBZIP2(w io.Writer, data []byte) error {
	bzip2Writer, err := bzip2.NewWriter(w, nil)
	if err != nil {
		return err
	}
	if _, err := bzip2Writer.Write(data); err != nil {
		bzip2Writer.Close()
		return fmt.Errorf("failed to compress data: %w", err)
	}
	return bzip2Writer.Close()
}
