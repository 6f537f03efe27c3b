package compression

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// NewXZReader returns a reader that decompresses XZ data from r
func NewXZReader(r io.Reader) (io.ReadCloser, error) {
	xzReader, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: xz: %s", errors.ErrDecompressionFailed, err.Error())
	}
	return io.NopCloser(xzReader), nil
}

// CompressXZ writes data to w in XZ format
func CompressXZ(w io.Writer, data []byte) error {
	xzWriter, err := xz.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := xzWriter.Write(data); err != nil {
		xzWriter.Close()
		return fmt.Errorf("failed to compress data: %w", err)
	}
	return xzWriter.Close()
}
