package dump

import (
	"bytes"
	"fmt"

	compression "github.com/deploymenttheory/go-fscheck/internal/common/compressionutil"
	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// Source is a dump read into memory.
type Source struct {
	Path        string
	Compression compression.Format
	Data        []byte
}

// ReadSource reads the dump at path in full, decompressing it when needed.
// The file is released before ReadSource returns.
func ReadSource(path string) (*Source, error) {
	data, format, err := compression.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFatalInput, err)
	}
	return &Source{Path: path, Compression: format, Data: data}, nil
}

// Parse decodes the source's contents.
func (s *Source) Parse() (*Dump, error) {
	return Parse(bytes.NewReader(s.Data))
}
