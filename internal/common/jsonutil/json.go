// Package jsonutil provides helpers for reading and writing JSON documents
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// Encode writes v to w as indented JSON followed by a newline
func Encode(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("%w: json: %s", errors.ErrFileWriteError, err.Error())
	}
	return nil
}

// Decode reads a single JSON document from r into v, rejecting fields v does
// not declare
func Decode(r io.Reader, v interface{}) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: json: %s", errors.ErrUnsupportedFormat, err.Error())
	}
	return nil
}
