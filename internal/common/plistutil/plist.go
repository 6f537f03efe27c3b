// Package plistutil provides utilities for encoding property lists
package plistutil

import (
	"fmt"
	"io"
	"strings"

	"howett.net/plist"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// Format represents the plist format
type Format int

const (
	// FormatXML is the XML plist format
	FormatXML Format = iota
	// FormatBinary is the binary plist format
	FormatBinary
	// FormatOpenStep is the OpenStep plist format
	FormatOpenStep
	// FormatGNUStep is the GNUStep plist format
	FormatGNUStep
)

// ParseFormat converts a format name to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "xml":
		return FormatXML, nil
	case "binary":
		return FormatBinary, nil
	case "openstep":
		return FormatOpenStep, nil
	case "gnustep":
		return FormatGNUStep, nil
	default:
		return FormatXML, fmt.Errorf("%w: plist format %s", errors.ErrUnsupportedFormat, name)
	}
}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatBinary:
		return "binary"
	case FormatOpenStep:
		return "openstep"
	case FormatGNUStep:
		return "gnustep"
	default:
		return "unknown"
	}
}

func (f Format) plistFormat() int {
	switch f {
	case FormatBinary:
		return plist.BinaryFormat
	case FormatOpenStep:
		return plist.OpenStepFormat
	case FormatGNUStep:
		return plist.GNUStepFormat
	default:
		return plist.XMLFormat
	}
}

// Encode writes v to w as a property list in the given format. Text formats
// are indented with tabs.
func Encode(w io.Writer, v interface{}, format Format) error {
	encoder := plist.NewEncoderForFormat(w, format.plistFormat())
	if format != FormatBinary {
		encoder.Indent("\t")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("%w: plist: %s", errors.ErrFileWriteError, err.Error())
	}
	return nil
}
