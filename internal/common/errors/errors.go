package errors

import (
	"errors"
)

var (
	// General Errors
	ErrUsage            = errors.New("incorrect usage")
	ErrPermissionDenied = errors.New("permission denied")

	// File Errors
	ErrFileNotFound   = errors.New("file not found")
	ErrFileReadError  = errors.New("error reading file")
	ErrFileWriteError = errors.New("error writing to file")

	// Compression Errors
	ErrUnsupportedCompression = errors.New("unsupported compression format")
	ErrDecompressionFailed    = errors.New("decompression failed")

	// Hash Errors
	ErrInvalidHasher = errors.New("invalid hasher")

	// Dump Errors
	ErrFatalInput      = errors.New("fatal input error")
	ErrMissingRecord   = errors.New("required record missing from dump")
	ErrMalformedRecord = errors.New("malformed dump record")
	ErrInvalidGeometry = errors.New("invalid filesystem geometry")

	// Document Errors
	ErrUnsupportedFormat = errors.New("unsupported or malformed document format")

	// Configuration Errors
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrConfigParseError = errors.New("error parsing configuration")
)
