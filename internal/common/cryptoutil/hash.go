// Package cryptoutil provides digest helpers used to fingerprint dumps
package cryptoutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

// HashAlgorithm represents supported hash algorithms
type HashAlgorithm string

const (
	// None disables hashing
	None HashAlgorithm = "none"

	// SHA256 algorithm
	SHA256 HashAlgorithm = "sha256"

	// BLAKE2b256 algorithm (BLAKE2b with a 256-bit digest)
	BLAKE2b256 HashAlgorithm = "blake2b"
)

// Hasher provides an interface for hashing operations
type Hasher interface {
	// Algorithm returns the algorithm the hasher computes
	Algorithm() HashAlgorithm

	// Hash hashes the provided data
	Hash(data []byte) (string, error)
}

// hasherImpl implements the Hasher interface
type hasherImpl struct {
	algorithm HashAlgorithm
	newHash   func() (hash.Hash, error)
}

// NewHasher creates a new Hasher for the specified algorithm
func NewHasher(algorithm HashAlgorithm) (Hasher, error) {
	var newHashFunc func() (hash.Hash, error)

	switch HashAlgorithm(strings.ToLower(string(algorithm))) {
	case SHA256:
		newHashFunc = func() (hash.Hash, error) { return sha256.New(), nil }
	case BLAKE2b256:
		newHashFunc = func() (hash.Hash, error) { return blake2b.New256(nil) }
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidHasher, algorithm)
	}

	return &hasherImpl{
		algorithm: HashAlgorithm(strings.ToLower(string(algorithm))),
		newHash:   newHashFunc,
	}, nil
}

func (h *hasherImpl) Algorithm() HashAlgorithm {
	return h.algorithm
}

// Hash hashes the provided data
func (h *hasherImpl) Hash(data []byte) (string, error) {
	hasher, err := h.newHash()
	if err != nil {
		return "", fmt.Errorf("hash operation failed: %w", err)
	}
	if _, err := hasher.Write(data); err != nil {
		return "", fmt.Errorf("hash operation failed: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Digest hashes data with algorithm and returns it in "algorithm:hex" form.
// It returns an empty string when algorithm is None or empty.
func Digest(algorithm HashAlgorithm, data []byte) (string, error) {
	if algorithm == "" || algorithm == None {
		return "", nil
	}

	hasher, err := NewHasher(algorithm)
	if err != nil {
		return "", err
	}

	sum, err := hasher.Hash(data)
	if err != nil {
		return "", err
	}
	return string(hasher.Algorithm()) + ":" + sum, nil
}

// ParseAlgorithm converts an algorithm name, in any case, to a
// HashAlgorithm. An empty name means None.
func ParseAlgorithm(name string) (HashAlgorithm, error) {
	switch alg := HashAlgorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case "", None:
		return None, nil
	case SHA256, BLAKE2b256:
		return alg, nil
	default:
		return None, fmt.Errorf("%w: %s", errors.ErrInvalidHasher, name)
	}
}
