// Package hasher provides the hash functions used to fingerprint binary
// payload schemas.
package hasher

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
)

// ErrDataIsNil is returned if the passed data is nil.
var ErrDataIsNil = errors.New("data is nil")

// Hasher computes a digest of a byte slice.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

func sum(h hash.Hash, data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	n, err := h.Write(data)
	if n < len(data) || err != nil {
		return nil, fmt.Errorf("failed to write data: %w", err)
	}

	return h.Sum(nil), nil
}

type sha256Hasher struct{}

// NewSHA256Hasher creates a new sha256 Hasher.
func NewSHA256Hasher() Hasher {
	return sha256Hasher{}
}

// Name implements Hasher interface.
func (sha256Hasher) Name() string {
	return "sha256"
}

// Hash implements Hasher interface.
func (sha256Hasher) Hash(data []byte) ([]byte, error) {
	return sum(sha256.New(), data)
}

type xxhash64Hasher struct{}

// NewXXHash64Hasher creates a new Hasher producing 8-byte big-endian XXH64 digests.
func NewXXHash64Hasher() Hasher {
	return xxhash64Hasher{}
}

// Name implements Hasher interface.
func (xxhash64Hasher) Name() string {
	return "xxhash64"
}

// Hash implements Hasher interface.
func (xxhash64Hasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	return binary.BigEndian.AppendUint64(nil, xxhash.Sum64(data)), nil
}
