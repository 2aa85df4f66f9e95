// Package hash provides the digests used for peer salts and synthetic
// transaction ids.
package hash

import "github.com/minio/sha256-simd"

const (
	// Size is an alias to minio sha256.Size (32 bytes).
	Size = sha256.Size
)

var (
	// New is an alias to minio sha256.New.
	New = sha256.New
	// Sum is an alias to minio sha256.Sum256.
	Sum = sha256.Sum256
)

// Tagged computes SHA256(SHA256(tag) || SHA256(tag) || chunks...).
// Prefixing the message with the doubled tag digest keeps hashes computed
// for different purposes from colliding with each other.
func Tagged(tag string, chunks ...[]byte) [Size]byte {
	tagDigest := Sum([]byte(tag))
	h := New()
	h.Write(tagDigest[:])
	h.Write(tagDigest[:])
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	var out [Size]byte
	h.Sum(out[:0])
	return out
}
