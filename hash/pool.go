package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

// hashers are reset before they are returned to the pool.
var hashers = sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// Sum32 computes the 32-byte blake3 digest of the concatenated chunks.
func Sum32(chunks ...[]byte) [32]byte {
	h := hashers.Get().(*blake3.Hasher)
	defer func() {
		h.Reset()
		hashers.Put(h)
	}()
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
