package txrecon

import (
	"encoding/binary"

	"github.com/dchest/siphash"

	"github.com/spacemeshos/go-txrecon/hash"
)

// saltTag domain-separates combined salts from other tagged hashes.
const saltTag = "Tx Relay Salting"

// Hasher is a keyed deterministic hash function. The key is fixed when the
// hasher is created, so that equal inputs always produce equal outputs.
type Hasher interface {
	Sum64(data []byte) uint64
}

// SipHasher is a Hasher computing SipHash-2-4 with a fixed 128 bit key.
type SipHasher struct {
	k0, k1 uint64
}

var _ Hasher = SipHasher{}

// NewSipHasher creates a SipHasher with the key (k0, k1).
func NewSipHasher(k0, k1 uint64) SipHasher {
	return SipHasher{k0: k0, k1: k1}
}

func (h SipHasher) Sum64(data []byte) uint64 {
	return siphash.Hash(h.k0, h.k1, data)
}

// salt is the per-connection secret both sides derive from the salts they
// exchanged during negotiation.
type salt [hash.Size]byte

// combineSalts is symmetric, so that both ends of a connection derive the
// same value regardless of which side is local.
func combineSalts(local, remote uint64) salt {
	lo, hi := min(local, remote), max(local, remote)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], lo)
	binary.LittleEndian.PutUint64(buf[8:], hi)
	return hash.Tagged(saltTag, buf[:])
}

// selector produces pseudorandom decisions that are stable for the same
// inputs and independent across transactions.
type selector struct {
	hasher Hasher
}

// rank orders peers for a transaction. Lower ranks are selected first.
func (s selector) rank(txid TxID, peerSalt *salt) uint64 {
	var buf [TxIDSize + hash.Size]byte
	copy(buf[:TxIDSize], txid[:])
	copy(buf[TxIDSize:], peerSalt[:])
	return s.hasher.Sum64(buf[:])
}

// draw returns a number in [0, 1) that depends only on the transaction.
func (s selector) draw(txid TxID) float64 {
	return float64(s.hasher.Sum64(txid[:])>>11) / (1 << 53)
}
