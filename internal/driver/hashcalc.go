package driver

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest is a fixed 256-bit hash (same shape as source.File.Hash).
type Digest [32]byte

// combineDigest: H(len(p1) || p1 || len(p2) || p2 ...). Length prefixes keep
// ("ab", "c") and ("a", "bc") apart.
func combineDigest(parts ...[]byte) Digest {
	h := sha256.New()
	var n [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(n[:], uint64(len(p)))
		_, _ = h.Write(n[:])
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
