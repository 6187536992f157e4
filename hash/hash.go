// Package hash computes hashes of values. Hashes are 32-byte values
// constructed from murmur3 fingerprints. They are used to give identities to
// interpreter values and function closures.
package hash

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/spaolacci/murmur3"
)

// Size is the size of a Hash, in bytes.
const Size = 32

// Hash is a 256-bit hash value.
type Hash [Size]byte

// hashPrefix distinguishes the upper half of a Hash from the lower half.  Any
// nonempty constant would do.
var hashPrefix = []byte{0x8a, 0x5c, 0xf1, 0x04}

// Bytes computes the hash of the given data. Bytes(nil) is nonzero, so that a
// hash of empty data is distinguishable from Hash{}.
func Bytes(data []byte) Hash {
	var h Hash
	h0, h1 := murmur3.Sum128(data)
	binary.LittleEndian.PutUint64(h[0:], h0)
	binary.LittleEndian.PutUint64(h[8:], h1)
	hh := murmur3.New128()
	hh.Write(hashPrefix) // nolint: errcheck
	hh.Write(data)       // nolint: errcheck
	h2, h3 := hh.Sum128()
	binary.LittleEndian.PutUint64(h[16:], h2)
	binary.LittleEndian.PutUint64(h[24:], h3)
	h[0] |= 1 // ensure the hash is never Hash{}
	return h
}

// String computes the hash of a string.
func String(v string) Hash {
	return Bytes([]byte(v))
}

// Int computes the hash of an integer.
func Int(v int64) Hash {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return Bytes(buf[:])
}

// Float computes the hash of a float64.
func Float(v float64) Hash {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return Bytes(buf[:])
}

// Bool computes the hash of a boolean.
func Bool(v bool) Hash {
	if v {
		return Bytes([]byte{1, 0x55})
	}
	return Bytes([]byte{0, 0xaa})
}

// Time computes the hash of a timestamp.
func Time(t time.Time) Hash {
	return Int(t.UnixNano())
}

// Merge combines two hashes in an order-dependent way.
// h.Merge(x) != x.Merge(h) in general.
func (h Hash) Merge(o Hash) Hash {
	var buf [2 * Size]byte
	copy(buf[0:], h[:])
	copy(buf[Size:], o[:])
	return Bytes(buf[:])
}

// Add combines two hashes commutatively: h.Add(x) == x.Add(h), and
// Hash{}.Add(x) == x. It is used to hash unordered collections.
func (h Hash) Add(o Hash) Hash {
	var r Hash
	for i := 0; i < Size; i += 8 {
		a := binary.LittleEndian.Uint64(h[i:])
		b := binary.LittleEndian.Uint64(o[i:])
		binary.LittleEndian.PutUint64(r[i:], a+b)
	}
	return r
}
