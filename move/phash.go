package move

import (
	"fmt"
)

//go:generate go run ../cmd/phashgen phash_table.go

const (
	perfectHashTableSize = 2048
	perfectHashIndexMask = perfectHashTableSize - 1
	perfectHashSeed      = 0x1f98d073

	// MaxPerfectHash bounds every value returned by PerfectHash.
	MaxPerfectHash = 1 << 14
)

func mix(key uint32) uint32 {
	h := key
	h += perfectHashSeed
	h ^= h >> 16
	h += h << 8
	h ^= h >> 4
	return h
}

func hashIndex(h uint32) uint32 {
	return (h >> 8) & perfectHashIndexMask
}

func hashKey(h uint32) uint32 {
	return (h + (h << 2)) >> 18
}

// PerfectHash returns a small hash of a quiet move for move ordering
// tables. No two quiet moves of the same color share a value; a black and
// a white move may, so tables indexed by it are kept per color. Drops,
// captures, sentinels and inferior moves are outside the hash domain and
// are rejected.
func (m Move) PerfectHash() (uint32, error) {
	if !m.IsRealMove() || !m.IsQuiet() {
		return 0, fmt.Errorf("%w: %v", ErrNotQuiet, m)
	}
	if m.IsInferior() {
		return 0, fmt.Errorf("%w: %v", ErrInferior, m)
	}
	return m.perfectHash(), nil
}

// PerfectHashIndex is the slot of the displacement table used for m. It is
// always in [0, 2047].
func (m Move) PerfectHashIndex() uint32 {
	return hashIndex(mix(uint32(m)))
}

func (m Move) perfectHash() uint32 {
	h := mix(uint32(m))
	return hashKey(h) ^ uint32(perfectHashTable[hashIndex(h)])
}
