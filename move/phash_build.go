package move

import (
	"errors"
	"fmt"
	"sort"

	"github.com/domino14/shogimove/shogi"
)

var ErrNoDisplacement = errors.New("no perfect hash displacement")

// BuildPerfectHashTable computes a displacement table that makes
// PerfectHash collision-free among the quiet moves of each color.
// Slots are filled largest first; each takes the smallest displacement
// that keeps its moves clear of every value already handed out to their
// color. The result is deterministic.
func BuildPerfectHashTable() ([perfectHashTableSize]uint16, error) {
	type entry struct {
		color shogi.Color
		key   uint32
	}
	var table [perfectHashTableSize]uint16
	var slots [perfectHashTableSize][]entry
	EnumerateQuiet(func(m Move) bool {
		h := mix(uint32(m))
		idx := hashIndex(h)
		slots[idx] = append(slots[idx], entry{m.Piece().Color(), hashKey(h)})
		return true
	})

	order := make([]int, perfectHashTableSize)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(slots[order[a]]) > len(slots[order[b]])
	})

	var used [shogi.NumColors][MaxPerfectHash]bool
	for _, idx := range order {
		slot := slots[idx]
		if len(slot) == 0 {
			continue
		}
		// displacement cannot separate two keys that are already equal
		var keys [shogi.NumColors]map[uint32]bool
		for _, e := range slot {
			if keys[e.color] == nil {
				keys[e.color] = map[uint32]bool{}
			}
			if keys[e.color][e.key] {
				return table, fmt.Errorf("%w: slot %d has a repeated key", ErrNoDisplacement, idx)
			}
			keys[e.color][e.key] = true
		}

		found := false
		for d := uint32(0); d < MaxPerfectHash; d++ {
			free := true
			for _, e := range slot {
				if used[e.color][e.key^d] {
					free = false
					break
				}
			}
			if !free {
				continue
			}
			for _, e := range slot {
				used[e.color][e.key^d] = true
			}
			table[idx] = uint16(d)
			found = true
			break
		}
		if !found {
			return table, fmt.Errorf("%w: slot %d", ErrNoDisplacement, idx)
		}
	}
	return table, nil
}
