// Package history keeps the quiet-move history scores used to order moves
// during search. Moves are indexed by their perfect hash, which is
// collision-free among the quiet moves of one color, so each color gets
// its own table.
package history

import (
	"sync/atomic"

	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/shogi"
)

// Max is the magnitude scores converge towards.
const Max = 1 << 14

const maxBonus = 400

// Table can be shared by several search threads. Updates from different
// threads may interleave; each entry stays within [-Max, Max].
type Table struct {
	scores [shogi.NumColors][move.MaxPerfectHash]atomic.Int32
}

func New() *Table {
	return &Table{}
}

// Score returns the history score of m for color c. Moves outside the
// perfect hash domain have no history and return the error PerfectHash
// gives.
func (t *Table) Score(c shogi.Color, m move.Move) (int, error) {
	h, err := m.PerfectHash()
	if err != nil {
		return 0, err
	}
	return int(t.scores[c][h].Load()), nil
}

// Update rewards best and penalises every quiet move searched before it.
// quiets is in search order and may include best. Nothing is written unless
// every move up to best is hashable.
func (t *Table) Update(c shogi.Color, quiets []move.Move, best move.Move, depth int) error {
	hashes := make([]uint32, 0, len(quiets))
	for _, m := range quiets {
		h, err := m.PerfectHash()
		if err != nil {
			return err
		}
		hashes = append(hashes, h)
		if m == best {
			break
		}
	}
	bonus := min(depth*depth, maxBonus)
	for i, h := range hashes {
		good := quiets[i] == best
		update(&t.scores[c][h], bonus, good)
	}
	return nil
}

// exponential moving average towards +Max or -Max
func update(v *atomic.Int32, bonus int, good bool) {
	target := int32(-Max)
	if good {
		target = Max
	}
	for {
		old := v.Load()
		next := old + (target-old)*int32(bonus)/512
		if v.CompareAndSwap(old, next) {
			return
		}
	}
}

// Clear resets every score. It must not run concurrently with a search.
func (t *Table) Clear() {
	for c := range t.scores {
		for i := range t.scores[c] {
			t.scores[c][i].Store(0)
		}
	}
}
