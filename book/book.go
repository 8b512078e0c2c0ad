// Package book loads an opening book and chooses moves from it.
package book

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/domino14/shogimove/board"
	"github.com/domino14/shogimove/cache"
	"github.com/domino14/shogimove/move"
)

var ErrNoBookMove = errors.New("no book move for position")

type fileMove struct {
	Move   string `yaml:"move"`
	Weight int    `yaml:"weight"`
}

type fileEntry struct {
	Sfen  string     `yaml:"sfen"`
	Moves []fileMove `yaml:"moves"`
}

// Choice is one book move with its relative weight.
type Choice struct {
	Move   move.Move
	Weight int
}

type Book struct {
	entries map[uint64][]Choice
}

func positionKey(pos *board.Position) uint64 {
	return xxhash.Sum64String(pos.BoardSfen())
}

// Load reads a YAML book. Each entry gives a position and the moves that
// may be played from it; every move must be playable in its position.
func Load(r io.Reader) (*Book, error) {
	var file []fileEntry
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &Book{entries: map[uint64][]Choice{}}, nil
		}
		return nil, err
	}
	b := &Book{entries: make(map[uint64][]Choice, len(file))}
	for i, e := range file {
		pos, err := board.FromSfen(e.Sfen)
		if err != nil {
			return nil, fmt.Errorf("book entry %d: %w", i, err)
		}
		key := positionKey(pos)
		for _, fm := range e.Moves {
			if fm.Weight < 0 {
				return nil, fmt.Errorf("book entry %d: negative weight for %s", i, fm.Move)
			}
			m, err := move.FromSfenPosition(fm.Move, pos)
			if err != nil {
				return nil, fmt.Errorf("book entry %d: %w", i, err)
			}
			if !m.IsOk() || !m.IsRealMove() {
				return nil, fmt.Errorf("book entry %d: illegal move %s", i, fm.Move)
			}
			if err := pos.Copy().Play(m); err != nil {
				return nil, fmt.Errorf("book entry %d: %w", i, err)
			}
			b.add(key, Choice{Move: m, Weight: fm.Weight})
		}
	}
	log.Debug().Int("positions", len(b.entries)).Msg("loaded-book")
	return b, nil
}

// add records c under key. A move listed again for the same position,
// whether in one entry or in a transposition, gets the weights summed.
func (b *Book) add(key uint64, c Choice) {
	choices := b.entries[key]
	for i := range choices {
		if choices[i].Move == c.Move {
			choices[i].Weight += c.Weight
			return
		}
	}
	b.entries[key] = append(choices, c)
}

func LoadFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// LoadCached is LoadFile, sharing one copy of the book between callers
// that load the same path.
func LoadCached(path string) (*Book, error) {
	obj, err := cache.Load("book:"+path, func(string) (any, error) {
		return LoadFile(path)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*Book), nil
}

// Len is the number of distinct positions in the book.
func (b *Book) Len() int {
	return len(b.entries)
}

// Lookup returns the book moves for pos. If pos itself is not in the book
// but its mirror image is, the mirrored entry's moves are flipped back.
func (b *Book) Lookup(pos *board.Position) []Choice {
	if choices, ok := b.entries[positionKey(pos)]; ok {
		return choices
	}
	choices, ok := b.entries[positionKey(pos.Flip())]
	if !ok {
		return nil
	}
	return lo.Map(choices, func(c Choice, _ int) Choice {
		return Choice{Move: c.Move.Flip(), Weight: c.Weight}
	})
}

// Pick chooses one book move at random, in proportion to its weight.
// Moves with zero weight are never picked.
func (b *Book) Pick(pos *board.Position) (move.Move, error) {
	choices := lo.Filter(b.Lookup(pos), func(c Choice, _ int) bool {
		return c.Weight > 0
	})
	total := lo.SumBy(choices, func(c Choice) int { return c.Weight })
	if total == 0 {
		return move.None, ErrNoBookMove
	}
	r := frand.Intn(total)
	for _, c := range choices {
		if r < c.Weight {
			return c.Move, nil
		}
		r -= c.Weight
	}
	// unreachable
	return choices[len(choices)-1].Move, nil
}
