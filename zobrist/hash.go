package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/shogi"
)

const bignum = 1<<63 - 2

// MaxHandCount is one more than the most pieces of a single type a hand
// can hold (all 18 pawns).
const MaxHandCount = 19

// generate a zobrist hash for a shogi position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	whiteToMove uint64

	posTable  [shogi.NumSquares][shogi.NumPieces]uint64
	handTable [shogi.NumColors][shogi.NumPieceTypes][MaxHandCount]uint64
}

// New creates a Zobrist with freshly drawn keys. Keys differ between
// processes, so never persist a hash.
func New() *Zobrist {
	z := &Zobrist{}
	z.Initialize()
	return z
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for j := range z.posTable[i] {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	for c := range z.handTable {
		for pt := range z.handTable[c] {
			for n := range z.handTable[c][pt] {
				z.handTable[c][pt][n] = frand.Uint64n(bignum) + 1
			}
		}
	}
	z.whiteToMove = frand.Uint64n(bignum) + 1
}

// Hash computes the key of a position from scratch. Hand counts are indexed
// by piece type.
func (z *Zobrist) Hash(squares []shogi.Piece,
	hands *[shogi.NumColors][shogi.NumPieceTypes]int, sideToMove shogi.Color) uint64 {

	key := uint64(0)
	for i, p := range squares {
		if p == shogi.NoPiece {
			continue
		}
		key ^= z.posTable[i][p]
	}
	for c := range hands {
		for pt, ct := range hands[c] {
			key ^= z.handTable[c][pt][ct]
		}
	}
	if sideToMove == shogi.White {
		key ^= z.whiteToMove
	}
	return key
}

// AddMove updates key for a move that has passed move.IsOk and has been
// checked against the board. handCount is the mover's count, before the
// move, of the dropped type for a drop, or of the captured piece's
// unpromoted type for a capture. It is ignored otherwise.
func (z *Zobrist) AddMove(key uint64, m move.Move, handCount int) uint64 {
	if m.IsRealMove() {
		piece := m.Piece()
		c := piece.Color()
		if m.IsDrop() {
			pt := piece.Type()
			key ^= z.handTable[c][pt][handCount]
			key ^= z.handTable[c][pt][handCount-1]
			key ^= z.posTable[m.To()][piece]
		} else {
			key ^= z.posTable[m.From()][piece]
			if m.IsCapture() {
				captured := m.CapturedPiece()
				key ^= z.posTable[m.To()][captured]
				pt := captured.Type().Unpromoted()
				key ^= z.handTable[c][pt][handCount]
				key ^= z.handTable[c][pt][handCount+1]
			}
			placed := piece
			if m.IsPromotion() {
				placed = shogi.MakePiece(c, piece.Type().Promoted())
			}
			key ^= z.posTable[m.To()][placed]
		}
	}
	key ^= z.whiteToMove
	return key
}
