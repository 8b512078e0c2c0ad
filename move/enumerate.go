package move

import (
	"github.com/domino14/shogimove/shogi"
)

type direction struct {
	df, dr int
}

var (
	forward      = []direction{{0, -1}}
	knightJumps  = []direction{{-1, -2}, {1, -2}}
	silverSteps  = []direction{{-1, -1}, {0, -1}, {1, -1}, {-1, 1}, {1, 1}}
	goldSteps    = []direction{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}}
	diagonals    = []direction{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	orthogonals  = []direction{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	allNeighbors = append(append([]direction{}, diagonals...), orthogonals...)
)

// movement describes how a piece type moves for Black on an empty board.
// White mirrors it.
type movement struct {
	steps  []direction
	slides []direction
}

var movements = [shogi.NumPieceTypes]movement{
	shogi.Pawn:    {steps: forward},
	shogi.Lance:   {slides: forward},
	shogi.Knight:  {steps: knightJumps},
	shogi.Silver:  {steps: silverSteps},
	shogi.Bishop:  {slides: diagonals},
	shogi.Rook:    {slides: orthogonals},
	shogi.Gold:    {steps: goldSteps},
	shogi.King:    {steps: allNeighbors},
	shogi.PPawn:   {steps: goldSteps},
	shogi.PLance:  {steps: goldSteps},
	shogi.PKnight: {steps: goldSteps},
	shogi.PSilver: {steps: goldSteps},
	shogi.Horse:   {steps: orthogonals, slides: diagonals},
	shogi.Dragon:  {steps: diagonals, slides: orthogonals},
}

func offset(sq shogi.Square, c shogi.Color, d direction, n int) (shogi.Square, bool) {
	sign := 1
	if c == shogi.White {
		sign = -1
	}
	f := int(sq.File()) + sign*d.df*n
	r := int(sq.Rank()) + sign*d.dr*n
	if f < 0 || f >= shogi.NumFiles || r < 0 || r >= shogi.NumRanks {
		return shogi.SquareNone, false
	}
	return shogi.MakeSquare(shogi.File(f), shogi.Rank(r)), true
}

// destinations calls fn for every square piece can reach from sq on an
// otherwise empty board.
func destinations(piece shogi.Piece, sq shogi.Square, fn func(shogi.Square)) {
	mv := movements[piece.Type()]
	c := piece.Color()
	for _, d := range mv.steps {
		if to, ok := offset(sq, c, d, 1); ok {
			fn(to)
		}
	}
	for _, d := range mv.slides {
		for n := 1; ; n++ {
			to, ok := offset(sq, c, d, n)
			if !ok {
				break
			}
			fn(to)
		}
	}
}

// EnumerateQuiet visits every non-capturing board move that a piece could
// make on an empty board, passes IsOk and is not inferior. This is the
// domain PerfectHash is defined over. Returning false from fn stops the
// walk.
func EnumerateQuiet(fn func(Move) bool) {
	stopped := false
	for c := shogi.Black; c <= shogi.White; c++ {
		for pt := shogi.Pawn; pt <= shogi.Dragon; pt++ {
			piece := shogi.MakePiece(c, pt)
			for from := shogi.Square(0); from < shogi.NumSquares; from++ {
				destinations(piece, from, func(to shogi.Square) {
					if stopped {
						return
					}
					for _, promote := range []bool{false, true} {
						m := MakeBoardMove(piece, from, to, promote, shogi.NoPiece)
						if !m.IsOk() || m.IsInferior() {
							continue
						}
						if !fn(m) {
							stopped = true
							return
						}
					}
				})
				if stopped {
					return
				}
			}
		}
	}
}
