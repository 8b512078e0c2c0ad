package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/shogi"
)

func TestAddMoveMatchesHash(t *testing.T) {
	is := is.New(t)
	z := New()

	var squares [shogi.NumSquares]shogi.Piece
	var hands [shogi.NumColors][shogi.NumPieceTypes]int
	from := shogi.MakeSquare(shogi.File2, shogi.Rank8)
	to := shogi.MakeSquare(shogi.File2, shogi.Rank3)
	rook := shogi.MakePiece(shogi.Black, shogi.Rook)
	pawn := shogi.MakePiece(shogi.White, shogi.Pawn)
	squares[from] = rook
	squares[to] = pawn
	hands[shogi.Black][shogi.Pawn] = 1

	h := z.Hash(squares[:], &hands, shogi.Black)

	m := move.MakeBoardMove(rook, from, to, true, pawn)
	h1 := z.AddMove(h, m, hands[shogi.Black][shogi.Pawn])

	squares[from] = shogi.NoPiece
	squares[to] = shogi.MakePiece(shogi.Black, shogi.Dragon)
	hands[shogi.Black][shogi.Pawn] = 2
	is.Equal(h1, z.Hash(squares[:], &hands, shogi.White))
	is.True(h1 != h)

	drop := shogi.MakeSquare(shogi.File5, shogi.Rank5)
	wpawn := shogi.MakePiece(shogi.White, shogi.Pawn)
	hands[shogi.White][shogi.Pawn] = 3
	h2 := z.Hash(squares[:], &hands, shogi.White)
	h3 := z.AddMove(h2, move.MakeDrop(wpawn, drop), 3)
	squares[drop] = wpawn
	hands[shogi.White][shogi.Pawn] = 2
	is.Equal(h3, z.Hash(squares[:], &hands, shogi.Black))
}

func TestNullMoveTogglesSide(t *testing.T) {
	is := is.New(t)
	z := New()
	var squares [shogi.NumSquares]shogi.Piece
	var hands [shogi.NumColors][shogi.NumPieceTypes]int
	h := z.Hash(squares[:], &hands, shogi.Black)
	h1 := z.AddMove(h, move.Null, 0)
	is.Equal(h1, z.Hash(squares[:], &hands, shogi.White))
	is.Equal(z.AddMove(h1, move.Null, 0), h)
}
