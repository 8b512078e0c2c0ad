package shogi

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestSquareSfen(t *testing.T) {
	is := is.New(t)
	sq, err := SquareFromSfen("7g")
	is.NoErr(err)
	is.Equal(sq.File(), File7)
	is.Equal(sq.Rank(), Rank7)
	is.Equal(sq.ToSfen(), "7g")

	for s := Square(0); s < NumSquares; s++ {
		back, err := SquareFromSfen(s.ToSfen())
		is.NoErr(err)
		is.Equal(back, s)
	}

	for _, bad := range []string{"", "0a", "1j", "a1", "7g7"} {
		_, err := SquareFromSfen(bad)
		is.True(errors.Is(err, ErrInvalidSquare))
	}
}

func TestInverseSquare(t *testing.T) {
	is := is.New(t)
	is.Equal(MakeSquare(File1, Rank1).InverseSquare(), MakeSquare(File9, Rank9))
	is.Equal(MakeSquare(File5, Rank5).InverseSquare(), MakeSquare(File5, Rank5))
	for s := Square(0); s < NumSquares; s++ {
		is.Equal(s.InverseSquare().InverseSquare(), s)
	}
}

func TestPromotionZone(t *testing.T) {
	is := is.New(t)
	is.True(MakeSquare(File2, Rank3).IsPromotionZoneOf(Black))
	is.True(!MakeSquare(File2, Rank4).IsPromotionZoneOf(Black))
	is.True(MakeSquare(File2, Rank7).IsPromotionZoneOf(White))
	is.True(!MakeSquare(File2, Rank6).IsPromotionZoneOf(White))
	is.Equal(RelativeRank(White, Rank9), Rank1)
}

func TestPieceSfen(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		sfen  string
		piece Piece
	}{
		{"P", MakePiece(Black, Pawn)},
		{"s", MakePiece(White, Silver)},
		{"+R", MakePiece(Black, Dragon)},
		{"+b", MakePiece(White, Horse)},
		{"K", MakePiece(Black, King)},
		{"g", MakePiece(White, Gold)},
	}
	for _, c := range cases {
		p, err := PieceFromSfen(c.sfen)
		is.NoErr(err)
		is.Equal(p, c.piece)
		is.Equal(p.ToSfen(), c.sfen)
	}
	for _, bad := range []string{"", "X", "+G", "+k", "PP"} {
		_, err := PieceFromSfen(bad)
		is.True(errors.Is(err, ErrInvalidPiece))
	}
}

func TestPieceValidity(t *testing.T) {
	is := is.New(t)
	is.True(NoPiece.IsOk())
	is.True(!Piece(15).IsOk())
	is.True(!Piece(16).IsOk())
	is.True(MakePiece(White, Dragon).IsOk())
	is.True(!Piece(40).IsOk())

	p := MakePiece(Black, Knight)
	is.Equal(p.OpponentPiece(), MakePiece(White, Knight))
	is.Equal(p.OpponentPiece().OpponentPiece(), p)
	is.Equal(NoPiece.OpponentPiece(), NoPiece)
	is.True(p.IsDroppable())
	is.True(!MakePiece(Black, King).IsDroppable())
	is.True(!MakePiece(Black, Gold).CanPromote())
	is.Equal(Dragon.Unpromoted(), Rook)
	is.Equal(Silver.Promoted(), PSilver)
}
