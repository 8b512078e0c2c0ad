package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/shogi"
)

func sq(s string) shogi.Square {
	square, err := shogi.SquareFromSfen(s)
	if err != nil {
		panic(err)
	}
	return square
}

func playAll(t *testing.T, p *Position, moves ...string) []move.Move {
	is := is.New(t)
	var played []move.Move
	for _, s := range moves {
		m, err := move.FromSfenPosition(s, p)
		is.NoErr(err)
		is.NoErr(p.Play(m))
		played = append(played, m)
	}
	return played
}

func TestSfenRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, s := range append([]string{StartSfen}, BenchPositions...) {
		p, err := FromSfen(s)
		is.NoErr(err)
		is.Equal(p.ToSfen(), s)
	}
}

func TestStartPos(t *testing.T) {
	is := is.New(t)
	p := StartPos()
	is.Equal(p.SideToMove(), shogi.Black)
	is.Equal(p.PieceOn(sq("7g")), shogi.MakePiece(shogi.Black, shogi.Pawn))
	is.Equal(p.PieceOn(sq("2b")), shogi.MakePiece(shogi.White, shogi.Bishop))
	is.Equal(p.PieceOn(sq("5e")), shogi.NoPiece)
	is.Equal(p.PieceOn(shogi.SquareNone), shogi.NoPiece)
	is.Equal(p.Ply(), 1)
}

func TestBadSfen(t *testing.T) {
	is := is.New(t)
	bad := []string{
		"",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1 b - 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSN b - 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL x - 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b K 1",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 0",
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSG+KGSNL b - 1",
	}
	for _, s := range bad {
		_, err := FromSfen(s)
		is.True(errors.Is(err, ErrBadPositionSfen))
	}
}

func TestHandCounts(t *testing.T) {
	is := is.New(t)
	const boardPart = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b "
	for _, hands := range []string{
		"9223372036854775808P",
		"99999999999999999999999999P",
		"19P",
		"0P",
		"00P",
		"05P",
		"2",
	} {
		_, err := FromSfen(boardPart + hands + " 1")
		is.True(errors.Is(err, ErrBadPositionSfen))
	}

	p, err := FromSfen(boardPart + "18P2b 1")
	is.NoErr(err)
	is.Equal(p.Hand(shogi.Black, shogi.Pawn), 18)
	is.Equal(p.Hand(shogi.White, shogi.Bishop), 2)
}

func TestPlay(t *testing.T) {
	is := is.New(t)
	p := StartPos()
	playAll(t, p, "7g7f", "3c3d", "8h2b+", "3a2b", "B*4e")

	is.Equal(p.ToSfen(),
		"lnsgkg1nl/1r5s1/pppppp1pp/6p2/5B3/2P6/PP1PPPPPP/7R1/LNSGKGSNL w b 6")
	is.Equal(p.Hand(shogi.White, shogi.Bishop), 1)
	is.Equal(p.Hand(shogi.Black, shogi.Bishop), 0)

	fresh, err := FromSfen(p.ToSfen())
	is.NoErr(err)
	is.Equal(fresh.Key(), p.Key())
}

func TestPlayRejectsInconsistentMoves(t *testing.T) {
	is := is.New(t)
	p := StartPos()
	bp := shogi.MakePiece(shogi.Black, shogi.Pawn)

	is.True(errors.Is(p.Play(move.None), ErrNoMove))
	err := p.Play(move.MakeBoardMove(bp, sq("7g"), sq("7g"), false, shogi.NoPiece))
	is.True(errors.Is(err, ErrIllegalMove))
	err = p.Play(move.MakeBoardMove(shogi.MakePiece(shogi.White, shogi.Pawn), sq("3c"), sq("3d"), false, shogi.NoPiece))
	is.True(errors.Is(err, ErrWrongSide))
	err = p.Play(move.MakeDrop(bp, sq("5e")))
	is.True(errors.Is(err, ErrNotInHand))
	err = p.Play(move.MakeBoardMove(bp, sq("6g"), sq("6f"), false, shogi.NoPiece))
	is.NoErr(err)
	err = p.Play(move.MakeBoardMove(shogi.MakePiece(shogi.White, shogi.Pawn), sq("5c"), sq("5d"), false,
		shogi.MakePiece(shogi.Black, shogi.Pawn)))
	is.True(errors.Is(err, ErrCapturedMismatch))
	err = p.Play(move.MakeBoardMove(shogi.MakePiece(shogi.White, shogi.Pawn), sq("5e"), sq("5f"), false,
		shogi.MakePiece(shogi.Black, shogi.Pawn)))
	is.True(errors.Is(err, ErrSourceMismatch))

	// the position is untouched by the failures
	is.Equal(p.SideToMove(), shogi.White)
	is.Equal(p.Ply(), 2)
}

func TestPlayNull(t *testing.T) {
	is := is.New(t)
	p := StartPos()
	key := p.Key()
	is.NoErr(p.Play(move.Null))
	is.Equal(p.SideToMove(), shogi.White)
	is.True(p.Key() != key)
	is.NoErr(p.Play(move.Null))
	is.Equal(p.Key(), key)
}

func TestFlip(t *testing.T) {
	is := is.New(t)
	for _, s := range BenchPositions {
		p, err := FromSfen(s)
		is.NoErr(err)
		f := p.Flip()
		is.Equal(f.SideToMove(), p.SideToMove().Opponent())
		is.Equal(f.Flip().ToSfen(), p.ToSfen())
		is.Equal(f.Flip().Key(), p.Key())
	}
	is.Equal(StartPos().Flip().BoardSfen(), strings.Replace(StartPos().BoardSfen(), " b ", " w ", 1))
}

func TestFlipCommutesWithPlay(t *testing.T) {
	is := is.New(t)
	p := StartPos()
	f := p.Flip()
	for _, m := range playAll(t, p, "7g7f", "3c3d", "8h2b+", "3a2b", "B*4e") {
		is.NoErr(f.Play(m.Flip()))
	}
	is.Equal(f.ToSfen(), p.Flip().ToSfen())
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	txt := StartPos().ToDisplayText()
	is.True(strings.Contains(txt, "black to move"))
	is.True(!strings.Contains(txt, "+P"))
	is.True(strings.Contains(txt, "| a"))
}
