package history

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/sync/errgroup"

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

var (
	bp      = shogi.MakePiece(shogi.Black, shogi.Pawn)
	bs      = shogi.MakePiece(shogi.Black, shogi.Silver)
	pawn76  = move.MakeBoardMove(bp, sq("7g"), sq("7f"), false, shogi.NoPiece)
	pawn26  = move.MakeBoardMove(bp, sq("2g"), sq("2f"), false, shogi.NoPiece)
	silver7 = move.MakeBoardMove(bs, sq("7i"), sq("6h"), false, shogi.NoPiece)
)

func TestUpdate(t *testing.T) {
	is := is.New(t)
	tbl := New()
	is.NoErr(tbl.Update(shogi.Black, []move.Move{pawn26, silver7, pawn76}, pawn76, 10))

	s, err := tbl.Score(shogi.Black, pawn76)
	is.NoErr(err)
	is.True(s > 0)
	s, err = tbl.Score(shogi.Black, pawn26)
	is.NoErr(err)
	is.True(s < 0)
	s, err = tbl.Score(shogi.White, pawn76)
	is.NoErr(err)
	is.Equal(s, 0)

	tbl.Clear()
	s, err = tbl.Score(shogi.Black, pawn76)
	is.NoErr(err)
	is.Equal(s, 0)
}

func TestScoresStayBounded(t *testing.T) {
	is := is.New(t)
	tbl := New()
	for i := 0; i < 1000; i++ {
		is.NoErr(tbl.Update(shogi.Black, []move.Move{pawn76}, pawn76, 30))
	}
	s, err := tbl.Score(shogi.Black, pawn76)
	is.NoErr(err)
	is.True(s <= Max)
	is.True(s > Max/2)
}

func TestRejectsUnhashableMoves(t *testing.T) {
	is := is.New(t)
	tbl := New()
	drop := move.MakeDrop(bp, sq("5e"))
	err := tbl.Update(shogi.Black, []move.Move{pawn26, drop}, drop, 4)
	is.True(errors.Is(err, move.ErrNotQuiet))
	// nothing was written
	s, err := tbl.Score(shogi.Black, pawn26)
	is.NoErr(err)
	is.Equal(s, 0)

	inferior := move.MakeBoardMove(bp, sq("3d"), sq("3c"), false, shogi.NoPiece)
	_, err = tbl.Score(shogi.Black, inferior)
	is.True(errors.Is(err, move.ErrInferior))
}

func TestConcurrentUpdates(t *testing.T) {
	is := is.New(t)
	tbl := New()
	g := errgroup.Group{}
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 500; j++ {
				if err := tbl.Update(shogi.Black, []move.Move{pawn26, pawn76}, pawn76, 8); err != nil {
					return err
				}
			}
			return nil
		})
	}
	is.NoErr(g.Wait())
	good, err := tbl.Score(shogi.Black, pawn76)
	is.NoErr(err)
	bad, err := tbl.Score(shogi.Black, pawn26)
	is.NoErr(err)
	is.True(good > 0 && good <= Max)
	is.True(bad < 0 && bad >= -Max)
}
