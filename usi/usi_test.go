package usi

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"

	"github.com/domino14/shogimove/board"
	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/shogi"
)

func TestParsePositionStartpos(t *testing.T) {
	is := is.New(t)
	g, err := ParsePosition("position startpos moves 7g7f 3c3d 8h2b+ 3a2b B*4e")
	is.NoErr(err)
	is.Equal(len(g.Moves), 5)
	is.Equal(g.Position.ToSfen(),
		"lnsgkg1nl/1r5s1/pppppp1pp/6p2/5B3/2P6/PP1PPPPPP/7R1/LNSGKGSNL w b 6")
	is.Equal(g.Start.ToSfen(), board.StartSfen)
	is.True(g.Moves[2].IsCapture())
	is.True(g.Moves[4].IsDrop())
	is.Equal(g.String(), "position startpos moves 7g7f 3c3d 8h2b+ 3a2b B*4e")
}

func TestParsePositionSfen(t *testing.T) {
	is := is.New(t)
	g, err := ParsePosition("position sfen 4k4/9/9/9/9/9/9/9/4K4 b R2P 1 moves R*5b 5a5b")
	is.NoErr(err)
	is.Equal(len(g.Moves), 2)
	is.Equal(g.Position.Hand(shogi.White, shogi.Rook), 1)
	is.Equal(g.Position.Hand(shogi.Black, shogi.Pawn), 2)
	is.Equal(g.String(), "position sfen 4k4/9/9/9/9/9/9/9/4K4 b R2P 1 moves R*5b 5a5b")

	g, err = ParsePosition("position sfen 4k4/9/9/9/9/9/9/9/4K4 w - 10")
	is.NoErr(err)
	is.Equal(len(g.Moves), 0)
	is.Equal(g.Position.Ply(), 10)
}

func TestParsePositionErrors(t *testing.T) {
	for _, tc := range []struct {
		cmd string
		err error
	}{
		{"", ErrBadCommand},
		{"go btime 0", ErrBadCommand},
		{"position", ErrBadCommand},
		{"position kifu", ErrBadCommand},
		{"position startpos 7g7f", ErrBadCommand},
		{"position sfen 9/9 b - 1", ErrBadCommand},
		{"position sfen lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b 9223372036854775808P 1", ErrBadCommand},
		{"position startpos moves 7g7f+", ErrBadMove},
		{"position startpos moves 5e5d", ErrBadMove},
		{"position startpos moves 3c3d", ErrBadMove},
		{"position startpos moves P*5e", ErrBadMove},
		{"position startpos moves 7g7x", ErrBadMove},
		{"position startpos moves 8h7g", ErrBadMove},
		{"position startpos moves 7g7f 7f7e", ErrBadMove},
	} {
		_, err := ParsePosition(tc.cmd)
		assert.ErrorIs(t, err, tc.err, tc.cmd)
	}
	_, err := ParsePosition("position startpos moves 5e5d")
	assert.ErrorIs(t, err, move.ErrEmptySource)
	_, err = ParsePosition("position startpos moves 3c3d")
	assert.ErrorIs(t, err, move.ErrNotSideToMove)
	_, err = ParsePosition("position startpos moves 7g7x")
	assert.ErrorIs(t, err, move.ErrMalformedSfen)
}

const record = `# two short games
position startpos moves 7g7f 3c3d

position startpos moves 2g2f 8c8d 2f2e # ibisha
`

func TestReadRecord(t *testing.T) {
	is := is.New(t)
	games, err := ReadRecord(strings.NewReader(record))
	is.NoErr(err)
	is.Equal(len(games), 2)
	is.Equal(len(games[1].Moves), 3)
}

func TestReadRecordLineNumbers(t *testing.T) {
	is := is.New(t)
	_, err := ReadRecord(strings.NewReader(record + "\nposition startpos moves 7g7f 7f7e\n"))
	is.True(errors.Is(err, ErrBadMove))
	is.True(strings.HasPrefix(err.Error(), "line 6:"))
}

func TestReadRecordShiftJIS(t *testing.T) {
	is := is.New(t)
	text := "# 先手 対 後手\xEF\xBC\x81\nposition startpos moves 7g7f 3c3d\n"
	sjis, err := japanese.ShiftJIS.NewEncoder().String(text)
	is.NoErr(err)
	is.True(sjis != text)

	games, err := ReadRecord(strings.NewReader(sjis))
	is.NoErr(err)
	is.Equal(len(games), 1)
	is.Equal(games[0].Moves[1].ToSfen(), "3c3d")

	// a byte-order mark is skipped
	games, err = ReadRecord(strings.NewReader("\xEF\xBB\xBF" + text))
	is.NoErr(err)
	is.Equal(len(games), 1)
}

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckFiles(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.usi", "b.usi", "c.usi", "d.usi"} {
		paths = append(paths, writeFile(t, dir, name, record))
	}
	sum, err := CheckFiles(context.Background(), paths, 2)
	is.NoErr(err)
	is.Equal(sum, Summary{Files: 4, Games: 8, Moves: 20})

	bad := writeFile(t, dir, "bad.usi", "position startpos moves 7g7f 7f7e\n")
	_, err = CheckFiles(context.Background(), append(paths, bad), 2)
	is.True(errors.Is(err, ErrBadMove))
	is.True(strings.Contains(err.Error(), "bad.usi"))

	_, err = CheckFiles(context.Background(), []string{filepath.Join(dir, "missing.usi")}, 1)
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestParseBenchPositions(t *testing.T) {
	is := is.New(t)
	for _, sfen := range board.BenchPositions {
		g, err := ParsePosition("position sfen " + sfen)
		is.NoErr(err)
		is.Equal(g.Start.ToSfen(), sfen)
		is.Equal(g.String(), "position sfen "+sfen)
	}
}
