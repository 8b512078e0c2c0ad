package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/shogimove/config"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"stats -bins 20",
			&shellcmd{"stats", nil, CmdOptions{"bins": {"20"}}},
			nil},
		{"book lookup",
			&shellcmd{"book", []string{"lookup"}, CmdOptions{}},
			nil},
		{"check a.usi 'b c.usi' -workers 3 ",
			&shellcmd{"check",
				[]string{"a.usi", "b c.usi"},
				CmdOptions{"workers": {"3"}}},
			nil,
		},
		{"position sfen 4k4/9/9/9/9/9/9/9/4K4 b - 1",
			&shellcmd{"position",
				[]string{"sfen", "4k4/9/9/9/9/9/9/9/4K4", "b", "-", "1"},
				CmdOptions{}},
			nil,
		},
		{"stats -bins",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController(t *testing.T) *ShellController {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigBookPath, "")
	return newController(cfg, t.TempDir(), "test")
}

func run(t *testing.T, sc *ShellController, line string) string {
	resp, err := sc.standardModeSwitch(line)
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return resp.message
}

func TestPlayUndoFlip(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	run(t, sc, "move 7g7f 3c3d 8h2b+")
	is.Equal(len(sc.game.Moves), 3)
	_, err := sc.standardModeSwitch("move 2b2b")
	is.True(err != nil)
	is.Equal(len(sc.game.Moves), 3)

	run(t, sc, "undo")
	is.Equal(sc.game.Position.ToSfen(),
		"lnsgkgsnl/1r5b1/pppppp1pp/6p2/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL b - 3")

	run(t, sc, "flip")
	is.Equal(sc.game.Moves[0].ToSfen(), "3c3d")
	is.Equal(sc.game.Position.SideToMove().String(), "w")
	run(t, sc, "flip")
	is.Equal(sc.game.Position.ToSfen(),
		"lnsgkgsnl/1r5b1/pppppp1pp/6p2/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL b - 3")

	out := run(t, sc, "moves")
	is.True(strings.Contains(out, "position startpos moves 7g7f 3c3d"))
}

func TestHashAndHistory(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "move 7g7f")
	out := run(t, sc, "hash")
	is.True(strings.Contains(out, "7g7f"))
	is.True(strings.Contains(out, "position key"))

	out = run(t, sc, "hash 3c3d")
	is.True(strings.Contains(out, "history      0"))
	out = run(t, sc, "hash 3c3d")
	is.True(strings.Contains(out, "hash"))
}

func TestPositionAndBook(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	run(t, sc, "position sfen 4k4/9/9/9/9/9/9/9/4K4 b R2P 1 moves R*5b")
	is.Equal(sc.game.Position.SideToMove().String(), "w")

	_, err := sc.standardModeSwitch("book lookup")
	is.True(err != nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "book.yaml")
	is.NoErr(os.WriteFile(path, []byte(`
- sfen: "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"
  moves:
    - move: 7g7f
      weight: 1
`), 0644))
	run(t, sc, "book load "+path)
	run(t, sc, "position startpos")
	is.True(strings.Contains(run(t, sc, "book lookup"), "7g7f"))
	is.Equal(run(t, sc, "book play"), "played 7g7f")
	is.Equal(run(t, sc, "book lookup"), "position not in book")

	db := filepath.Join(dir, "book.db")
	run(t, sc, "book save "+db)
	is.Equal(run(t, sc, "book load "+db), "loaded 1 book positions")

	c := NewShellCompleter(sc)
	run(t, sc, "undo")
	matches, n := c.Do([]rune("move 7g"), len("move 7g"))
	is.Equal(n, 2)
	is.Equal(len(matches), 1)
	is.Equal(string(matches[0]), "7f")
}

func TestUnknownAndExit(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.standardModeSwitch("frobnicate")
	is.True(err != nil)
	_, err = sc.standardModeSwitch("exit")
	is.Equal(err, errExit)
	is.True(strings.Contains(run(t, sc, "help"), "position startpos"))
	is.True(strings.Contains(run(t, sc, "help book"), "book load"))
	is.True(strings.Contains(run(t, sc, "help nothing"), "no help text"))
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	path := filepath.Join(t.TempDir(), "test.lua")
	is.NoErr(os.WriteFile(path, []byte(`
local json = require("json")
shogimove_position("startpos moves 7g7f")
shogimove_move("3c3d")
local bad = shogimove_move("3c3d")
assert(string.sub(bad, 1, 5) == "ERROR")
assert(shogimove_flip_move("2g2f") == "8c8d")
local moves = shogimove_moves()
result = json.encode({n = #moves, first = moves[1].sfen, sfen = shogimove_sfen()})
`), 0644))
	out := run(t, sc, "script "+path)
	is.Equal(len(sc.game.Moves), 2)
	is.True(strings.Contains(out, `"n":2`))
	is.True(strings.Contains(out, `"first":"7g7f"`))

	_, err := sc.standardModeSwitch("script " + filepath.Join(t.TempDir(), "missing.lua"))
	is.True(err != nil)
}
