package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/shogimove/board"
	"github.com/domino14/shogimove/book"
	"github.com/domino14/shogimove/config"
	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/stats"
	"github.com/domino14/shogimove/usi"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: position startpos|sfen <sfen> [moves ...]")
	}
	g, err := usi.ParsePosition("position " + strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	sc.game = g
	return msg(g.Position.ToDisplayText()), nil
}

// playMove decodes text against the current position and plays it.
func (sc *ShellController) playMove(text string) (move.Move, error) {
	pos := sc.game.Position
	m, err := move.FromSfenPosition(text, pos)
	if err != nil {
		return move.None, err
	}
	if !m.IsOk() {
		return move.None, fmt.Errorf("%s is not a legal move", text)
	}
	stm := pos.SideToMove()
	if err := pos.Play(m); err != nil {
		return move.None, err
	}
	sc.game.Moves = append(sc.game.Moves, m)
	if _, err := m.PerfectHash(); err == nil {
		// moves played by hand count as a shallow cutoff
		if err := sc.history.Update(stm, []move.Move{m}, m, 1); err != nil {
			return move.None, err
		}
	}
	return m, nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: move <move> [<move> ...]")
	}
	for _, text := range cmd.args {
		if _, err := sc.playMove(text); err != nil {
			return nil, err
		}
	}
	return msg(sc.game.Position.ToDisplayText()), nil
}

func replay(start *board.Position, moves []move.Move) (*usi.Game, error) {
	g := &usi.Game{Start: start, Position: start.Copy(), Moves: make([]move.Move, 0, len(moves))}
	for _, m := range moves {
		if err := g.Position.Play(m); err != nil {
			return nil, err
		}
		g.Moves = append(g.Moves, m)
	}
	return g, nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	n := len(sc.game.Moves)
	if n == 0 {
		return nil, errors.New("no moves to undo")
	}
	g, err := replay(sc.game.Start, sc.game.Moves[:n-1])
	if err != nil {
		return nil, err
	}
	sc.game = g
	return msg(g.Position.ToDisplayText()), nil
}

func (sc *ShellController) flip(cmd *shellcmd) (*Response, error) {
	flipped := make([]move.Move, len(sc.game.Moves))
	for i, m := range sc.game.Moves {
		flipped[i] = m.Flip()
	}
	g, err := replay(sc.game.Start.Flip(), flipped)
	if err != nil {
		return nil, err
	}
	sc.game = g
	return msg(g.Position.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.Position.ToDisplayText() + "\nsfen " + sc.game.Position.ToSfen()), nil
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if len(sc.game.Moves) == 0 {
		return msg("no moves played"), nil
	}
	var sb strings.Builder
	for i, m := range sc.game.Moves {
		fmt.Fprintf(&sb, "%3d. %-6s %v\n", i+1, m.ToSfen(), m)
	}
	sb.WriteString(sc.game.String())
	return msg(sb.String()), nil
}

func (sc *ShellController) hashLine(m move.Move) string {
	h, err := m.PerfectHash()
	if err != nil {
		return fmt.Sprintf("%-6s %v", m.ToSfen(), err)
	}
	score, _ := sc.history.Score(m.Piece().Color(), m)
	return fmt.Sprintf("%-6s hash %5d slot %4d history %6d", m.ToSfen(), h, m.PerfectHashIndex(), score)
}

func (sc *ShellController) hash(cmd *shellcmd) (*Response, error) {
	var lines []string
	if len(cmd.args) == 0 {
		for _, m := range sc.game.Moves {
			lines = append(lines, sc.hashLine(m))
		}
		lines = append(lines, fmt.Sprintf("position key %016x", sc.game.Position.Key()))
		return msg(strings.Join(lines, "\n")), nil
	}
	for _, text := range cmd.args {
		m, err := move.FromSfenPosition(text, sc.game.Position)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sc.hashLine(m))
	}
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) bookCmd(cmd *shellcmd) (*Response, error) {
	sub := "lookup"
	if len(cmd.args) > 0 {
		sub = cmd.args[0]
	}
	if sub == "load" {
		if len(cmd.args) < 2 {
			return nil, errors.New("usage: book load <path>")
		}
		var b *book.Book
		var err error
		if strings.HasSuffix(cmd.args[1], ".db") {
			b, err = book.LoadSQLite(cmd.args[1])
		} else {
			b, err = book.LoadFile(cmd.args[1])
		}
		if err != nil {
			return nil, err
		}
		sc.book = b
		return msg(fmt.Sprintf("loaded %d book positions", b.Len())), nil
	}
	if sc.book == nil {
		return nil, errors.New("no book loaded")
	}
	switch sub {
	case "lookup":
		choices := sc.book.Lookup(sc.game.Position)
		if len(choices) == 0 {
			return msg("position not in book"), nil
		}
		var sb strings.Builder
		for _, c := range choices {
			fmt.Fprintf(&sb, "%-6s %d\n", c.Move.ToSfen(), c.Weight)
		}
		return msg(strings.TrimRight(sb.String(), "\n")), nil
	case "save":
		if len(cmd.args) < 2 {
			return nil, errors.New("usage: book save <path.db>")
		}
		if err := sc.book.SaveSQLite(cmd.args[1]); err != nil {
			return nil, err
		}
		return msg(fmt.Sprintf("saved %d book positions", sc.book.Len())), nil
	case "play":
		m, err := sc.book.Pick(sc.game.Position)
		if err != nil {
			return nil, err
		}
		if _, err := sc.playMove(m.ToSfen()); err != nil {
			return nil, err
		}
		return msg("played " + m.ToSfen()), nil
	default:
		return nil, fmt.Errorf("unknown book command %v", sub)
	}
}

func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	bins, err := cmd.options.IntDefault("bins", 10)
	if err != nil {
		return nil, err
	}
	width, err := cmd.options.IntDefault("width", 50)
	if err != nil {
		return nil, err
	}
	a, err := stats.AnalyzePerfectHash()
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(a.String())
	sb.WriteString("\n")
	if err := a.Histogram(&sb, bins, width); err != nil {
		return nil, err
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: check [-workers n] <file> ...")
	}
	workers, err := cmd.options.IntDefault("workers", sc.config.GetInt(config.ConfigRecordWorkers))
	if err != nil {
		return nil, err
	}
	sum, err := usi.CheckFiles(context.Background(), cmd.args, workers)
	if err != nil {
		return nil, err
	}
	log.Info().Int("files", sum.Files).Int("games", sum.Games).Msg("records-ok")
	return msg(fmt.Sprintf("%d files, %d games, %d moves ok", sum.Files, sum.Games, sum.Moves)), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	sc.config.Set(cmd.args[0], cmd.args[1])
	return msg("set " + cmd.args[0] + " to " + cmd.args[1]), nil
}
