// Package usi reads positions and game records written as USI "position"
// commands.
package usi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/shogimove/board"
	"github.com/domino14/shogimove/move"
)

var (
	ErrBadCommand = errors.New("malformed position command")
	ErrBadMove    = errors.New("bad move in position command")
)

// Game is a starting position and the moves played from it.
type Game struct {
	Start    *board.Position
	Moves    []move.Move
	Position *board.Position
}

// ParsePosition parses a command such as
//
//	position startpos moves 7g7f 3c3d
//	position sfen <board> <side> <hands> <ply> moves 7g7f
//
// and replays the moves. Moves are checked both on their own and against
// the position they are played in.
func ParsePosition(cmd string) (*Game, error) {
	fields := strings.Fields(cmd)
	if len(fields) < 2 || fields[0] != "position" {
		return nil, fmt.Errorf("%w: %q", ErrBadCommand, cmd)
	}
	rest := fields[2:]
	var start *board.Position
	switch fields[1] {
	case "startpos":
		start = board.StartPos()
	case "sfen":
		n := 0
		for n < len(rest) && rest[n] != "moves" {
			n++
		}
		pos, err := board.FromSfen(strings.Join(rest[:n], " "))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadCommand, err)
		}
		start = pos
		rest = rest[n:]
	default:
		return nil, fmt.Errorf("%w: unknown position type %q", ErrBadCommand, fields[1])
	}

	if len(rest) > 0 {
		if rest[0] != "moves" {
			return nil, fmt.Errorf("%w: unexpected %q", ErrBadCommand, rest[0])
		}
		rest = rest[1:]
	}

	g := &Game{Start: start, Position: start.Copy(), Moves: make([]move.Move, 0, len(rest))}
	for i, text := range rest {
		m, err := move.FromSfenPosition(text, g.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d: %w", ErrBadMove, i+1, err)
		}
		if !m.IsOk() {
			return nil, fmt.Errorf("%w: move %d: %q is not a legal move", ErrBadMove, i+1, text)
		}
		if err := g.Position.Play(m); err != nil {
			return nil, fmt.Errorf("%w: move %d: %w", ErrBadMove, i+1, err)
		}
		g.Moves = append(g.Moves, m)
	}
	return g, nil
}

// String writes the game back as a position command.
func (g *Game) String() string {
	var sb strings.Builder
	sb.WriteString("position ")
	if g.Start.ToSfen() == board.StartSfen {
		sb.WriteString("startpos")
	} else {
		sb.WriteString("sfen ")
		sb.WriteString(g.Start.ToSfen())
	}
	if len(g.Moves) > 0 {
		sb.WriteString(" moves")
		for _, m := range g.Moves {
			sb.WriteByte(' ')
			sb.WriteString(m.ToSfen())
		}
	}
	return sb.String()
}
