// Package shogi contains the board coordinate and piece value types that
// the rest of the engine is built on.
package shogi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidPiece  = errors.New("invalid piece")
)

// Color is the side a piece belongs to. Black moves first.
type Color uint8

const (
	Black Color = iota
	White
)

const NumColors = 2

func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// File is a column of the board. File1 is printed as '1'.
type File uint8

// Rank is a row of the board. Rank1 ('a') is the rank farthest from Black.
type Rank uint8

const (
	File1 File = iota
	File2
	File3
	File4
	File5
	File6
	File7
	File8
	File9
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
)

const (
	NumFiles = 9
	NumRanks = 9
)

// RelativeRank returns the rank as seen by color c, so that Rank1 is always
// the rank farthest from that player.
func RelativeRank(c Color, r Rank) Rank {
	if c == Black {
		return r
	}
	return Rank9 - r
}

// A Square is file*9 + rank. It always fits in 7 bits; SquareNone is the
// only out-of-board value in use.
type Square uint8

const (
	NumSquares        = NumFiles * NumRanks
	SquareNone Square = 0x7f
)

func MakeSquare(f File, r Rank) Square {
	return Square(uint8(f)*NumRanks + uint8(r))
}

func (s Square) IsOk() bool {
	return s < NumSquares
}

func (s Square) File() File {
	return File(s / NumRanks)
}

func (s Square) Rank() Rank {
	return Rank(s % NumRanks)
}

// InverseSquare returns the square rotated 180 degrees around the board
// center.
func (s Square) InverseSquare() Square {
	return NumSquares - 1 - s
}

// IsPromotionZoneOf returns true if s lies on one of the three ranks
// farthest from color c.
func (s Square) IsPromotionZoneOf(c Color) bool {
	return RelativeRank(c, s.Rank()) <= Rank3
}

// ToSfen returns the two-character coordinate, e.g. "7g".
func (s Square) ToSfen() string {
	if !s.IsOk() {
		return "??"
	}
	return string([]byte{'1' + byte(s.File()), 'a' + byte(s.Rank())})
}

func (s Square) String() string {
	return s.ToSfen()
}

// SquareFromSfen parses a two-character coordinate such as "7g".
func SquareFromSfen(str string) (Square, error) {
	if len(str) != 2 {
		return SquareNone, fmt.Errorf("%w: %q", ErrInvalidSquare, str)
	}
	f, r := str[0], str[1]
	if f < '1' || f > '9' || r < 'a' || r > 'i' {
		return SquareNone, fmt.Errorf("%w: %q", ErrInvalidSquare, str)
	}
	return MakeSquare(File(f-'1'), Rank(r-'a')), nil
}
