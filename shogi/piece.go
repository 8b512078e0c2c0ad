package shogi

import (
	"fmt"
	"strings"
)

// PieceType is a piece kind without its color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Lance
	Knight
	Silver
	Bishop
	Rook
	Gold
	King
	PPawn
	PLance
	PKnight
	PSilver
	Horse
	Dragon
)

const (
	NumPieceTypes = 15
	promotedBit   = 8
)

// sfen letters for the unpromoted types, indexed by PieceType.
const pieceLetters = " PLNSBRGK"

// IsDroppable is true for the types that can be held in hand.
func (pt PieceType) IsDroppable() bool {
	return pt >= Pawn && pt <= Gold
}

func (pt PieceType) CanPromote() bool {
	return pt >= Pawn && pt <= Rook
}

func (pt PieceType) IsPromoted() bool {
	return pt >= PPawn && pt <= Dragon
}

// Promoted returns the promoted form of pt. pt must be able to promote.
func (pt PieceType) Promoted() PieceType {
	return pt + promotedBit
}

// Unpromoted returns the type a captured piece reverts to in hand.
func (pt PieceType) Unpromoted() PieceType {
	if pt.IsPromoted() {
		return pt - promotedBit
	}
	return pt
}

func (pt PieceType) String() string {
	p := MakePiece(Black, pt)
	return p.ToSfen()
}

// Piece packs a color and a piece type into 5 bits: color<<4 | type.
type Piece uint8

const (
	NoPiece   Piece = 0
	colorBit        = 4
	pieceMask       = 0x1f
	typeMask        = 0x0f
	NumPieces       = 32
)

func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<colorBit | uint8(pt))
}

// IsOk is true for NoPiece and for any real piece of either color.
func (p Piece) IsOk() bool {
	if p == NoPiece {
		return true
	}
	if p > pieceMask {
		return false
	}
	pt := p.Type()
	return pt != NoPieceType && pt <= Dragon
}

func (p Piece) Color() Color {
	return Color(p >> colorBit)
}

func (p Piece) Type() PieceType {
	return PieceType(p & typeMask)
}

func (p Piece) Is(pt PieceType) bool {
	return p.Type() == pt
}

func (p Piece) IsDroppable() bool {
	return p.Type().IsDroppable()
}

func (p Piece) CanPromote() bool {
	return p.Type().CanPromote()
}

// OpponentPiece is the same piece type owned by the other side.
func (p Piece) OpponentPiece() Piece {
	if p == NoPiece {
		return NoPiece
	}
	return p ^ (1 << colorBit)
}

// ToSfen returns the SFEN letter for p: upper case for Black, lower case
// for White, with a leading '+' for promoted pieces.
func (p Piece) ToSfen() string {
	if p == NoPiece || !p.IsOk() {
		return ""
	}
	pt := p.Type()
	s := string(pieceLetters[pt.Unpromoted()])
	if pt.IsPromoted() {
		s = "+" + s
	}
	if p.Color() == White {
		s = strings.ToLower(s)
	}
	return s
}

func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	return p.ToSfen()
}

// PieceFromSfen parses "P", "p", "+R", etc.
func PieceFromSfen(str string) (Piece, error) {
	promoted := false
	s := str
	if strings.HasPrefix(s, "+") {
		promoted = true
		s = s[1:]
	}
	if len(s) != 1 {
		return NoPiece, fmt.Errorf("%w: %q", ErrInvalidPiece, str)
	}
	c := Black
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		c = White
		letter -= 'a' - 'A'
	}
	idx := strings.IndexByte(pieceLetters, letter)
	if idx <= 0 {
		return NoPiece, fmt.Errorf("%w: %q", ErrInvalidPiece, str)
	}
	pt := PieceType(idx)
	if promoted {
		if !pt.CanPromote() {
			return NoPiece, fmt.Errorf("%w: %q cannot be promoted", ErrInvalidPiece, str)
		}
		pt = pt.Promoted()
	}
	return MakePiece(c, pt), nil
}
