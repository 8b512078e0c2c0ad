package move

import (
	"fmt"

	"github.com/domino14/shogimove/shogi"
)

const (
	sfenNone = "none"
	sfenNull = "pass"
	dropMark = '*'
	promMark = '+'
)

// BoardLookup is what FromSfenPosition needs to know about a position.
type BoardLookup interface {
	SideToMove() shogi.Color
	PieceOn(sq shogi.Square) shogi.Piece
}

// ToSfen converts the move to USI notation: "7g7f", "7g7f+", "S*5e",
// "none" or "pass".
func (m Move) ToSfen() string {
	switch m {
	case None:
		return sfenNone
	case Null:
		return sfenNull
	}
	if m.IsDrop() {
		return string([]byte{dropLetter(m.PieceType()), dropMark}) + m.To().ToSfen()
	}
	s := m.From().ToSfen() + m.To().ToSfen()
	if m.IsPromotion() {
		s += string(promMark)
	}
	return s
}

func dropLetter(pt shogi.PieceType) byte {
	s := shogi.MakePiece(shogi.Black, pt).ToSfen()
	if len(s) != 1 {
		return '?'
	}
	return s[0]
}

func sentinelFromSfen(sfen string) (Move, bool) {
	switch sfen {
	case sfenNone:
		return None, true
	case sfenNull:
		return Null, true
	}
	return None, false
}

// parsed holds the fields that can be read from the text alone.
type parsed struct {
	drop     bool
	dropType shogi.PieceType
	from     shogi.Square
	to       shogi.Square
	promote  bool
}

func parseSfen(sfen string) (parsed, error) {
	var p parsed
	if len(sfen) != 4 && len(sfen) != 5 {
		return p, fmt.Errorf("%w: %q", ErrBadLength, sfen)
	}
	to, err := shogi.SquareFromSfen(sfen[2:4])
	if err != nil {
		return p, fmt.Errorf("%w: %q", ErrBadSquare, sfen)
	}
	p.to = to

	if sfen[1] == dropMark {
		if len(sfen) != 4 {
			return p, fmt.Errorf("%w: %q", ErrBadLength, sfen)
		}
		piece, err := shogi.PieceFromSfen(sfen[0:1])
		if err != nil || piece.Color() != shogi.Black || !piece.IsDroppable() {
			return p, fmt.Errorf("%w: %q", ErrBadPieceLetter, sfen)
		}
		p.drop = true
		p.dropType = piece.Type()
		return p, nil
	}

	from, err := shogi.SquareFromSfen(sfen[0:2])
	if err != nil {
		return p, fmt.Errorf("%w: %q", ErrBadSquare, sfen)
	}
	p.from = from
	if len(sfen) == 5 {
		if sfen[4] != promMark {
			return p, fmt.Errorf("%w: %q", ErrBadSuffix, sfen)
		}
		p.promote = true
	}
	return p, nil
}

// FromSfen decodes a move when the caller already knows which piece moves
// and what, if anything, it captures. For drops, captured is ignored and
// moved must have the type named by the drop letter.
func FromSfen(sfen string, moved, captured shogi.Piece) (Move, error) {
	if m, ok := sentinelFromSfen(sfen); ok {
		return m, nil
	}
	p, err := parseSfen(sfen)
	if err != nil {
		return None, err
	}
	if p.drop {
		if moved.Type() != p.dropType {
			return None, fmt.Errorf("%w: %q with %v", ErrPieceMismatch, sfen, moved)
		}
		return MakeDrop(moved, p.to), nil
	}
	return MakeBoardMove(moved, p.from, p.to, p.promote, captured), nil
}

// FromSfenPosition decodes a move by reading the moving and captured
// pieces off the board. The source square must hold a piece of the side
// to move.
func FromSfenPosition(sfen string, pos BoardLookup) (Move, error) {
	if m, ok := sentinelFromSfen(sfen); ok {
		return m, nil
	}
	p, err := parseSfen(sfen)
	if err != nil {
		return None, err
	}
	stm := pos.SideToMove()
	if p.drop {
		return MakeDrop(shogi.MakePiece(stm, p.dropType), p.to), nil
	}
	moved := pos.PieceOn(p.from)
	if moved == shogi.NoPiece {
		return None, fmt.Errorf("%w: %q", ErrEmptySource, sfen)
	}
	if moved.Color() != stm {
		return None, fmt.Errorf("%w: %q", ErrNotSideToMove, sfen)
	}
	return MakeBoardMove(moved, p.from, p.to, p.promote, pos.PieceOn(p.to)), nil
}
