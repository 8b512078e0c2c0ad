// Package move implements the packed representation of a single shogi move,
// along with its validation, hashing, mirroring and SFEN notation.
package move

import (
	"github.com/domino14/shogimove/shogi"
)

// Move packs everything about one ply into 32 bits. It is a plain value:
// copy it freely, compare it with ==.
type Move uint32

// Layout
// 31       23       15       7
// xxxxxxxx xxxxxxxx xxxxxxxx xxxxxxxx
// ......cc cccCpppp dsssssss Pttttttt
// t - destination square
// P - promotion flag
// s - source square (0 for drops)
// d - drop flag
// p - piece type; together with C (color) this is the moving piece
// c - captured piece
const (
	destinationShift = 0
	promotionShift   = 7
	sourceShift      = 8
	dropShift        = 15
	pieceShift       = 16
	capturedShift    = 21

	keyDestination Move = 0x7f << destinationShift
	keyPromotion   Move = 1 << promotionShift
	keySource      Move = 0x7f << sourceShift
	keyDrop        Move = 1 << dropShift
	keyPieceType   Move = 0x0f << pieceShift
	keyPiece       Move = 0x1f << pieceShift
	keyCaptured    Move = 0x1f << capturedShift
	keyAll         Move = keyDestination | keyPromotion | keySource | keyDrop |
		keyPiece | keyCaptured
)

const (
	// None is the absence of a move.
	None Move = 0
	// Null is a pass. It has no piece, which no real move can lack.
	Null Move = Move(shogi.SquareNone)<<sourceShift | Move(shogi.SquareNone)<<destinationShift
)

// MakeDrop creates a drop of piece onto to. The piece must be droppable and
// to must be on the board; IsOk checks both.
func MakeDrop(piece shogi.Piece, to shogi.Square) Move {
	return Move(to)<<destinationShift |
		keyDrop |
		Move(piece)<<pieceShift
}

// MakeBoardMove creates a move of a piece already on the board.
// Pass shogi.NoPiece as captured for a non-capture.
func MakeBoardMove(piece shogi.Piece, from, to shogi.Square, promote bool,
	captured shogi.Piece) Move {

	m := Move(to)<<destinationShift |
		Move(from)<<sourceShift |
		Move(piece)<<pieceShift |
		Move(captured)<<capturedShift
	if promote {
		m |= keyPromotion
	}
	return m
}

func (m Move) IsDrop() bool {
	return m&keyDrop != 0
}

func (m Move) IsPromotion() bool {
	return m&keyPromotion != 0
}

func (m Move) IsCapture() bool {
	return m&keyCaptured != 0
}

func (m Move) IsCaptureOrPromotion() bool {
	return m&(keyCaptured|keyPromotion) != 0
}

// IsQuiet is true for moves that neither capture nor drop.
func (m Move) IsQuiet() bool {
	return m&(keyCaptured|keyDrop) == 0
}

// IsRealMove is false for the None and Null sentinels.
func (m Move) IsRealMove() bool {
	return m != None && m != Null
}

func (m Move) Piece() shogi.Piece {
	return shogi.Piece((m & keyPiece) >> pieceShift)
}

func (m Move) PieceType() shogi.PieceType {
	return shogi.PieceType((m & keyPieceType) >> pieceShift)
}

// From is the source square. It is meaningless for drops.
func (m Move) From() shogi.Square {
	return shogi.Square((m & keySource) >> sourceShift)
}

func (m Move) To() shogi.Square {
	return shogi.Square((m & keyDestination) >> destinationShift)
}

func (m Move) CapturedPiece() shogi.Piece {
	return shogi.Piece((m & keyCaptured) >> capturedShift)
}

// Key is the packed word.
func (m Move) Key() uint32 {
	return uint32(m & keyAll)
}

func (m Move) String() string {
	return m.ToSfen()
}

// Flip returns the move as the opponent would see it: squares rotated 180
// degrees and every piece handed to the other side. Flip(Flip(m)) == m.
// The sentinels are returned unchanged.
func (m Move) Flip() Move {
	if !m.IsRealMove() {
		return m
	}
	if m.IsDrop() {
		return MakeDrop(m.Piece().OpponentPiece(), m.To().InverseSquare())
	}
	captured := shogi.NoPiece
	if m.IsCapture() {
		captured = m.CapturedPiece().OpponentPiece()
	}
	return MakeBoardMove(m.Piece().OpponentPiece(),
		m.From().InverseSquare(),
		m.To().InverseSquare(),
		m.IsPromotion(),
		captured)
}
