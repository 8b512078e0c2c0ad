// Package board holds a snapshot of a shogi position: what stands on each
// square, what each side holds in hand and whose turn it is. It answers
// the questions the move decoder asks and replays moves; it does not
// generate them.
package board

import (
	"errors"
	"fmt"

	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/shogi"
	"github.com/domino14/shogimove/zobrist"
)

var (
	ErrNoMove           = errors.New("cannot play the none move")
	ErrIllegalMove      = errors.New("move fails validation")
	ErrWrongSide        = errors.New("move is for the side not on turn")
	ErrNotInHand        = errors.New("dropped piece is not in hand")
	ErrOccupied         = errors.New("drop square is occupied")
	ErrSourceMismatch   = errors.New("source square does not hold the moving piece")
	ErrCapturedMismatch = errors.New("destination does not hold the captured piece")
)

// Hands counts pieces in hand per color, indexed by unpromoted piece type.
type Hands [shogi.NumColors][shogi.NumPieceTypes]int

// keys is shared by every position in the process. It is written once at
// init and only read afterwards.
var keys = zobrist.New()

// Position is a board, two hands and a side to move.
type Position struct {
	squares    [shogi.NumSquares]shogi.Piece
	hands      Hands
	sideToMove shogi.Color
	ply        int
	key        uint64
}

// NewEmpty returns a position with nothing on the board and Black to move.
func NewEmpty() *Position {
	p := &Position{ply: 1}
	p.rehash()
	return p
}

func (p *Position) rehash() {
	p.key = keys.Hash(p.squares[:], (*[shogi.NumColors][shogi.NumPieceTypes]int)(&p.hands), p.sideToMove)
}

func (p *Position) SideToMove() shogi.Color {
	return p.sideToMove
}

func (p *Position) PieceOn(sq shogi.Square) shogi.Piece {
	if !sq.IsOk() {
		return shogi.NoPiece
	}
	return p.squares[sq]
}

// Hand returns how many pieces of type pt color c holds.
func (p *Position) Hand(c shogi.Color, pt shogi.PieceType) int {
	return p.hands[c][pt]
}

// Ply is the move number, starting from 1.
func (p *Position) Ply() int {
	return p.ply
}

// Key is the zobrist key of the position. It is only comparable within one
// process.
func (p *Position) Key() uint64 {
	return p.key
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// Play applies m. The move must pass IsOk and must agree with the board:
// the moving piece has to be where the move says and the captured piece
// has to be on the destination. Nothing else about legality is checked.
func (p *Position) Play(m move.Move) error {
	if m == move.None {
		return ErrNoMove
	}
	if m == move.Null {
		p.key = keys.AddMove(p.key, m, 0)
		p.sideToMove = p.sideToMove.Opponent()
		p.ply++
		return nil
	}
	if !m.IsOk() {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	piece := m.Piece()
	c := piece.Color()
	if c != p.sideToMove {
		return fmt.Errorf("%w: %v", ErrWrongSide, m)
	}

	handCount := 0
	if m.IsDrop() {
		pt := piece.Type()
		handCount = p.hands[c][pt]
		if handCount == 0 {
			return fmt.Errorf("%w: %v", ErrNotInHand, m)
		}
		if p.squares[m.To()] != shogi.NoPiece {
			return fmt.Errorf("%w: %v", ErrOccupied, m)
		}
		p.hands[c][pt]--
		p.squares[m.To()] = piece
	} else {
		if p.squares[m.From()] != piece {
			return fmt.Errorf("%w: %v", ErrSourceMismatch, m)
		}
		if p.squares[m.To()] != m.CapturedPiece() {
			return fmt.Errorf("%w: %v", ErrCapturedMismatch, m)
		}
		if m.IsCapture() {
			pt := m.CapturedPiece().Type().Unpromoted()
			handCount = p.hands[c][pt]
			if handCount+1 >= zobrist.MaxHandCount {
				return fmt.Errorf("%w: %v", ErrIllegalMove, m)
			}
			p.hands[c][pt]++
		}
		placed := piece
		if m.IsPromotion() {
			placed = shogi.MakePiece(c, piece.Type().Promoted())
		}
		p.squares[m.From()] = shogi.NoPiece
		p.squares[m.To()] = placed
	}
	p.key = keys.AddMove(p.key, m, handCount)
	p.sideToMove = p.sideToMove.Opponent()
	p.ply++
	return nil
}

// Flip returns the position as seen by the other player: the board turned
// around, every piece and hand changing owner, and the other side to move.
// A move m played in p corresponds to m.Flip() played in p.Flip().
func (p *Position) Flip() *Position {
	f := &Position{ply: p.ply, sideToMove: p.sideToMove.Opponent()}
	for sq := shogi.Square(0); sq < shogi.NumSquares; sq++ {
		f.squares[sq.InverseSquare()] = p.squares[sq].OpponentPiece()
	}
	f.hands[shogi.Black] = p.hands[shogi.White]
	f.hands[shogi.White] = p.hands[shogi.Black]
	f.rehash()
	return f
}
