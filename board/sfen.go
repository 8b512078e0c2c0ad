package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/shogimove/shogi"
	"github.com/domino14/shogimove/zobrist"
)

// StartSfen is the initial position of a game.
const StartSfen = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

var ErrBadPositionSfen = errors.New("malformed sfen position")

// hand pieces are written in this order, most valuable first.
var handOrder = []shogi.PieceType{shogi.Rook, shogi.Bishop, shogi.Gold,
	shogi.Silver, shogi.Knight, shogi.Lance, shogi.Pawn}

// StartPos returns the initial position.
func StartPos() *Position {
	p, err := FromSfen(StartSfen)
	if err != nil {
		panic(err)
	}
	return p
}

func sfenError(sfen, reason string) error {
	return fmt.Errorf("%w: %s: %q", ErrBadPositionSfen, reason, sfen)
}

// FromSfen parses "<board> <side> <hands> [ply]".
func FromSfen(sfen string) (*Position, error) {
	fields := strings.Fields(sfen)
	if len(fields) != 3 && len(fields) != 4 {
		return nil, sfenError(sfen, "expected 3 or 4 fields")
	}
	p := &Position{ply: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != shogi.NumRanks {
		return nil, sfenError(sfen, "expected 9 ranks")
	}
	for r, rankStr := range ranks {
		// files run from 9 down to 1 within a rank
		f := shogi.NumFiles - 1
		promoted := false
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			switch {
			case ch >= '1' && ch <= '9':
				if promoted {
					return nil, sfenError(sfen, "'+' before a digit")
				}
				f -= int(ch - '0')
			case ch == '+':
				promoted = true
			default:
				if f < 0 {
					return nil, sfenError(sfen, "rank too long")
				}
				letter := string(ch)
				if promoted {
					letter = "+" + letter
				}
				piece, err := shogi.PieceFromSfen(letter)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrBadPositionSfen, err)
				}
				p.squares[shogi.MakeSquare(shogi.File(f), shogi.Rank(r))] = piece
				promoted = false
				f--
			}
		}
		if f != -1 || promoted {
			return nil, sfenError(sfen, "rank "+strconv.Itoa(r+1)+" has the wrong length")
		}
	}

	switch fields[1] {
	case "b":
		p.sideToMove = shogi.Black
	case "w":
		p.sideToMove = shogi.White
	default:
		return nil, sfenError(sfen, "side to move must be b or w")
	}

	if err := p.parseHands(fields[2]); err != nil {
		return nil, fmt.Errorf("%w: %w", sfenError(sfen, "hands"), err)
	}

	if len(fields) == 4 {
		ply, err := strconv.Atoi(fields[3])
		if err != nil || ply < 1 {
			return nil, sfenError(sfen, "bad ply")
		}
		p.ply = ply
	}
	p.rehash()
	return p, nil
}

func (p *Position) parseHands(s string) error {
	if s == "-" {
		return nil
	}
	count := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			if count == 0 && ch == '0' {
				return errors.New("hand count starts with 0")
			}
			count = count*10 + int(ch-'0')
			if count >= zobrist.MaxHandCount {
				return fmt.Errorf("hand count %d too large", count)
			}
			continue
		}
		piece, err := shogi.PieceFromSfen(string(ch))
		if err != nil {
			return err
		}
		if !piece.IsDroppable() {
			return fmt.Errorf("%w: %v cannot be held", shogi.ErrInvalidPiece, piece)
		}
		if count == 0 {
			count = 1
		}
		p.hands[piece.Color()][piece.Type()] += count
		if p.hands[piece.Color()][piece.Type()] >= zobrist.MaxHandCount {
			return fmt.Errorf("too many %v in hand", piece)
		}
		count = 0
	}
	if count != 0 {
		return errors.New("trailing count in hands")
	}
	return nil
}

// ToSfen writes the position in the form FromSfen reads.
func (p *Position) ToSfen() string {
	return p.BoardSfen() + " " + strconv.Itoa(p.ply)
}

// BoardSfen is ToSfen without the ply, which identifies the position
// regardless of how it was reached.
func (p *Position) BoardSfen() string {
	var sb strings.Builder
	for r := shogi.Rank1; r <= shogi.Rank9; r++ {
		empty := 0
		for f := shogi.NumFiles - 1; f >= 0; f-- {
			piece := p.squares[shogi.MakeSquare(shogi.File(f), r)]
			if piece == shogi.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.ToSfen())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != shogi.Rank9 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.handsSfen())
	return sb.String()
}

func (p *Position) handsSfen() string {
	var sb strings.Builder
	for _, c := range []shogi.Color{shogi.Black, shogi.White} {
		for _, pt := range handOrder {
			n := p.hands[c][pt]
			if n == 0 {
				continue
			}
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteString(shogi.MakePiece(c, pt).ToSfen())
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
