package board

import (
	"fmt"
	"strings"

	"github.com/domino14/shogimove/shogi"
)

// ToDisplayText renders the board with White's hand above and Black's hand
// below, the way a diagram is printed in a book.
func (p *Position) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  white hand: " + p.handDisplay(shogi.White) + "\n")
	sb.WriteString("   ")
	for f := shogi.NumFiles; f >= 1; f-- {
		sb.WriteString(fmt.Sprintf("%3d", f))
	}
	sb.WriteString("\n")
	sb.WriteString("   +" + strings.Repeat("-", shogi.NumFiles*3+1) + "+\n")
	for r := shogi.Rank1; r <= shogi.Rank9; r++ {
		sb.WriteString("   |")
		for f := shogi.NumFiles - 1; f >= 0; f-- {
			piece := p.squares[shogi.MakeSquare(shogi.File(f), r)]
			if piece == shogi.NoPiece {
				sb.WriteString("  .")
				continue
			}
			sb.WriteString(fmt.Sprintf("%3s", piece.ToSfen()))
		}
		sb.WriteString(" | " + string(rune('a'+int(r))) + "\n")
	}
	sb.WriteString("   +" + strings.Repeat("-", shogi.NumFiles*3+1) + "+\n")
	sb.WriteString("  black hand: " + p.handDisplay(shogi.Black) + "\n")
	sb.WriteString(fmt.Sprintf("  %v to move, ply %d\n", colorName(p.sideToMove), p.ply))
	return sb.String()
}

func colorName(c shogi.Color) string {
	if c == shogi.Black {
		return "black"
	}
	return "white"
}

func (p *Position) handDisplay(c shogi.Color) string {
	var parts []string
	for _, pt := range handOrder {
		if n := p.hands[c][pt]; n > 0 {
			parts = append(parts, fmt.Sprintf("%v%d", shogi.MakePiece(shogi.Black, pt), n))
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}
