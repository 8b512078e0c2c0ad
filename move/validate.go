package move

import (
	"github.com/domino14/shogimove/shogi"
)

// IsOk checks the move against every rule that can be decided without
// looking at a board. None and Null are always ok.
func (m Move) IsOk() bool {
	if m == None || m == Null {
		return true
	}

	piece := m.Piece()
	if !piece.IsOk() || !m.CapturedPiece().IsOk() || !m.To().IsOk() ||
		piece == shogi.NoPiece {
		return false
	}

	if m.IsDrop() {
		if !piece.IsDroppable() {
			return false
		}
		if m.IsCaptureOrPromotion() {
			return false
		}
	} else {
		if !m.From().IsOk() || m.From() == m.To() {
			return false
		}
		if m.IsPromotion() {
			if !piece.CanPromote() {
				return false
			}
			if !m.From().IsPromotionZoneOf(piece.Color()) &&
				!m.To().IsPromotionZoneOf(piece.Color()) {
				return false
			}
		}
		if m.IsCapture() && m.CapturedPiece().Color() == piece.Color() {
			return false
		}
	}

	// A piece may not end up somewhere it could never move from again.
	if m.IsDrop() || !m.IsPromotion() {
		rank := shogi.RelativeRank(piece.Color(), m.To().Rank())
		switch piece.Type() {
		case shogi.Pawn, shogi.Lance:
			if rank == shogi.Rank1 {
				return false
			}
		case shogi.Knight:
			if rank <= shogi.Rank2 {
				return false
			}
		}
	}
	return true
}

// IsInferior reports whether a legal move is dominated by the same move
// with promotion. Drops are never inferior.
func (m Move) IsInferior() bool {
	if m.IsDrop() {
		return false
	}
	stm := m.Piece().Color()

	switch m.PieceType() {
	case shogi.Pawn, shogi.Bishop, shogi.Rook:
		// promoting these never loses anything
		if !m.IsPromotion() &&
			(m.From().IsPromotionZoneOf(stm) || m.To().IsPromotionZoneOf(stm)) {
			return true
		}
	case shogi.Lance:
		if !m.IsPromotion() && shogi.RelativeRank(stm, m.To().Rank()) == shogi.Rank2 {
			return true
		}
	}
	return false
}
