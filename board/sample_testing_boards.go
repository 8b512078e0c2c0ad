package board

// Positions used by tests across packages. The first three come from the
// engine's benchmark command and are rich in drops, promotions and
// captures.
const (
	// the side to move is worse the deeper you look
	BenchBadForWhite = "l4S2l/4g1gs1/5p1p1/pr2N1pkp/4Gn3/PP3PPPP/2GPP4/1K7/L3r+s2L w BS2N5Pb 1"
	// silver takes on 5g mates; Black is worse than it looks
	BenchBadForBlack = "6n1l/2+S1k4/2lp4p/1np1B2b1/3PP4/1N1S3rP/1P2+pPP+p1/1p1G5/3KG2r1 b GSN2L4Pgs2p 1"
	// a move-generation stress position
	BenchManyMoves = "l6nl/5+P1gk/2np1S3/p1p4Pp/3P2Sp1/1PPb2P1P/P5GS1/R8/LN4bKL w RGgsn5p 1"
)

// BenchPositions lists the benchmark positions in order.
var BenchPositions = []string{BenchBadForWhite, BenchBadForBlack, BenchManyMoves}
