package stats

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/domino14/shogimove/move"
	"github.com/domino14/shogimove/shogi"
)

const numBuckets = 2048

// HashAnalysis describes how the perfect hash spreads the quiet moves it
// is defined on. Collisions only count moves of the same color, since
// PerfectHash consumers keep a table per color.
type HashAnalysis struct {
	Moves      int
	Distinct   int
	Collisions int
	// Shared counts hash values used by both a black and a white move.
	Shared  int
	MaxHash uint32
	// BucketLoad is the number of moves landing on each displacement slot.
	BucketLoad []float64
	LoadMean   float64
	LoadStdev  float64
	// Uniformity is the chi-square p-value of the bucket loads against an
	// even spread.
	Uniformity float64
	HashValues Statistic
	PerType    map[shogi.PieceType]int
}

// AnalyzePerfectHash hashes every quiet move.
func AnalyzePerfectHash() (*HashAnalysis, error) {
	var moves []move.Move
	move.EnumerateQuiet(func(m move.Move) bool {
		moves = append(moves, m)
		return true
	})

	a := &HashAnalysis{
		Moves:      len(moves),
		BucketLoad: make([]float64, numBuckets),
	}
	var seen [shogi.NumColors]map[uint32]struct{}
	for c := range seen {
		seen[c] = make(map[uint32]struct{}, len(moves)/2)
	}
	for _, m := range moves {
		h, err := m.PerfectHash()
		if err != nil {
			return nil, fmt.Errorf("hashing %v: %w", m, err)
		}
		seen[m.Piece().Color()][h] = struct{}{}
		a.MaxHash = max(a.MaxHash, h)
		a.BucketLoad[m.PerfectHashIndex()]++
		a.HashValues.Push(float64(h))
	}
	a.Distinct = len(seen[shogi.Black]) + len(seen[shogi.White])
	a.Collisions = a.Moves - a.Distinct
	for h := range seen[shogi.Black] {
		if _, ok := seen[shogi.White][h]; ok {
			a.Shared++
		}
	}
	a.LoadMean, a.LoadStdev = stat.MeanStdDev(a.BucketLoad, nil)
	a.Uniformity = uniformity(a.BucketLoad)
	a.PerType = lo.CountValuesBy(moves, func(m move.Move) shogi.PieceType {
		return m.PieceType()
	})
	return a, nil
}

func uniformity(load []float64) float64 {
	total := lo.Sum(load)
	if total == 0 {
		return 1
	}
	expected := make([]float64, len(load))
	for i := range expected {
		expected[i] = total / float64(len(load))
	}
	chi := stat.ChiSquare(load, expected)
	dist := distuv.ChiSquared{K: float64(len(load) - 1)}
	return dist.Survival(chi)
}

// Histogram draws the distribution of bucket loads.
func (a *HashAnalysis) Histogram(w io.Writer, bins, width int) error {
	h := histogram.Hist(bins, a.BucketLoad)
	return histogram.Fprint(w, h, histogram.Linear(width))
}

func (a *HashAnalysis) String() string {
	return fmt.Sprintf("moves: %d distinct: %d collisions: %d shared by both colors: %d max: %d\n"+
		"hash values: %.1f ± %.1f bucket load: %.2f ± %.2f uniformity p: %.3f",
		a.Moves, a.Distinct, a.Collisions, a.Shared, a.MaxHash,
		a.HashValues.Mean(), a.HashValues.Stdev(),
		a.LoadMean, a.LoadStdev, a.Uniformity)
}
