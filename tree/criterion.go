package tree

import (
	"math"
	"math/bits"
)

// Criterion is the impurity measure minimised by the splits.
type Criterion int

const (
	// Entropy is the Shannon entropy in bits. It favours balanced splits when
	// every class has a single row, which is the usual case for articles.
	Entropy Criterion = iota

	// Gini is the Gini impurity.
	Gini
)

func (c Criterion) String() string {
	switch c {
	case Gini:
		return "gini"
	default:
		return "entropy"
	}
}

// ParseCriterion converts "gini" or "entropy" to a Criterion.
func ParseCriterion(s string) (Criterion, bool) {
	switch s {
	case "gini":
		return Gini, true
	case "entropy", "":
		return Entropy, true
	}
	return Entropy, false
}

// scorer keeps the best split of a node.
type scorer interface {
	// impurity returns the impurity of a node distribution.
	impurity(dist []ClassCount, samples int) float64

	// reset sets the parent node as the split to beat.
	reset(n *Node)

	// offer scores a split, present[c] being the rows of class c having the
	// feature. It reports whether the split beats every previous offer.
	offer(n *Node, present []int, nRight int) bool
}

// entropyEpsilon absorbs float rounding so that equal splits stay equal and
// the lowest feature index wins.
const entropyEpsilon = 1e-9

// entropyScorer minimises the weighted entropy n*H = n log n - sum(c log c),
// summed over both children. Values come from a k*log2(k) table and are only
// added, so equal inputs give bit-identical costs.
type entropyScorer struct {
	xlogx []float64
	best  float64
}

func newEntropyScorer(rows int) *entropyScorer {
	xlogx := make([]float64, rows+1)
	for k := 2; k <= rows; k++ {
		xlogx[k] = float64(k) * math.Log2(float64(k))
	}
	return &entropyScorer{xlogx: xlogx}
}

func (s *entropyScorer) cost(dist []ClassCount, samples int) float64 {
	c := s.xlogx[samples]
	for _, cc := range dist {
		c -= s.xlogx[cc.Count]
	}
	return c
}

func (s *entropyScorer) impurity(dist []ClassCount, samples int) float64 {
	return s.cost(dist, samples) / float64(samples)
}

func (s *entropyScorer) reset(n *Node) {
	s.best = s.cost(n.Distribution, n.Samples)
}

func (s *entropyScorer) offer(n *Node, present []int, nRight int) bool {
	nLeft := n.Samples - nRight
	c := s.xlogx[nLeft] + s.xlogx[nRight]
	for _, cc := range n.Distribution {
		right := present[cc.Class]
		c -= s.xlogx[cc.Count-right]
		c -= s.xlogx[right]
	}

	if c < s.best-entropyEpsilon {
		s.best = c
		return true
	}
	return false
}

// giniScorer maximises SL/nL + SR/nR, S being the sum of the squared class
// counts of a side: the weighted Gini of a split is 1 - (SL/nL + SR/nR)/n.
// Ratios are compared exactly.
type giniScorer struct {
	best ratio
}

func (s *giniScorer) impurity(dist []ClassCount, samples int) float64 {
	total := uint64(samples)
	return 1 - float64(sumSquares(dist))/float64(total*total)
}

func (s *giniScorer) reset(n *Node) {
	s.best = ratio{num: sumSquares(n.Distribution), den: uint64(n.Samples)}
}

func (s *giniScorer) offer(n *Node, present []int, nRight int) bool {
	var sLeft, sRight uint64
	for _, cc := range n.Distribution {
		right := uint64(present[cc.Class])
		left := uint64(cc.Count) - right
		sLeft += left * left
		sRight += right * right
	}

	nr := uint64(nRight)
	nl := uint64(n.Samples) - nr
	score := ratio{
		num: sLeft*nr + sRight*nl,
		den: nl * nr,
	}

	if score.greater(s.best) {
		s.best = score
		return true
	}
	return false
}

func sumSquares(dist []ClassCount) uint64 {
	var s uint64
	for _, cc := range dist {
		c := uint64(cc.Count)
		s += c * c
	}
	return s
}

// ratio is the non-negative fraction num/den.
type ratio struct {
	num, den uint64
}

// greater reports whether r > o, using 128 bit products.
func (r ratio) greater(o ratio) bool {
	ahi, alo := bits.Mul64(r.num, o.den)
	bhi, blo := bits.Mul64(o.num, r.den)
	if ahi != bhi {
		return ahi > bhi
	}
	return alo > blo
}
