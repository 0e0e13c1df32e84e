package tree

import (
	"fmt"

	"github.com/revelaction/autoredactle/feature"
)

type options struct {
	maxDepth  int
	criterion Criterion
}

// Option configures Train.
type Option func(*options)

// WithMaxDepth bounds the depth of the tree. Zero or negative means no bound.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithCriterion selects the impurity measure. The default is Entropy.
func WithCriterion(c Criterion) Option {
	return func(o *options) {
		o.criterion = c
	}
}

// TrainMatrix trains a tree on a feature matrix and names its features.
func TrainMatrix(m *feature.Matrix, opts ...Option) (*Tree, error) {
	t, err := Train(m.Rows, m.Labels, opts...)
	if err != nil {
		return nil, err
	}
	t.Features = m.Features
	return t, nil
}

// Train fits a classifier predicting labels from the boolean rows.
func Train(rows [][]bool, labels []string, opts ...Option) (*Tree, error) {
	if len(rows) == 0 {
		return nil, NewEmptyCandidateSetError()
	}

	if len(rows) != len(labels) {
		return nil, fmt.Errorf("%w: %d rows, %d labels", ErrInvalidTrainingSet, len(rows), len(labels))
	}

	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrInvalidTrainingSet, i, len(r), width)
		}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tr := newTrainer(rows, labels, o)

	subset := make([]int, len(rows))
	for i := range subset {
		subset[i] = i
	}

	return &Tree{
		Root:    tr.grow(subset, 0),
		Classes: tr.classes,
	}, nil
}

type trainer struct {
	rows     [][]bool
	width    int
	maxDepth int
	scorer   scorer

	classes []string
	classOf []int

	// scratch buffers indexed by class, reset to their zero state after use
	pos     []int
	present []int
}

func newTrainer(rows [][]bool, labels []string, o options) *trainer {
	tr := &trainer{
		rows:     rows,
		width:    len(rows[0]),
		maxDepth: o.maxDepth,
		classOf:  make([]int, len(labels)),
	}

	switch o.criterion {
	case Gini:
		tr.scorer = &giniScorer{}
	default:
		tr.scorer = newEntropyScorer(len(rows))
	}

	seen := map[string]int{}
	for i, l := range labels {
		c, ok := seen[l]
		if !ok {
			c = len(tr.classes)
			seen[l] = c
			tr.classes = append(tr.classes, l)
		}
		tr.classOf[i] = c
	}

	tr.pos = make([]int, len(tr.classes))
	for i := range tr.pos {
		tr.pos[i] = -1
	}
	tr.present = make([]int, len(tr.classes))

	return tr
}

func (tr *trainer) grow(subset []int, depth int) *Node {
	n := tr.node(subset, depth)

	if len(n.Distribution) < 2 {
		return n
	}

	if tr.maxDepth > 0 && depth >= tr.maxDepth {
		return n
	}

	f, ok := tr.bestSplit(subset, n)
	if !ok {
		return n
	}

	var absent, present []int
	for _, r := range subset {
		if tr.rows[r][f] {
			present = append(present, r)
		} else {
			absent = append(absent, r)
		}
	}

	n.Feature = f
	n.Absent = tr.grow(absent, depth+1)
	n.Present = tr.grow(present, depth+1)
	return n
}

// node builds a leaf holding the class distribution of subset.
func (tr *trainer) node(subset []int, depth int) *Node {
	n := &Node{Feature: -1, Samples: len(subset), Depth: depth}

	for _, r := range subset {
		c := tr.classOf[r]
		if tr.pos[c] < 0 {
			tr.pos[c] = len(n.Distribution)
			n.Distribution = append(n.Distribution, ClassCount{Class: c})
		}
		n.Distribution[tr.pos[c]].Count++
	}

	for _, cc := range n.Distribution {
		tr.pos[cc.Class] = -1
	}

	n.Impurity = tr.scorer.impurity(n.Distribution, n.Samples)
	return n
}

// bestSplit returns the lowest feature index among the splits that lower the
// node impurity the most. Splits leaving one side empty are not considered.
func (tr *trainer) bestSplit(subset []int, n *Node) (int, bool) {
	tr.scorer.reset(n)
	best := -1

	for f := 0; f < tr.width; f++ {
		nRight := 0
		for _, r := range subset {
			if tr.rows[r][f] {
				tr.present[tr.classOf[r]]++
				nRight++
			}
		}

		if nRight > 0 && nRight < n.Samples && tr.scorer.offer(n, tr.present, nRight) {
			best = f
		}

		for _, cc := range n.Distribution {
			tr.present[cc.Class] = 0
		}
	}

	return best, best >= 0
}
