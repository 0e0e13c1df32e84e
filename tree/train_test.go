package tree

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/autoredactle/feature"
)

func TestTrainFelixRex(t *testing.T) {
	m := &feature.Matrix{
		Rows:     [][]bool{{true, false}, {false, true}},
		Labels:   []string{"Felix", "Rex"},
		Features: []string{"cat", "dog"},
	}

	tr, err := TrainMatrix(m)
	require.NoError(t, err)

	require.Equal(t, 1, tr.InternalNodes())
	assert.Equal(t, 2, tr.Leaves())
	assert.Equal(t, "cat", tr.Word(tr.Root))
	assert.Equal(t, "Rex", tr.Label(tr.Root.Absent))
	assert.Equal(t, "Felix", tr.Label(tr.Root.Present))
	assert.InDelta(t, 1.0, tr.Root.Impurity, 1e-9)
	assert.Equal(t, 2, tr.Root.Samples)

	gini, err := TrainMatrix(m, WithCriterion(Gini))
	require.NoError(t, err)
	assert.Equal(t, "cat", gini.Word(gini.Root))
	assert.InDelta(t, 0.5, gini.Root.Impurity, 1e-9)
}

func TestTrainSingleCandidate(t *testing.T) {
	tr, err := Train([][]bool{{false, true, true}}, []string{"Rex"})
	require.NoError(t, err)

	assert.True(t, tr.Root.IsLeaf())
	assert.Equal(t, 0, tr.InternalNodes())
	assert.Equal(t, "Rex", tr.Label(tr.Root))
	assert.Equal(t, 0.0, tr.Root.Impurity)
}

func TestTrainEmpty(t *testing.T) {
	_, err := Train(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyCandidateSet))
	assert.Equal(t, "no compatible article", err.Error())
}

func TestTrainInvalidTrainingSet(t *testing.T) {
	_, err := Train([][]bool{{true}}, []string{"a", "b"})
	assert.True(t, errors.Is(err, ErrInvalidTrainingSet))

	_, err = Train([][]bool{{true}, {true, false}}, []string{"a", "b"})
	assert.True(t, errors.Is(err, ErrInvalidTrainingSet))
}

func TestTrainTieBreaksOnLowestFeature(t *testing.T) {
	// features 1 and 2 separate A from B equally well, feature 0 is useless.
	rows := [][]bool{
		{true, true, true},
		{true, false, false},
	}
	tr, err := Train(rows, []string{"A", "B"})
	require.NoError(t, err)

	assert.Equal(t, 1, tr.Root.Feature)
}

func TestTrainPrefersBetterSplit(t *testing.T) {
	// feature 0 isolates one article out of four, feature 1 halves the set.
	rows := [][]bool{
		{true, true},
		{false, true},
		{false, false},
		{false, false},
	}
	tr, err := Train(rows, []string{"A", "B", "C", "D"})
	require.NoError(t, err)

	assert.Equal(t, 1, tr.Root.Feature)
	assert.Equal(t, 2, tr.Depth())
}

func TestTrainGiniCannotRankSingletonSplits(t *testing.T) {
	// With one row per class every Gini split scores the same, so the lowest
	// splitting feature is taken.
	rows := [][]bool{
		{true, true},
		{false, true},
		{false, false},
		{false, false},
	}
	tr, err := Train(rows, []string{"A", "B", "C", "D"}, WithCriterion(Gini))
	require.NoError(t, err)

	assert.Equal(t, 0, tr.Root.Feature)
}

func TestParseCriterion(t *testing.T) {
	c, ok := ParseCriterion("gini")
	assert.True(t, ok)
	assert.Equal(t, Gini, c)

	c, ok = ParseCriterion("")
	assert.True(t, ok)
	assert.Equal(t, Entropy, c)

	_, ok = ParseCriterion("variance")
	assert.False(t, ok)
}

func TestTrainIndistinguishableRows(t *testing.T) {
	rows := [][]bool{{true, false}, {true, false}}
	tr, err := Train(rows, []string{"A", "B"})
	require.NoError(t, err)

	require.True(t, tr.Root.IsLeaf())
	assert.Equal(t, []ClassCount{{Class: 0, Count: 1}, {Class: 1, Count: 1}}, tr.Root.Distribution)
	assert.Equal(t, "A", tr.Label(tr.Root))
}

func TestMajorityTieFirstEncounteredInSubset(t *testing.T) {
	// The absent leaf holds B then A, in row order, with one row each.
	rows := [][]bool{{true}, {false}, {false}}
	tr, err := Train(rows, []string{"A", "B", "A"})
	require.NoError(t, err)

	require.False(t, tr.Root.IsLeaf())
	leaf := tr.Root.Absent
	require.True(t, leaf.IsLeaf())
	assert.Equal(t, []ClassCount{{Class: 1, Count: 1}, {Class: 0, Count: 1}}, leaf.Distribution)
	assert.Equal(t, "B", tr.Label(leaf))
	assert.Equal(t, "A", tr.Label(tr.Root.Present))
}

func TestMajorityHighestCount(t *testing.T) {
	n := &Node{Distribution: []ClassCount{{Class: 3, Count: 1}, {Class: 0, Count: 2}, {Class: 1, Count: 2}}}
	assert.Equal(t, 0, n.Majority())
}

func TestTrainMaxDepth(t *testing.T) {
	rows, labels := randomSet(rand.New(rand.NewSource(7)), 40, 30)

	full, err := Train(rows, labels)
	require.NoError(t, err)
	require.Greater(t, full.Depth(), 1)

	bounded, err := Train(rows, labels, WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 1, bounded.Depth())
	assert.Equal(t, 1, bounded.InternalNodes())

	root, err := Train(rows, labels, WithMaxDepth(0))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(full, root))
}

func TestTrainLeavesPredictTrainingLabels(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		rows, labels := randomSet(r, 1+r.Intn(30), 1+r.Intn(12))

		// allow repeated labels too
		if i%2 == 0 {
			for j := range labels {
				labels[j] = fmt.Sprintf("class-%d", r.Intn(5))
			}
		}

		known := map[string]bool{}
		for _, l := range labels {
			known[l] = true
		}

		tr, err := Train(rows, labels)
		require.NoError(t, err)

		tr.Walk(func(n *Node) {
			if n.IsLeaf() {
				assert.True(t, known[tr.Label(n)], "leaf label %q not in training labels", tr.Label(n))
			} else {
				assert.NotNil(t, n.Absent)
				assert.NotNil(t, n.Present)
			}
		})
	}
}

func TestTrainDistinctRowsGivePureLeaves(t *testing.T) {
	rows := [][]bool{
		{false, false, false},
		{false, false, true},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	labels := []string{"a", "b", "c", "d", "e"}

	tr, err := Train(rows, labels)
	require.NoError(t, err)

	assert.Equal(t, 5, tr.Leaves())
	tr.Walk(func(n *Node) {
		if n.IsLeaf() {
			assert.Len(t, n.Distribution, 1)
			assert.Equal(t, 0.0, n.Impurity)
		}
	})
}

func TestTrainIdempotent(t *testing.T) {
	rows, labels := randomSet(rand.New(rand.NewSource(3)), 60, 25)

	for _, c := range []Criterion{Entropy, Gini} {
		t.Run(c.String(), func(t *testing.T) {
			a, err := Train(rows, labels, WithCriterion(c))
			require.NoError(t, err)
			b, err := Train(rows, labels, WithCriterion(c))
			require.NoError(t, err)

			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("trees differ (-first +second):\n%s", diff)
			}
		})
	}
}

func randomSet(r *rand.Rand, n, width int) ([][]bool, []string) {
	rows := make([][]bool, n)
	labels := make([]string, n)
	for i := range rows {
		rows[i] = make([]bool, width)
		for j := range rows[i] {
			rows[i][j] = r.Intn(3) == 0
		}
		labels[i] = fmt.Sprintf("article-%d", i)
	}
	return rows, labels
}
