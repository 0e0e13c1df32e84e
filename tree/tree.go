// Package tree implements a deterministic CART classifier over boolean
// features.
//
// Every label is its own class. Splits minimise the weighted impurity of the
// two children (entropy by default, or Gini). Equal splits are detected exactly
// and the lowest feature index wins.
package tree

import (
	"fmt"
)

// ClassCount is the number of training rows of a class in a node.
type ClassCount struct {
	Class int
	Count int
}

// Node is a decision tree node. Leaves have no children and Feature -1.
type Node struct {
	// Feature is the column tested by an internal node.
	Feature int

	// Absent is followed when the feature is false (the word count is zero),
	// Present when it is true.
	Absent  *Node
	Present *Node

	// Distribution holds the classes of the node's training subset in the
	// order they were first encountered.
	Distribution []ClassCount

	Samples  int
	Impurity float64
	Depth    int
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Absent == nil && n.Present == nil
}

// Majority returns the class with the highest count. Ties go to the class
// encountered first.
func (n *Node) Majority() int {
	best := 0
	for i, cc := range n.Distribution {
		if cc.Count > n.Distribution[best].Count {
			best = i
		}
	}
	return n.Distribution[best].Class
}

// Tree is a trained classifier.
type Tree struct {
	Root *Node

	// Classes maps class numbers to labels, in first occurrence order of the
	// training labels.
	Classes []string

	// Features names the columns. It may be nil when the tree was trained on
	// bare rows.
	Features []string
}

// Label returns the majority label of n.
func (t *Tree) Label(n *Node) string {
	return t.Classes[n.Majority()]
}

// Word returns the feature name tested by n.
func (t *Tree) Word(n *Node) string {
	if n.Feature >= 0 && n.Feature < len(t.Features) {
		return t.Features[n.Feature]
	}
	return fmt.Sprintf("feature_%d", n.Feature)
}

// Walk calls fn for every node in pre-order, absent branch first.
func (t *Tree) Walk(fn func(*Node)) {
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		fn(n)
		walk(n.Absent)
		walk(n.Present)
	}
	walk(t.Root)
}

// InternalNodes returns the number of nodes asking a question.
func (t *Tree) InternalNodes() int {
	count := 0
	t.Walk(func(n *Node) {
		if !n.IsLeaf() {
			count++
		}
	})
	return count
}

// Leaves returns the number of leaves.
func (t *Tree) Leaves() int {
	count := 0
	t.Walk(func(n *Node) {
		if n.IsLeaf() {
			count++
		}
	})
	return count
}

// Depth returns the depth of the deepest leaf, the root being at depth 0.
func (t *Tree) Depth() int {
	depth := 0
	t.Walk(func(n *Node) {
		if n.Depth > depth {
			depth = n.Depth
		}
	})
	return depth
}
