// Package navigate walks a trained tree, asking for the count of one word per
// internal node.
package navigate

import (
	"errors"
	"fmt"

	"github.com/revelaction/autoredactle/tree"
)

// ErrInvalidAnswer is the sentinel matched by InvalidAnswerError.
var ErrInvalidAnswer = errors.New("invalid answer")

// InvalidAnswerError reports a count that is not a non-negative integer.
type InvalidAnswerError struct {
	Word   string
	Answer string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer '%s' for word '%s': want a non-negative integer", e.Answer, e.Word)
}

func (e *InvalidAnswerError) Is(target error) bool {
	return target == ErrInvalidAnswer
}

// NewInvalidAnswerError creates a new InvalidAnswerError
func NewInvalidAnswerError(word, answer string) *InvalidAnswerError {
	return &InvalidAnswerError{Word: word, Answer: answer}
}

// Asker returns how many times word occurs in the secret article. It may block
// until the operator answers.
type Asker interface {
	Ask(word string) (int, error)
}

// AskFunc adapts a function to the Asker interface.
type AskFunc func(word string) (int, error)

func (f AskFunc) Ask(word string) (int, error) {
	return f(word)
}

// Step is one answered question.
type Step struct {
	Word  string
	Count int
}

// Guess is the outcome of a walk.
type Guess struct {
	Title string
	Steps []Step
}

// Walk descends from the root, following the absent branch on a zero count and
// the present branch otherwise, and returns the majority label of the leaf it
// reaches. A tree that is a single leaf is answered without asking.
func Walk(t *tree.Tree, a Asker) (Guess, error) {
	var g Guess

	n := t.Root
	for !n.IsLeaf() {
		word := t.Word(n)

		count, err := a.Ask(word)
		if err != nil {
			return g, err
		}

		if count < 0 {
			return g, NewInvalidAnswerError(word, fmt.Sprint(count))
		}

		g.Steps = append(g.Steps, Step{Word: word, Count: count})

		if count == 0 {
			n = n.Absent
		} else {
			n = n.Present
		}
	}

	g.Title = t.Label(n)
	return g, nil
}

// Navigate is Walk returning only the guessed title.
func Navigate(t *tree.Tree, a Asker) (string, error) {
	g, err := Walk(t, a)
	if err != nil {
		return "", err
	}
	return g.Title, nil
}
