// Package game plays one round: it narrows the index to the titles matching
// the redacted pattern, trains a tree on them and walks it with an Asker.
package game

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/feature"
	"github.com/revelaction/autoredactle/logging"
	"github.com/revelaction/autoredactle/navigate"
	"github.com/revelaction/autoredactle/render"
	"github.com/revelaction/autoredactle/tree"
)

type Options struct {
	// MaxDepth bounds the number of questions. Zero means no bound.
	MaxDepth int

	Criterion tree.Criterion

	// TreeOut receives a text export of the trained tree before the first
	// question.
	TreeOut io.Writer

	Logger *slog.Logger
}

type Result struct {
	Session    uuid.UUID
	Pattern    article.Pattern
	Candidates int
	Guess      navigate.Guess
}

// Play guesses the article behind redacted. The whole index is validated
// first. It returns an error matching tree.ErrEmptyCandidateSet when no title
// has the redacted pattern.
func Play(idx *article.Index, redacted string, a navigate.Asker, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.New("game")
	}

	if err := idx.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{
		Session: uuid.New(),
		Pattern: article.ParsePattern(redacted),
	}
	logger = logger.With(slog.String("session", res.Session.String()))

	titles := article.Filter(idx, res.Pattern)
	res.Candidates = len(titles)
	logger.Debug("filtered candidates", "pattern", res.Pattern.String(), "articles", idx.Len(), "candidates", res.Candidates)

	if len(titles) == 0 {
		return res, tree.NewEmptyCandidateSetError()
	}

	m, err := feature.Build(idx, titles)
	if err != nil {
		return res, err
	}

	t, err := tree.TrainMatrix(m, tree.WithMaxDepth(opts.MaxDepth), tree.WithCriterion(opts.Criterion))
	if err != nil {
		return res, err
	}
	logger.Debug("trained tree", "rows", m.Len(), "criterion", opts.Criterion.String(), "internal_nodes", t.InternalNodes(), "leaves", t.Leaves(), "depth", t.Depth())

	if opts.TreeOut != nil {
		if err := render.WriteTree(opts.TreeOut, t); err != nil {
			return res, fmt.Errorf("tree export: %w", err)
		}
	}

	asker := navigate.AskFunc(func(word string) (int, error) {
		n, err := a.Ask(word)
		if err == nil {
			logger.Debug("answer", "word", word, "count", n)
		}
		return n, err
	})

	res.Guess, err = navigate.Walk(t, asker)
	if err != nil {
		return res, err
	}

	logger.Debug("guess", "title", res.Guess.Title, "questions", len(res.Guess.Steps))
	return res, nil
}
