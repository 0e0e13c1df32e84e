package game

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/logging"
	"github.com/revelaction/autoredactle/navigate"
	"github.com/revelaction/autoredactle/tree"
)

func testIndex() *article.Index {
	return &article.Index{
		Words: article.Dictionary{"cat", "dog"},
		Articles: []article.Article{
			{Title: "Felix", Words: []int{0}},
			{Title: "Rex", Words: []int{1}},
		},
	}
}

// answers replies from a fixed map and records the asked words.
type answers struct {
	counts map[string]int
	asked  []string
}

func (a *answers) Ask(word string) (int, error) {
	a.asked = append(a.asked, word)
	return a.counts[word], nil
}

func TestPlayFelix(t *testing.T) {
	a := &answers{counts: map[string]int{"cat": 3, "dog": 0}}

	res, err := Play(testIndex(), "█████", a, Options{Logger: logging.Discard()})
	require.NoError(t, err)

	assert.Equal(t, "Felix", res.Guess.Title)
	assert.Equal(t, article.Pattern{5}, res.Pattern)
	assert.Equal(t, 1, res.Candidates)
	// single candidate, nothing to ask
	assert.Empty(t, a.asked)
	assert.NotEqual(t, uuid.Nil, res.Session)
}

func TestPlayEmptyPatternAsksCat(t *testing.T) {
	a := &answers{counts: map[string]int{"cat": 0}}

	res, err := Play(testIndex(), "", a, Options{Logger: logging.Discard()})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Candidates)
	assert.Equal(t, []string{"cat"}, a.asked)
	assert.Equal(t, "Rex", res.Guess.Title)
	assert.Equal(t, []navigate.Step{{Word: "cat", Count: 0}}, res.Guess.Steps)
}

func TestPlayThreeLettersNoPrompt(t *testing.T) {
	a := &answers{}

	res, err := Play(testIndex(), "███", a, Options{Logger: logging.Discard()})
	require.NoError(t, err)

	assert.Equal(t, "Rex", res.Guess.Title)
	assert.Empty(t, a.asked)
}

func TestPlayNoCompatibleArticle(t *testing.T) {
	a := &answers{}

	res, err := Play(testIndex(), "██ ██", a, Options{Logger: logging.Discard()})
	require.Error(t, err)

	assert.ErrorIs(t, err, tree.ErrEmptyCandidateSet)
	assert.Equal(t, "no compatible article", err.Error())
	assert.Zero(t, res.Candidates)
	assert.Empty(t, a.asked)
}

func TestPlayTreeOut(t *testing.T) {
	idx := &article.Index{
		Words: article.Dictionary{"cat", "dog"},
		Articles: []article.Article{
			{Title: "Tom", Words: []int{0}},
			{Title: "Rex", Words: []int{1}},
		},
	}

	var out bytes.Buffer
	a := &answers{counts: map[string]int{"cat": 1}}
	res, err := Play(idx, "███", a, Options{TreeOut: &out, Logger: logging.Discard()})
	require.NoError(t, err)

	assert.Equal(t, "Tom", res.Guess.Title)
	assert.Equal(t, "|--- cat absent\n|   |--- class: Rex\n|--- cat present\n|   |--- class: Tom\n", out.String())
}

func TestPlayMaxDepth(t *testing.T) {
	idx := &article.Index{
		Words: article.Dictionary{"a", "b"},
		Articles: []article.Article{
			{Title: "One", Words: []int{0, 1}},
			{Title: "Two", Words: []int{0}},
			{Title: "Six", Words: []int{1}},
			{Title: "Ten"},
		},
	}

	a := &answers{counts: map[string]int{"a": 1, "b": 1}}
	res, err := Play(idx, "███", a, Options{MaxDepth: 1, Logger: logging.Discard()})
	require.NoError(t, err)

	assert.Len(t, a.asked, 1)
	assert.Len(t, res.Guess.Steps, 1)
}

func TestPlayPropagatesAskerError(t *testing.T) {
	boom := errors.New("boom")
	a := navigate.AskFunc(func(string) (int, error) { return 0, boom })

	_, err := Play(testIndex(), "", a, Options{Logger: logging.Discard()})
	assert.ErrorIs(t, err, boom)
}

func TestPlayInvalidIndex(t *testing.T) {
	tests := []struct {
		name string
		idx  *article.Index
	}{
		{"missing dictionary", &article.Index{Articles: []article.Article{{Title: "Felix"}}}},
		{"out of range", &article.Index{
			Words:    article.Dictionary{"cat"},
			Articles: []article.Article{{Title: "Felix", Words: []int{4}}},
		}},
		// Rome is not a candidate but still aborts the game
		{"not a candidate", &article.Index{
			Words:    article.Dictionary{"cat"},
			Articles: []article.Article{{Title: "Felix", Words: []int{0}}, {Title: "Rome", Words: []int{1}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &answers{}
			_, err := Play(tt.idx, "█████", a, Options{Logger: logging.Discard()})
			assert.ErrorIs(t, err, article.ErrInvalidIndex)
			assert.Empty(t, a.asked)
		})
	}
}

func TestPlayLogsSession(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := Play(testIndex(), "", &answers{counts: map[string]int{"cat": 2}}, Options{Logger: logger})
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "session="+res.Session.String())
	assert.Contains(t, logs, "title=Felix")
	assert.Contains(t, logs, "rows=2")
	assert.Equal(t, 4, strings.Count(logs, "session="))
}
