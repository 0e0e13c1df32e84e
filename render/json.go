package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/autoredactle/stat"
)

// JSONRenderer writes command results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type candidatesResult struct {
	Pattern    []int    `json:"pattern"`
	Candidates []string `json:"candidates"`
}

// Candidates serializes the compatible titles of a pattern. A nil list is
// written as an empty array.
func (r *JSONRenderer) Candidates(pattern []int, titles []string) error {
	if pattern == nil {
		pattern = []int{}
	}
	if titles == nil {
		titles = []string{}
	}
	return json.NewEncoder(r.W).Encode(candidatesResult{Pattern: pattern, Candidates: titles})
}

type statsResult struct {
	NumArticles         int         `json:"num_articles"`
	DictionarySize      int         `json:"dictionary_size"`
	WordsPerArticleMean float64     `json:"words_per_article_mean"`
	EmptyArticles       int         `json:"empty_articles"`
	TitleWordsDis       map[int]int `json:"title_words"`
}

// Stats serializes index statistics.
func (r *JSONRenderer) Stats(s stat.Stats) error {
	return json.NewEncoder(r.W).Encode(statsResult{
		NumArticles:         s.NumArticles,
		DictionarySize:      s.DictionarySize,
		WordsPerArticleMean: s.WordsPerArticleMean,
		EmptyArticles:       s.EmptyArticles,
		TitleWordsDis:       s.TitleWordsDis,
	})
}
