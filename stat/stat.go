package stat

import (
	"strings"

	"github.com/revelaction/autoredactle/article"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumArticles         int
	DictionarySize      int
	NumMemberships      int
	WordsPerArticleMean float64
	EmptyArticles       int
	TitleWordsDis       map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler(dictionarySize int) *Handler {
	stats := Stats{DictionarySize: dictionarySize, TitleWordsDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds one article. TitleWordsDis counts articles per number of
// underscore separated title words.
func (h *Handler) Aggregate(a article.Article) {
	h.stats.NumArticles++
	h.stats.NumMemberships += len(a.Words)
	if len(a.Words) == 0 {
		h.stats.EmptyArticles++
	}
	h.stats.TitleWordsDis[len(strings.Split(a.Title, article.TitleSeparator))]++

	h.stats.WordsPerArticleMean = float64(h.stats.NumMemberships) / float64(h.stats.NumArticles)
}

// Index aggregates every article of idx whose title is in titles, or every
// article when titles is nil.
func Index(idx *article.Index, titles []string) Stats {
	hdl := NewHandler(len(idx.Words))

	var keep map[string]struct{}
	if titles != nil {
		keep = make(map[string]struct{}, len(titles))
		for _, t := range titles {
			keep[t] = struct{}{}
		}
	}

	for _, a := range idx.Articles {
		if keep != nil {
			if _, ok := keep[a.Title]; !ok {
				continue
			}
		}
		hdl.Aggregate(a)
	}

	return hdl.Get()
}
