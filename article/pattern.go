package article

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// TitleSeparator separates the words of a canonical title.
const TitleSeparator = "_"

// Pattern is the sequence of per-word letter lengths of a redacted title. An
// empty Pattern matches every article.
type Pattern []int

// ParsePattern converts a redacted title like "███ █████" into its length
// pattern. Each word is a run of placeholder characters, any character counts
// as one letter.
func ParsePattern(redacted string) Pattern {
	words := strings.Fields(redacted)
	p := make(Pattern, 0, len(words))
	for _, w := range words {
		p = append(p, utf8.RuneCountInString(w))
	}
	return p
}

// TitlePattern returns the per-word lengths of a canonical title.
func TitlePattern(title string) Pattern {
	words := strings.Split(title, TitleSeparator)
	p := make(Pattern, 0, len(words))
	for _, w := range words {
		p = append(p, utf8.RuneCountInString(w))
	}
	return p
}

// Equal reports whether both patterns have the same lengths at the same
// positions.
func (p Pattern) Equal(o Pattern) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	sl := make([]string, 0, len(p))
	for _, n := range p {
		sl = append(sl, strconv.Itoa(n))
	}
	return "[" + strings.Join(sl, " ") + "]"
}

// Filter returns, in index order, the titles whose length pattern equals p.
func Filter(idx *Index, p Pattern) []string {
	if len(p) == 0 {
		return idx.Titles()
	}

	var titles []string
	for _, a := range idx.Articles {
		if TitlePattern(a.Title).Equal(p) {
			titles = append(titles, a.Title)
		}
	}
	return titles
}
