// Package feature turns a candidate set into the boolean article x word
// matrix the decision tree is trained on.
package feature

import (
	"github.com/revelaction/autoredactle/article"
)

// Matrix is a word presence matrix. Rows[i][j] is true iff the article
// Labels[i] contains the word Features[j].
type Matrix struct {
	Rows     [][]bool
	Labels   []string
	Features []string
}

// Build constructs the matrix for the given candidate titles.
//
// Rows follow the index order, not the order of titles, so that the same
// candidate set always produces the same matrix. Titles unknown to the index
// are ignored.
func Build(idx *article.Index, titles []string) (*Matrix, error) {
	if len(idx.Words) == 0 {
		return nil, article.NewInvalidIndexError("missing dictionary", "", 0)
	}

	candidates := make(map[string]bool, len(titles))
	for _, t := range titles {
		candidates[t] = true
	}

	m := &Matrix{Features: idx.Words}
	for _, a := range idx.Articles {
		if !candidates[a.Title] {
			continue
		}

		row, err := presence(idx, a)
		if err != nil {
			return nil, err
		}

		m.Rows = append(m.Rows, row)
		m.Labels = append(m.Labels, a.Title)
	}

	return m, nil
}

func presence(idx *article.Index, a article.Article) ([]bool, error) {
	if err := idx.ValidateArticle(a); err != nil {
		return nil, err
	}

	row := make([]bool, len(idx.Words))
	for _, w := range a.Words {
		row[w] = true
	}
	return row, nil
}

// Len returns the number of rows.
func (m *Matrix) Len() int {
	return len(m.Rows)
}
