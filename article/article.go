package article

// WordsKey is the reserved index key holding the dictionary.
const WordsKey = ":words"

// Dictionary is the ordered feature vocabulary of an index. The position of a
// word is its feature index.
type Dictionary []string

// Article is an indexed article.
type Article struct {
	// Canonical title, words separated by TitleSeparator.
	Title string

	// Dictionary positions of the words present at least once in the
	// article body.
	Words []int
}

// Index pairs a Dictionary with the membership sets of every known article.
//
// Articles keep the order in which they were loaded. That order is the
// enumeration order used by the filter and the feature matrix, so it must not
// depend on map iteration.
type Index struct {
	Words    Dictionary
	Articles []Article
}

// Len returns the number of articles.
func (idx *Index) Len() int {
	return len(idx.Articles)
}

// Titles returns all article titles in index order.
func (idx *Index) Titles() []string {
	titles := make([]string, 0, len(idx.Articles))
	for _, a := range idx.Articles {
		titles = append(titles, a.Title)
	}
	return titles
}

// Validate checks that the dictionary is present and that every membership
// index points inside it.
func (idx *Index) Validate() error {
	if len(idx.Words) == 0 {
		return NewInvalidIndexError("missing dictionary", "", 0)
	}

	for _, a := range idx.Articles {
		if err := idx.validateArticle(a); err != nil {
			return err
		}
	}
	return nil
}

func (idx *Index) validateArticle(a Article) error {
	for _, w := range a.Words {
		if w < 0 || w >= len(idx.Words) {
			return NewInvalidIndexError("membership index out of range", a.Title, w)
		}
	}
	return nil
}

// ValidateArticle checks the membership set of a single article against the
// dictionary.
func (idx *Index) ValidateArticle(a Article) error {
	if len(idx.Words) == 0 {
		return NewInvalidIndexError("missing dictionary", "", 0)
	}
	return idx.validateArticle(a)
}
