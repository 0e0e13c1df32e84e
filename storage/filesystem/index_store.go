package filesystem

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/storage"
)

// IndexStore keeps the index as a single JSON object: the reserved key
// article.WordsKey holds the dictionary, every other key is an article title.
type IndexStore struct {
	path     string
	progress storage.ProgressFunc
}

var _ storage.IndexRepository = (*IndexStore)(nil)
var _ storage.Progresser = (*IndexStore)(nil)

// NewIndexStore creates a JSON index store at path.
func NewIndexStore(path string) *IndexStore {
	return &IndexStore{path: path}
}

func (s *IndexStore) SetProgress(cb storage.ProgressFunc) {
	s.progress = cb
}

func (s *IndexStore) Read() (*article.Index, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	idx, err := Decode(bufio.NewReader(f), s.progress)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return idx, nil
}

func (s *IndexStore) Write(idx *article.Index) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, idx, s.progress); err != nil {
		f.Close()
		return err
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("IO error: %w", err)
	}

	return f.Close()
}

// Decode reads a JSON index keeping the article order of the object. A
// repeated title keeps its first position and its last value. The total passed
// to cb is always zero.
func Decode(r io.Reader, cb storage.ProgressFunc) (*article.Index, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	idx := &article.Index{}
	seen := map[string]int{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("JSON decoding error: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("JSON decoding error: unexpected key %v", tok)
		}

		if key == article.WordsKey {
			if err := dec.Decode(&idx.Words); err != nil {
				return nil, fmt.Errorf("JSON decoding error in %s: %w", key, err)
			}
			continue
		}

		var words []int
		if err := dec.Decode(&words); err != nil {
			return nil, fmt.Errorf("JSON decoding error in '%s': %w", key, err)
		}

		if i, ok := seen[key]; ok {
			idx.Articles[i].Words = words
			continue
		}

		seen[key] = len(idx.Articles)
		idx.Articles = append(idx.Articles, article.Article{Title: key, Words: words})

		if cb != nil {
			cb(0, key)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return idx, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("JSON decoding error: %w", err)
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("JSON decoding error: expected %q, got %v", want, tok)
	}
	return nil
}

// Encode writes idx as a JSON object, dictionary first, then the articles in
// index order.
func Encode(w io.Writer, idx *article.Index, cb storage.ProgressFunc) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}

	words := idx.Words
	if words == nil {
		words = article.Dictionary{}
	}
	if err := writeEntry(w, article.WordsKey, words); err != nil {
		return err
	}

	total := len(idx.Articles)
	for _, a := range idx.Articles {
		if _, err := io.WriteString(w, ", "); err != nil {
			return err
		}

		members := a.Words
		if members == nil {
			members = []int{}
		}
		if err := writeEntry(w, a.Title, members); err != nil {
			return err
		}

		if cb != nil {
			cb(total, a.Title)
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}

func writeEntry(w io.Writer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}

	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("JSON encoding error in '%s': %w", key, err)
	}

	if _, err := w.Write(k); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ": "); err != nil {
		return err
	}
	_, err = w.Write(v)
	return err
}
