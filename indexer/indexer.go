// Package indexer builds an article index from a directory of plain text
// article files and a list of candidate words.
package indexer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/storage"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Options tune Build. Zero values mean sequential reading and no progress.
// Progress may be called from several goroutines.
type Options struct {
	Parallel int
	Progress storage.ProgressFunc
}

// LoadWords reads one word per line, trimmed and lowercased. Blank lines are
// skipped.
func LoadWords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	words := map[string]struct{}{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}

// Dictionary returns the words not in common, sorted.
func Dictionary(words, common map[string]struct{}) article.Dictionary {
	dict := make(article.Dictionary, 0, len(words))
	for w := range words {
		if _, ok := common[w]; ok {
			continue
		}
		dict = append(dict, w)
	}
	slices.Sort(dict)
	return dict
}

// Tokenize splits text on whitespace and returns the set of lowercased tokens
// with ASCII punctuation trimmed from both ends.
func Tokenize(text string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, f := range strings.Fields(text) {
		tokens[strings.Trim(strings.ToLower(f), punctuation)] = struct{}{}
	}
	return tokens
}

// Memberships returns the ascending dictionary indices of the words present in
// tokens.
func Memberships(dict article.Dictionary, tokens map[string]struct{}) []int {
	members := []int{}
	for i, w := range dict {
		if _, ok := tokens[w]; ok {
			members = append(members, i)
		}
	}
	return members
}

// Unescape decodes the %XX escapes of an article file name. Invalid escapes,
// like the bare % of "99%_Invisible", are kept as they are, and decoded bytes
// that are not UTF-8 become U+FFFD.
func Unescape(name string) string {
	if !strings.Contains(name, "%") {
		return name
	}

	b := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '%' && i+2 < len(name) && isHex(name[i+1]) && isHex(name[i+2]) {
			b = append(b, unhex(name[i+1])<<4|unhex(name[i+2]))
			i += 2
			continue
		}
		b = append(b, name[i])
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	}
	return c - '0'
}

// Build reads every regular file of dir, in file name order, as one article.
// The title is the file name passed through Unescape. Files are read concurrently up to
// opts.Parallel, but the resulting order only depends on the file names.
func Build(ctx context.Context, dir string, dict article.Dictionary, opts Options) (*article.Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	// ReadDir already sorts; keep the order explicit.
	slices.Sort(names)

	articles := make([]article.Article, len(names))
	total := len(names)

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, name := range names {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			a, err := readArticle(filepath.Join(dir, name), Unescape(name), dict)
			if err != nil {
				return err
			}
			articles[i] = a

			if opts.Progress != nil {
				opts.Progress(total, a.Title)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &article.Index{Words: dict, Articles: articles}, nil
}

func readArticle(path, title string, dict article.Dictionary) (article.Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return article.Article{}, fmt.Errorf("IO error: %w", err)
	}

	return article.Article{
		Title: title,
		Words: Memberships(dict, Tokenize(string(content))),
	}, nil
}
