package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/logging"
	"github.com/revelaction/autoredactle/storage"
	"github.com/revelaction/autoredactle/storage/filesystem"
	"github.com/revelaction/autoredactle/storage/sqlite/zombiezen"
)

// NewIndexRepository returns a JSON store for a .json path and a SQLite store
// otherwise. The SQLite schema is created when missing.
func NewIndexRepository(p *Pool, path string) (storage.IndexRepository, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return filesystem.NewIndexStore(path), nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateSchemas(pool, zombiezen.IndexSchema); err != nil {
		return nil, err
	}
	return zombiezen.NewIndexStore(pool), nil
}

// OpenIndexRepository is NewIndexRepository for an existing index.
func OpenIndexRepository(p *Pool, path string) (storage.IndexRepository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}
	return NewIndexRepository(p, path)
}

// loadIndex reads the index of the global --index flag.
func (st *state) loadIndex() (*article.Index, error) {
	repo, err := OpenIndexRepository(st.pool, st.cfg.Index)
	if err != nil {
		return nil, err
	}

	idx, err := repo.Read()
	if err != nil {
		return nil, err
	}

	logging.New("cmd").Debug("loaded index", "path", st.cfg.Index, "articles", idx.Len(), "words", len(idx.Words))
	return idx, nil
}
