package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type IndexStore struct {
	pool     *sqlitex.Pool
	progress storage.ProgressFunc
}

var _ storage.IndexRepository = (*IndexStore)(nil)
var _ storage.Progresser = (*IndexStore)(nil)

func NewIndexStore(pool *sqlitex.Pool) *IndexStore {
	return &IndexStore{pool: pool}
}

func (h *IndexStore) SetProgress(cb storage.ProgressFunc) {
	h.progress = cb
}

// Read loads the dictionary by position and the articles in insertion order.
// An empty words table yields a nil dictionary.
func (h *IndexStore) Read() (*article.Index, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	idx := &article.Index{}

	err = sqlitex.Execute(conn, "SELECT word FROM words ORDER BY position", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			idx.Words = append(idx.Words, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}

	var total int
	err = sqlitex.Execute(conn, "SELECT count(*) FROM articles", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			total = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	ids := map[int64]int{}
	err = sqlitex.Execute(conn, "SELECT id, title FROM articles ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ids[stmt.ColumnInt64(0)] = len(idx.Articles)
			idx.Articles = append(idx.Articles, article.Article{Title: stmt.ColumnText(1)})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	err = sqlitex.Execute(conn, "SELECT article_id, position FROM memberships ORDER BY article_id, rowid", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			i, ok := ids[stmt.ColumnInt64(0)]
			if !ok {
				return fmt.Errorf("membership of unknown article %d", stmt.ColumnInt64(0))
			}
			idx.Articles[i].Words = append(idx.Articles[i].Words, stmt.ColumnInt(1))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read memberships: %w", err)
	}

	if h.progress != nil {
		for _, a := range idx.Articles {
			h.progress(total, a.Title)
		}
	}

	return idx, nil
}

// Write replaces the whole stored index in one transaction. Repeated word
// indices of an article are stored once.
func (h *IndexStore) Write(idx *article.Index) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, table := range []string{"memberships", "articles", "words"} {
		err = sqlitex.Execute(conn, "DELETE FROM "+table, nil)
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for pos, word := range idx.Words {
		err = sqlitex.Execute(conn, "INSERT INTO words (position, word) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []any{pos, word},
		})
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %w", word, err)
		}
	}

	total := len(idx.Articles)
	for _, a := range idx.Articles {
		err = sqlitex.Execute(conn, "INSERT INTO articles (title) VALUES (?)", &sqlitex.ExecOptions{
			Args: []any{a.Title},
		})
		if err != nil {
			return fmt.Errorf("failed to insert article '%s': %w", a.Title, err)
		}
		articleID := conn.LastInsertRowID()

		for _, w := range a.Words {
			err = sqlitex.Execute(conn, "INSERT OR IGNORE INTO memberships (article_id, position) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []any{articleID, w},
			})
			if err != nil {
				return fmt.Errorf("failed to insert membership of '%s': %w", a.Title, err)
			}
		}

		if h.progress != nil {
			h.progress(total, a.Title)
		}
	}

	return nil
}
