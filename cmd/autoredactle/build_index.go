package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/autoredactle/config"
	"github.com/revelaction/autoredactle/indexer"
	"github.com/revelaction/autoredactle/storage"
)

type BuildIndexOptions struct {
	Articles string
	Words    string
	Common   string
	Parallel int

	// CommonOptional skips a missing Common file instead of failing.
	CommonOptional bool
}

func buildIndexCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "build-index",
		Usage: "build the index from a directory of article text files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "articles", Usage: "directory of article files named by URL-encoded title", Value: config.ArticlesDir},
			&cli.StringFlag{Name: "words", Usage: "candidate words, one per line", Value: config.WordsFile},
			&cli.StringFlag{Name: "common", Usage: "words excluded from the dictionary, one per line; a missing default file is skipped", Value: config.CommonFile},
			&cli.StringFlag{Name: "out", Usage: "index to write, defaults to --index"},
			&cli.IntFlag{Name: "parallel", Usage: "number of articles read at once"},
		},
		Action: func(c *cli.Context) error {
			opts := BuildIndexOptions{
				Articles: c.String("articles"),
				Words:    c.String("words"),
				Common:   c.String("common"),
				Parallel: st.cfg.Parallel,

				CommonOptional: !c.IsSet("common"),
			}
			if c.IsSet("parallel") {
				opts.Parallel = c.Int("parallel")
			}

			out := st.cfg.Index
			if c.IsSet("out") {
				out = c.String("out")
			}

			repo, err := NewIndexRepository(st.pool, out)
			if err != nil {
				return err
			}

			if err := buildIndexCommand(c.Context, repo, opts, st.ui); err != nil {
				return err
			}

			fmt.Fprintf(st.ui.Out, "Index written to %s\n", out)
			return nil
		},
	}
}

func buildIndexCommand(ctx context.Context, repo storage.IndexWriter, opts BuildIndexOptions, ui UI) error {
	words, err := indexer.LoadWords(opts.Words)
	if err != nil {
		return err
	}

	common := map[string]struct{}{}
	if opts.Common != "" {
		common, err = indexer.LoadWords(opts.Common)
		switch {
		case err == nil:
		case opts.CommonOptional && errors.Is(err, fs.ErrNotExist):
			common = map[string]struct{}{}
		default:
			return err
		}
	}

	dict := indexer.Dictionary(words, common)
	fmt.Fprintf(ui.Out, "📖 %d dictionary words, reading articles from %s...\n", len(dict), opts.Articles)

	cb, stop := newProgress(ui)
	idx, err := indexer.Build(ctx, opts.Articles, dict, indexer.Options{Parallel: opts.Parallel, Progress: cb})
	stop()
	if err != nil {
		return err
	}

	if err := repo.Write(idx); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	fmt.Fprintf(ui.Out, "📖 %d articles indexed\n", idx.Len())
	return nil
}
