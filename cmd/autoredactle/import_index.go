package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/autoredactle/storage"
)

type CopyIndexOptions struct {
	From string
	To   string
}

func copyIndexFlags(from, to string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "source index", Value: from},
		&cli.StringFlag{Name: "to", Usage: "destination index", Value: to},
	}
}

func importIndexCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "import-index",
		Usage: "copy a JSON index into a SQLite database",
		Flags: copyIndexFlags("index.json", "index.db"),
		Action: func(c *cli.Context) error {
			return copyIndexCommand(st.pool, CopyIndexOptions{From: c.String("from"), To: c.String("to")}, st.ui)
		},
	}
}

// copyIndexCommand reads the whole source index and replaces the destination
// with it. The destination reports per-article progress.
func copyIndexCommand(p *Pool, opts CopyIndexOptions, ui UI) error {
	if opts.From == opts.To {
		return fmt.Errorf("source and destination are the same: %s", opts.From)
	}

	src, err := OpenIndexRepository(p, opts.From)
	if err != nil {
		return err
	}

	dst, err := NewIndexRepository(p, opts.To)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading index from %s...\n", opts.From)
	idx, err := src.Read()
	if err != nil {
		return err
	}

	if err := idx.Validate(); err != nil {
		return err
	}

	cb, stop := newProgress(ui)
	if pr, ok := dst.(storage.Progresser); ok {
		pr.SetProgress(cb)
	}
	err = dst.Write(idx)
	stop()
	if err != nil {
		return fmt.Errorf("failed to write index %s: %w", opts.To, err)
	}

	fmt.Fprintf(ui.Out, "Successfully copied %d articles from %s to %s\n", idx.Len(), opts.From, opts.To)
	return nil
}
