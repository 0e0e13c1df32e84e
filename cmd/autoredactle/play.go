package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/config"
	"github.com/revelaction/autoredactle/game"
	"github.com/revelaction/autoredactle/logging"
	"github.com/revelaction/autoredactle/navigate"
	"github.com/revelaction/autoredactle/query"
	"github.com/revelaction/autoredactle/render"
	"github.com/revelaction/autoredactle/tree"
)

type PlayOptions struct {
	MaxDepth  int
	Criterion tree.Criterion
	TreeOut   string
	Plain     bool
	NoColor   bool
}

func maxDepthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum number of questions, 0 for no limit",
	}
}

func criterionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "criterion",
		Usage: "split criterion: entropy or gini",
	}
}

// trainOptions merges the training flags of c over cfg.
func trainOptions(c *cli.Context, cfg config.Config) (int, tree.Criterion, error) {
	if c.IsSet("max-depth") {
		cfg.MaxDepth = c.Int("max-depth")
	}
	if c.IsSet("criterion") {
		cfg.Criterion = c.String("criterion")
	}

	if cfg.MaxDepth < 0 {
		return 0, 0, fmt.Errorf("max depth must not be negative, got %d", cfg.MaxDepth)
	}

	crit, ok := tree.ParseCriterion(cfg.Criterion)
	if !ok {
		return 0, 0, fmt.Errorf("unknown criterion %q", cfg.Criterion)
	}
	return cfg.MaxDepth, crit, nil
}

func playCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "guess the article behind a redacted title",
		ArgsUsage: "<redacted title...>",
		Flags: []cli.Flag{
			maxDepthFlag(),
			criterionFlag(),
			&cli.StringFlag{
				Name:  "tree-out",
				Usage: "write the trained tree to this file",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "read answers line by line, without the interactive prompt",
			},
		},
		Action: func(c *cli.Context) error {
			depth, crit, err := trainOptions(c, st.cfg)
			if err != nil {
				return err
			}

			opts := PlayOptions{
				MaxDepth:  depth,
				Criterion: crit,
				TreeOut:   c.String("tree-out"),
				Plain:     st.cfg.Plain || c.Bool("plain"),
				NoColor:   st.cfg.NoColor,
			}

			idx, err := st.loadIndex()
			if err != nil {
				return err
			}

			return playCommand(idx, redacted(c), opts, st.ui)
		},
	}
}

func playCommand(idx *article.Index, redacted string, opts PlayOptions, ui UI) error {
	gameOpts := game.Options{
		MaxDepth:  opts.MaxDepth,
		Criterion: opts.Criterion,
		Logger:    logging.New("game"),
	}

	if opts.TreeOut != "" {
		f, err := os.Create(opts.TreeOut)
		if err != nil {
			return fmt.Errorf("IO error: %w", err)
		}
		defer f.Close()
		gameOpts.TreeOut = f
	}

	res, err := game.Play(idx, redacted, newAsker(ui, opts.Plain), gameOpts)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.Guess(res.Guess.Title)
	return nil
}

func newAsker(ui UI, plain bool) navigate.Asker {
	if f, ok := ui.In.(*os.File); ok {
		return query.NewAsker(f, ui.Out, plain)
	}
	return query.NewLineAsker(orEmpty(ui.In), ui.Out)
}

func orEmpty(r io.Reader) io.Reader {
	if r == nil {
		return eofReader{}
	}
	return r
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
