package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/render"
	"github.com/revelaction/autoredactle/stat"
)

type StatOptions struct {
	JSON    bool
	NoColor bool
}

func statCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print index statistics, optionally for the titles compatible with a redacted title",
		ArgsUsage: "[<redacted title...>]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON"},
		},
		Action: func(c *cli.Context) error {
			idx, err := st.loadIndex()
			if err != nil {
				return err
			}

			opts := StatOptions{JSON: c.Bool("json"), NoColor: st.cfg.NoColor}
			return statCommand(idx, redacted(c), opts, st.ui)
		},
	}
}

func statCommand(idx *article.Index, redacted string, opts StatOptions, ui UI) error {
	var titles []string
	if redacted != "" {
		titles = article.Filter(idx, article.ParsePattern(redacted))
		if titles == nil {
			titles = []string{}
		}
	}

	stats := stat.Index(idx, titles)

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Stats(stats)
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.Stats(stats)
	return nil
}
