package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/render"
)

type CandidatesOptions struct {
	JSON     bool
	NoPrefix bool
}

func candidatesCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:      "candidates",
		Usage:     "list the titles compatible with a redacted title",
		ArgsUsage: "<redacted title...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print JSON"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "print bare titles"},
		},
		Action: func(c *cli.Context) error {
			idx, err := st.loadIndex()
			if err != nil {
				return err
			}

			opts := CandidatesOptions{JSON: c.Bool("json"), NoPrefix: c.Bool("no-prefix")}
			return candidatesCommand(idx, redacted(c), opts, st.ui)
		},
	}
}

func candidatesCommand(idx *article.Index, redacted string, opts CandidatesOptions, ui UI) error {
	p := article.ParsePattern(redacted)
	titles := article.Filter(idx, p)

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Candidates(p, titles)
	}

	r := render.NewRenderer(ui.Out)
	r.HasPrefix = !opts.NoPrefix
	r.Candidates(titles)
	return nil
}
