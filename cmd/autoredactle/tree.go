package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/autoredactle/article"
	"github.com/revelaction/autoredactle/feature"
	"github.com/revelaction/autoredactle/render"
	"github.com/revelaction/autoredactle/tree"
)

func treeCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "print the decision tree trained for a redacted title",
		ArgsUsage: "<redacted title...>",
		Flags:     []cli.Flag{maxDepthFlag(), criterionFlag()},
		Action: func(c *cli.Context) error {
			depth, crit, err := trainOptions(c, st.cfg)
			if err != nil {
				return err
			}

			idx, err := st.loadIndex()
			if err != nil {
				return err
			}

			return treeCommand(idx, redacted(c), []tree.Option{tree.WithMaxDepth(depth), tree.WithCriterion(crit)}, st.ui)
		},
	}
}

func treeCommand(idx *article.Index, redacted string, opts []tree.Option, ui UI) error {
	titles := article.Filter(idx, article.ParsePattern(redacted))
	if len(titles) == 0 {
		return tree.NewEmptyCandidateSetError()
	}

	m, err := feature.Build(idx, titles)
	if err != nil {
		return err
	}

	t, err := tree.TrainMatrix(m, opts...)
	if err != nil {
		return err
	}

	return render.NewRenderer(ui.Out).Tree(t)
}
