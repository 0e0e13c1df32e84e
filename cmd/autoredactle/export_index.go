package main

import (
	"github.com/urfave/cli/v2"
)

func exportIndexCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "export-index",
		Usage: "copy a SQLite index into a JSON file",
		Flags: copyIndexFlags("index.db", "index.json"),
		Action: func(c *cli.Context) error {
			return copyIndexCommand(st.pool, CopyIndexOptions{From: c.String("from"), To: c.String("to")}, st.ui)
		},
	}
}
