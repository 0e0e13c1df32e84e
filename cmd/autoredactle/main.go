package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/autoredactle/config"
	"github.com/revelaction/autoredactle/logging"
	"github.com/revelaction/autoredactle/tree"
)

// UI contains the input and output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Progress enables progress bars on long imports and exports.
	Progress bool
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr, Progress: isatty.IsTerminal(os.Stdout.Fd())}

	if err := run(os.Args, ui); err != nil {
		if errors.Is(err, tree.ErrEmptyCandidateSet) {
			fmt.Fprintln(ui.Out, tree.ErrEmptyCandidateSet)
			os.Exit(1)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "autoredactle: %v\n", err)
}

func run(args []string, ui UI) error {
	return newApp(ui).Run(args)
}

// state is shared by the commands of one run. Before fills cfg from the
// config file and the global flags.
type state struct {
	ui   UI
	cfg  config.Config
	pool *Pool
}

func newApp(ui UI) *cli.App {
	st := &state{ui: ui, pool: &Pool{}}

	return &cli.App{
		Name:            "autoredactle",
		Usage:           "guess a redacted Wikipedia title by asking word counts",
		HideVersion:     true,
		Writer:          ui.Out,
		ErrWriter:       ui.Err,
		Flags:           globalFlags(),
		Before:          st.before,
		After:           func(*cli.Context) error { return st.pool.Close() },
		CommandNotFound: commandNotFound,
		Commands: []*cli.Command{
			playCmd(st),
			candidatesCmd(st),
			treeCmd(st),
			statCmd(st),
			buildIndexCmd(st),
			importIndexCmd(st),
			exportIndexCmd(st),
			versionCmd(st),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "index",
			Aliases: []string{"i"},
			Usage:   "index file: .json, or a SQLite database",
			Value:   config.IndexFile,
			EnvVars: []string{"AUTOREDACTLE_INDEX"},
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "YAML or JSON config file",
			EnvVars: []string{"AUTOREDACTLE_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
			Value: "warn",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "text or json",
			Value: "text",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}
}

func (st *state) before(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.LoadFromPath(path)
		if err != nil {
			return err
		}
	}

	if c.IsSet("index") {
		cfg.Index = c.String("index")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("no-color") {
		cfg.NoColor = c.Bool("no-color")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.LogFormat, st.ui.Err)

	st.cfg = cfg
	return nil
}

func commandNotFound(c *cli.Context, name string) {
	fmt.Fprintf(c.App.ErrWriter, "autoredactle: unknown command %q\n", name)
}

// redacted joins the positional arguments, so an unquoted redacted title is
// read as one.
func redacted(c *cli.Context) string {
	return strings.Join(c.Args().Slice(), " ")
}
