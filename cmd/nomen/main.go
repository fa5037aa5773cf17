package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"nomen/internal/analyzer"
	"nomen/internal/extract"
	"nomen/internal/output"
	"nomen/internal/remote"
	"nomen/pkg/config"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

// getPath returns the corpus path from positional args, defaulting to ".".
func getPath(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return c.Args().First()
	}
	return "."
}

func main() {
	app := &cli.App{
		Name:      "nomen",
		Usage:     "Identifier vocabulary analysis CLI",
		Version:   version,
		ArgsUsage: "[path | owner/repo[@ref] | url]",
		Description: `Nomen extracts identifiers from a corpus of source files, classifies
them by word class, splits compound names, and reports word frequencies.

It answers: what verbs and nouns do programmers use when naming things?`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "wordtype",
				Aliases: []string{"w"},
				Usage:   "Keep only one word class: VB (verbs) or NN (nouns)",
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Value:   "Name",
				Usage:   "Identifier category: Function, Local, or Name",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "console",
				Usage:   "Report sink: console, json (report.json), or csv (report.csv)",
			},
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"t"},
				Usage:   "Rank the N most frequent words (default from config)",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Report every occurrence unranked instead of a top-N",
			},
			&cli.BoolFlag{
				Name:  "split",
				Usage: "Split compound identifiers into constituent words",
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "File extension to scan (repeatable; default from config)",
			},
			&cli.IntFlag{
				Name:  "max-trees",
				Usage: "Scan budget: stop after this many parsed files",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"NOMEN_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress scan progress output",
			},
		},
		Action: runAnalyze,
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func runAnalyze(c *cli.Context) error {
	cfg := config.LoadOrDefault()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
		cfg = loaded
	}

	path := getPath(c)
	if src := remote.Parse(path); src != nil {
		dest := src.RepoName()
		color.Cyan("Cloning %s into %s", src.URL, dest)
		if err := remote.Clone(c.Context, src, dest); err != nil {
			// Clone failures degrade to an empty or stale corpus.
			color.Yellow("clone failed: %v", err)
		}
		path = dest
	}

	exts := cfg.Scan.Extensions
	if given := c.StringSlice("ext"); len(given) > 0 {
		exts = given
	}
	maxTrees := cfg.Scan.MaxTrees
	if c.Int("max-trees") > 0 {
		maxTrees = c.Int("max-trees")
	}

	// Scope first: changing it resets the report configuration.
	a := analyzer.New(path).
		WithExtensions(exts).
		WithMaxTrees(maxTrees).
		WithStrategy(extract.ParseStrategy(c.String("filter")))
	if c.Bool("quiet") {
		a = a.Quiet()
	}

	switch c.String("wordtype") {
	case "VB":
		a = a.FilterVerb()
	case "NN":
		a = a.FilterNoun()
	}
	if c.Bool("split") {
		a = a.Split()
	}
	if c.Bool("all") {
		a = a.All()
	} else if n := c.Int("top"); n > 0 {
		a = a.Top(n)
	} else {
		a = a.Top(cfg.Report.TopSize)
	}

	entries := a.Run()

	sink := output.ParseSink(c.String("output"), cfg.Output.Color)
	if console, ok := sink.(*output.ConsoleSink); ok {
		console.Limit = cfg.Report.ConsoleLimit
	}
	return sink.Write(entries)
}
