// Copyright 2025 The jp-language-data Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	langdata "github.com/sandlunds/jp-language-data"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrKanjigen is a parent error for all command errors.
var ErrKanjigen = errors.New("kanjigen")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrKanjigen)

var copyrightNames = []string{
	"2025 The jp-language-data Authors",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `kanjigen --help out` would otherwise treat the
	// output directory as a command name.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newKanjigenApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Generate kanji data files from KANJIDIC2 and JMdict.",
		UsageText: "kanjigen [OPTION]... OUTPUT_DIR",
		Description: strings.Join([]string{
			"Writes a radical index (kanji-index.json) and one JSON file per",
			"kanji (kanji/0<hex code point>.json) to OUTPUT_DIR.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "kanjidic",
				Usage:     "read kanji from the KANJIDIC2 document at `PATH`",
				Value:     langdata.DefaultKanjidicPath,
				EnvVars:   []string{"KANJIGEN_KANJIDIC"},
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "jmdict",
				Usage:     "read compounds from the JMdict document at `PATH`",
				Value:     langdata.DefaultJMdictPath,
				EnvVars:   []string{"KANJIGEN_JMDICT"},
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "log progress and print a summary",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}

			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected OUTPUT_DIR, got %d arguments", ErrFlagParse, c.NArg())
			}

			return generate(c)
		},
	}
}

func generate(c *cli.Context) error {
	verbose := c.Bool("verbose")

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	result, err := langdata.Generate(&langdata.Options{
		KanjidicPath: c.String("kanjidic"),
		JMdictPath:   c.String("jmdict"),
		OutputDir:    c.Args().First(),
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKanjigen, err)
	}

	if verbose {
		printSummary(c.App.Writer, result)
	}
	return nil
}

// printSummary prints the counts collected by a run.
func printSummary(w io.Writer, result *langdata.Result) {
	tbl := table.New("Stat", "Value").WithWriter(w)
	tbl.AddRow("kanji", result.Characters)
	tbl.AddRow("skipped", result.Skipped)
	tbl.AddRow("entries", result.Link.Entries)
	tbl.AddRow("common", result.Link.Common)
	tbl.AddRow("links", result.Link.Linked)
	tbl.AddRow("files", result.Files)
	tbl.AddRow("duration", result.Duration.Round(time.Millisecond))
	tbl.Print()
}

// run runs the app with the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newKanjigenApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", app.Name, err)
		if errors.Is(err, ErrFlagParse) {
			return ExitCodeFlagParseError
		}
		return ExitCodeUnknownError
	}
	return ExitCodeSuccess
}
