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

package langdata

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandlunds/jp-language-data/jmdict"
	"github.com/sandlunds/jp-language-data/kanji"
)

const (
	// DefaultKanjidicPath is the default path of the KANJIDIC2 document.
	DefaultKanjidicPath = "./kanjidic2.xml"

	// DefaultJMdictPath is the default path of the JMdict document.
	DefaultJMdictPath = "./JMdict_e.xml"
)

// ErrNoOutputDir indicates that no output directory was given.
var ErrNoOutputDir = errors.New("no output directory")

// Options are options for Generate.
type Options struct {
	// KanjidicPath is the path to the KANJIDIC2 document. Defaults to
	// DefaultKanjidicPath.
	KanjidicPath string

	// JMdictPath is the path to the JMdict document. Defaults to
	// DefaultJMdictPath.
	JMdictPath string

	// OutputDir is the directory the data is written to.
	OutputDir string

	// Logger receives progress messages. Defaults to discarding them.
	Logger *slog.Logger
}

// Result summarizes a Generate run.
type Result struct {
	// Characters is the number of kanji extracted.
	Characters int

	// Skipped is the number of kanji outside the code point repertoire.
	Skipped int

	Link LinkStats

	// Files is the number of files written.
	Files int

	Duration time.Duration
}

// Generate extracts the kanji, links the compounds and writes the output
// files. Nothing is written unless both documents were read successfully.
func Generate(opts *Options) (*Result, error) {
	if opts == nil || opts.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	kanjidicPath := opts.KanjidicPath
	if kanjidicPath == "" {
		kanjidicPath = DefaultKanjidicPath
	}
	jmdictPath := opts.JMdictPath
	if jmdictPath == "" {
		jmdictPath = DefaultJMdictPath
	}
	log := logger(opts.Logger)
	start := time.Now()

	log.Info("reading kanjidic2", slog.String("path", kanjidicPath))
	ext, err := extractFile(kanjidicPath, log)
	if err != nil {
		return nil, err
	}

	log.Info("reading jmdict", slog.String("path", jmdictPath))
	stats, err := linkFile(ext.Store, jmdictPath, log)
	if err != nil {
		return nil, err
	}

	log.Info("writing output", slog.String("dir", opts.OutputDir))
	files, err := Emit(opts.OutputDir, ext.Index, ext.Store)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Characters: ext.Store.Len(),
		Skipped:    ext.Skipped,
		Link:       stats,
		Files:      files,
		Duration:   time.Since(start),
	}
	log.Info("generation completed",
		slog.Int("files", result.Files),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

func extractFile(path string, log *slog.Logger) (*Extraction, error) {
	r, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	s := kanji.NewScanner(r)
	defer s.Close()

	ext, err := Extract(s, &ExtractOptions{
		CodepointType: kanji.JIS208,
		Logger:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ext, nil
}

func linkFile(st *Store, path string, log *slog.Logger) (LinkStats, error) {
	r, err := OpenSource(path)
	if err != nil {
		return LinkStats{}, err
	}
	s := jmdict.NewScanner(r)
	defer s.Close()

	stats, err := st.Link(s, &LinkOptions{Logger: log})
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}
