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
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sandlunds/jp-language-data/internal/folding"
	"github.com/sandlunds/jp-language-data/kanji"
)

var (
	// ErrMissingLiteral indicates a character without a literal.
	ErrMissingLiteral = errors.New("missing literal")

	// ErrMissingStrokeCount indicates a character without a stroke count.
	ErrMissingStrokeCount = errors.New("missing stroke count")

	// ErrRadicalRange indicates a missing or out of range radical number.
	ErrRadicalRange = errors.New("radical out of range")

	// ErrDuplicateLiteral indicates that a literal occurs more than once.
	ErrDuplicateLiteral = errors.New("duplicate literal")
)

// ExtractOptions are options for Extract.
type ExtractOptions struct {
	// CodepointType is the cp_type a character must have a code point for to
	// be extracted.
	CodepointType string

	// Logger receives progress messages. Defaults to discarding them.
	Logger *slog.Logger
}

// DefaultExtractOptions is the default options for Extract.
var DefaultExtractOptions = &ExtractOptions{
	CodepointType: kanji.JIS208,
}

// Extraction is the result of Extract.
type Extraction struct {
	Index *RadicalIndex
	Store *Store

	// Skipped is the number of characters outside the code point
	// repertoire.
	Skipped int
}

// Extract reads all characters from s and builds the radical index and the
// character store. Any malformed character aborts extraction.
func Extract(s *kanji.Scanner, options *ExtractOptions) (*Extraction, error) {
	if options == nil {
		options = DefaultExtractOptions
	}
	cpType := options.CodepointType
	if cpType == "" {
		cpType = DefaultExtractOptions.CodepointType
	}
	log := logger(options.Logger)

	ext := &Extraction{
		Index: &RadicalIndex{},
		Store: NewStore(),
	}
	for s.Scan() {
		kc := s.Character()
		if !kc.HasCodepoint(cpType) {
			ext.Skipped++
			continue
		}

		c, err := newCharacter(kc)
		if err != nil {
			return nil, err
		}
		if err := ext.Store.Add(c); err != nil {
			return nil, err
		}
		if err := ext.Index.add(c); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("extracting kanji: %w", err)
	}

	ext.Index.sort()

	log.Info("kanji extracted",
		slog.Int("characters", ext.Store.Len()),
		slog.Int("skipped", ext.Skipped),
	)
	return ext, nil
}

// newCharacter converts a KANJIDIC2 character to a Character.
func newCharacter(kc *kanji.Character) (*Character, error) {
	literal := strings.TrimSpace(kc.Literal)
	if literal == "" {
		return nil, ErrMissingLiteral
	}

	c := &Character{
		Literal:   literal,
		Compounds: []*Compound{},
	}

	rad, ok := kc.Radical(kanji.Classical)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no classical radical", ErrRadicalRange, literal)
	}
	var err error
	c.Radical, err = atoi(rad)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrRadicalRange, literal, err)
	}

	if grade, ok := kc.Grade(); ok {
		g, err := atoi(grade)
		if err != nil {
			return nil, fmt.Errorf("parsing grade of %q: %w", literal, err)
		}
		c.Grade = &g
	}
	c.Jouyou = IsJouyou(c.Grade)

	sc, ok := kc.StrokeCount()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingStrokeCount, literal)
	}
	c.StrokeCount, err = atoi(sc)
	if err != nil {
		return nil, fmt.Errorf("parsing stroke count of %q: %w", literal, err)
	}

	if c.On, err = folding.Strings(kc.Readings(kanji.OnReading)); err != nil {
		return nil, err
	}
	if c.Kun, err = folding.Strings(kc.Readings(kanji.KunReading)); err != nil {
		return nil, err
	}
	if c.Meanings, err = folding.Strings(kc.Meanings()); err != nil {
		return nil, err
	}

	return c, nil
}

func atoi(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}
	return i, nil
}

// logger returns l or a logger that discards everything if l is nil.
func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
