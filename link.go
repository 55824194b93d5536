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
	"fmt"
	"log/slog"

	"github.com/sandlunds/jp-language-data/internal/folding"
	"github.com/sandlunds/jp-language-data/jmdict"
)

// CJK Unified Ideographs block.
const (
	minKanji = 0x4e00
	maxKanji = 0x9fff
)

// LinkOptions are options for Store.Link.
type LinkOptions struct {
	// Logger receives progress messages. Defaults to discarding them.
	Logger *slog.Logger
}

// LinkStats are statistics collected by Store.Link.
type LinkStats struct {
	// Entries is the number of dictionary entries read.
	Entries int

	// Common is the number of entries with a common written form.
	Common int

	// Linked is the number of compounds appended to characters, counting
	// each occurrence of a repeated kanji.
	Linked int
}

// IsKanji returns whether r is in the CJK Unified Ideographs block.
func IsKanji(r rune) bool {
	return minKanji <= r && r <= maxKanji
}

// Link reads all entries from s and appends a Compound for each common word
// to every character in the store that the word is written with. Entries
// without a common written form are skipped.
func (st *Store) Link(s *jmdict.Scanner, options *LinkOptions) (LinkStats, error) {
	if options == nil {
		options = &LinkOptions{}
	}
	log := logger(options.Logger)

	var stats LinkStats
	for s.Scan() {
		stats.Entries++

		e := s.Entry()
		word, ok := e.Word()
		if !ok {
			continue
		}
		stats.Common++

		compound, err := newCompound(word, e)
		if err != nil {
			return stats, err
		}
		stats.Linked += st.link(compound)
	}
	if err := s.Err(); err != nil {
		return stats, fmt.Errorf("linking compounds: %w", err)
	}

	log.Info("compounds linked",
		slog.Int("entries", stats.Entries),
		slog.Int("common", stats.Common),
		slog.Int("linked", stats.Linked),
	)
	return stats, nil
}

// link appends the compound to the known kanji for each kanji rune of its
// word and returns the number of appends. A kanji repeated in the word gets the
// compound once per occurrence.
func (st *Store) link(compound *Compound) int {
	n := 0
	for _, r := range compound.Word {
		if !IsKanji(r) {
			continue
		}
		c, ok := st.chars[string(r)]
		if !ok {
			continue
		}
		c.Compounds = append(c.Compounds, compound)
		n++
	}
	return n
}

// newCompound builds the compound for an entry's representative word.
func newCompound(word string, e *jmdict.Entry) (*Compound, error) {
	readings, err := folding.Strings(e.CommonReadings())
	if err != nil {
		return nil, err
	}
	meanings, err := folding.Strings(e.Glosses())
	if err != nil {
		return nil, err
	}
	return &Compound{
		Word:     word,
		Readings: readings,
		Meanings: meanings,
	}, nil
}
