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
	"slices"
	"strings"
)

// RadicalCount is the number of classical radicals.
const RadicalCount = 214

// Character is the record written for a single kanji.
type Character struct {
	Literal string `json:"literal"`

	// Radical is the classical radical number from 1 to RadicalCount.
	Radical int `json:"radical"`

	// Grade is the school grade or nil if the kanji is not taught in
	// compulsory education.
	Grade *int `json:"grade"`

	// Jouyou is true if the kanji is a jouyou kanji.
	Jouyou bool `json:"jouyou"`

	StrokeCount int      `json:"strokeCount"`
	On          []string `json:"on"`
	Kun         []string `json:"kun"`
	Meanings    []string `json:"meanings"`

	// Compounds are the common words written with the kanji in dictionary
	// order. Compounds are shared between characters and must not be
	// modified.
	Compounds []*Compound `json:"compounds"`
}

// Compound is a common word linked to each of its kanji.
type Compound struct {
	Word     string   `json:"word"`
	Readings []string `json:"readings"`
	Meanings []string `json:"meanings"`
}

// IndexEntry is the radical index view of a Character.
type IndexEntry struct {
	Literal     string `json:"literal"`
	Jouyou      bool   `json:"jouyou"`
	StrokeCount int    `json:"strokeCount"`
}

// RadicalIndex groups kanji by radical. Bucket i holds the kanji with radical
// number i+1.
type RadicalIndex [RadicalCount][]IndexEntry

// jouyouGrades are the grades of jouyou kanji. Grades 1 through 6 are taught
// in elementary school and grade 8 in secondary school. Grade 7 is unused.
var jouyouGrades = []int{1, 2, 3, 4, 5, 6, 8}

// IsJouyou returns whether a kanji with the given grade is a jouyou kanji.
func IsJouyou(grade *int) bool {
	return grade != nil && slices.Contains(jouyouGrades, *grade)
}

// Entry returns the radical index entry for the character.
func (c *Character) Entry() IndexEntry {
	return IndexEntry{
		Literal:     c.Literal,
		Jouyou:      c.Jouyou,
		StrokeCount: c.StrokeCount,
	}
}

// add appends a character to its radical's bucket.
func (idx *RadicalIndex) add(c *Character) error {
	if c.Radical < 1 || c.Radical > RadicalCount {
		return fmt.Errorf("%w: %q has radical %d", ErrRadicalRange, c.Literal, c.Radical)
	}
	idx[c.Radical-1] = append(idx[c.Radical-1], c.Entry())
	return nil
}

// sort orders each bucket by stroke count. Kanji with the same stroke count
// stay in the order they were added.
func (idx *RadicalIndex) sort() {
	for i := range idx {
		slices.SortStableFunc(idx[i], func(a, b IndexEntry) int {
			return a.StrokeCount - b.StrokeCount
		})
	}
}

// Store holds Character records keyed by literal.
type Store struct {
	chars map[string]*Character
}

// NewStore returns a new empty Store.
func NewStore() *Store {
	return &Store{
		chars: map[string]*Character{},
	}
}

// Add adds a character to the store. Literals must be unique.
func (st *Store) Add(c *Character) error {
	if _, ok := st.chars[c.Literal]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateLiteral, c.Literal)
	}
	st.chars[c.Literal] = c
	return nil
}

// Get returns the character with the given literal.
func (st *Store) Get(literal string) (*Character, bool) {
	c, ok := st.chars[literal]
	return c, ok
}

// Len returns the number of characters in the store.
func (st *Store) Len() int {
	return len(st.chars)
}

// Characters returns all characters ordered by code point.
func (st *Store) Characters() []*Character {
	chars := make([]*Character, 0, len(st.chars))
	for _, c := range st.chars {
		chars = append(chars, c)
	}
	// UTF-8 byte order is code point order.
	slices.SortFunc(chars, func(a, b *Character) int {
		return strings.Compare(a.Literal, b.Literal)
	})
	return chars
}
