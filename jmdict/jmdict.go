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

package jmdict

// Entry is a JMdict <entry> element.
type Entry struct {
	Sequence string           `xml:"ent_seq"`
	Kanji    []KanjiElement   `xml:"k_ele"`
	Readings []ReadingElement `xml:"r_ele"`
	Senses   []Sense          `xml:"sense"`
}

// KanjiElement is a written form of the word.
type KanjiElement struct {
	Keb      string   `xml:"keb"`
	Info     []string `xml:"ke_inf"`
	Priority []string `xml:"ke_pri"`
}

// ReadingElement is a kana reading of the word.
type ReadingElement struct {
	Reb      string   `xml:"reb"`
	Info     []string `xml:"re_inf"`
	Priority []string `xml:"re_pri"`
}

// Sense is a group of glosses sharing a meaning.
type Sense struct {
	PartOfSpeech []string `xml:"pos"`
	Misc         []string `xml:"misc"`
	Glosses      []Gloss  `xml:"gloss"`
}

// Gloss is a translation of the word.
type Gloss struct {
	Lang  string `xml:"lang,attr"`
	Type  string `xml:"g_type,attr"`
	Value string `xml:",chardata"`
}

// Common returns whether the written form carries a priority code.
func (k *KanjiElement) Common() bool {
	return len(k.Priority) > 0
}

// Common returns whether the reading carries a priority code.
func (r *ReadingElement) Common() bool {
	return len(r.Priority) > 0
}

// Word returns the entry's representative written form: the first written
// form in document order that carries a priority code. It returns false if the
// entry has no common written form.
func (e *Entry) Word() (string, bool) {
	for i := range e.Kanji {
		if e.Kanji[i].Common() {
			return e.Kanji[i].Keb, true
		}
	}
	return "", false
}

// CommonReadings returns the readings that carry a priority code in document
// order.
func (e *Entry) CommonReadings() []string {
	var readings []string
	for i := range e.Readings {
		if e.Readings[i].Common() {
			readings = append(readings, e.Readings[i].Reb)
		}
	}
	return readings
}

// Glosses returns the glosses of all senses as a single list in document
// order.
func (e *Entry) Glosses() []string {
	var glosses []string
	for _, s := range e.Senses {
		for _, g := range s.Glosses {
			glosses = append(glosses, g.Value)
		}
	}
	return glosses
}
