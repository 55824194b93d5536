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

package kanji

import (
	"encoding/xml"
)

const (
	// JIS208 is the cp_type of JIS X 0208 code points.
	JIS208 = "jis208"

	// Classical is the rad_type of classical (Kangxi) radical numbers.
	Classical = "classical"

	// OnReading is the r_type of on'yomi readings.
	OnReading = "ja_on"

	// KunReading is the r_type of kun'yomi readings.
	KunReading = "ja_kun"
)

// Character is a KANJIDIC2 <character> element.
type Character struct {
	Literal        string         `xml:"literal"`
	Codepoints     []Codepoint    `xml:"codepoint>cp_value"`
	Radicals       []Radical      `xml:"radical>rad_value"`
	Misc           Misc           `xml:"misc"`
	ReadingMeaning ReadingMeaning `xml:"reading_meaning"`
}

// Codepoint is the character's code in a particular character set.
type Codepoint struct {
	Type  string `xml:"cp_type,attr"`
	Value string `xml:",chardata"`
}

// Radical is a radical number under a particular classification.
type Radical struct {
	Type  string `xml:"rad_type,attr"`
	Value string `xml:",chardata"`
}

// Misc holds the <misc> element. Elements that may be absent are kept as
// slices so that absence can be told apart from an empty value.
type Misc struct {
	Grade       []string `xml:"grade"`
	StrokeCount []string `xml:"stroke_count"`
	Freq        []string `xml:"freq"`
	JLPT        []string `xml:"jlpt"`
}

// ReadingMeaning holds the <reading_meaning> element.
type ReadingMeaning struct {
	Groups []Group  `xml:"rmgroup"`
	Nanori []string `xml:"nanori"`
}

// Group is a <rmgroup> of related readings and meanings.
type Group struct {
	Readings []Reading `xml:"reading"`
	Meanings []Meaning `xml:"meaning"`
}

// Reading is a reading of a particular type.
type Reading struct {
	Type  string `xml:"r_type,attr"`
	Value string `xml:",chardata"`
}

// Meaning is a gloss. Glosses in languages other than English carry an m_lang
// attribute.
type Meaning struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Value string     `xml:",chardata"`
}

// HasCodepoint returns whether the character has a code point of the given
// type.
func (c *Character) HasCodepoint(cpType string) bool {
	for _, cp := range c.Codepoints {
		if cp.Type == cpType {
			return true
		}
	}
	return false
}

// Radical returns the first radical number of the given type.
func (c *Character) Radical(radType string) (string, bool) {
	for _, r := range c.Radicals {
		if r.Type == radType {
			return r.Value, true
		}
	}
	return "", false
}

// Grade returns the school grade if present.
func (c *Character) Grade() (string, bool) {
	if len(c.Misc.Grade) == 0 {
		return "", false
	}
	return c.Misc.Grade[0], true
}

// StrokeCount returns the accepted stroke count. Later stroke_count elements
// hold common miscounts and are ignored.
func (c *Character) StrokeCount() (string, bool) {
	if len(c.Misc.StrokeCount) == 0 {
		return "", false
	}
	return c.Misc.StrokeCount[0], true
}

// Readings returns all readings of the given type across every reading group
// in document order.
func (c *Character) Readings(rType string) []string {
	var readings []string
	for _, g := range c.ReadingMeaning.Groups {
		for _, r := range g.Readings {
			if r.Type == rType {
				readings = append(readings, r.Value)
			}
		}
	}
	return readings
}

// Meanings returns the English meanings, i.e. the meanings carrying no
// attributes, across every reading group in document order.
func (c *Character) Meanings() []string {
	var meanings []string
	for _, g := range c.ReadingMeaning.Groups {
		for _, m := range g.Meanings {
			if len(m.Attrs) == 0 {
				meanings = append(meanings, m.Value)
			}
		}
	}
	return meanings
}
