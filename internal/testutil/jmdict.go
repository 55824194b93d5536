// Copyright 2025 The jp-language-data Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"testing"
)

// Form is a written form (keb) or reading (reb) along with its priority
// codes. A form with no priority codes is not common.
type Form struct {
	Text     string
	Priority []string
}

// Word describes a JMdict <entry> element for tests.
type Word struct {
	Kanji    []Form
	Readings []Form

	// Senses holds the glosses of each sense.
	Senses [][]string
}

// MakeJMdict creates a test JMdict document. Like the real dictionary, the
// document declares entities in its DOCTYPE and uses them in <pos> elements.
func MakeJMdict(t *testing.T, words []*Word) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ELEMENT JMdict (entry*)>
<!--                                                                   -->
<!ELEMENT entry (ent_seq, k_ele*, r_ele+, sense+)>
<!ENTITY n "noun (common) (futsuumeishi)">
<!ENTITY adj-na "adjectival nouns or quasi-adjectives (keiyodoshi)">
<!ENTITY uk "word usually written using kana alone">
]>
<!-- JMdict created: 2025-01-01 -->
<JMdict>
`)
	for i, w := range words {
		b.WriteString("<entry>\n")
		writeElem(t, &b, "ent_seq", nil, strconv.Itoa(1000000+i))
		for _, k := range w.Kanji {
			b.WriteString("<k_ele>\n")
			writeElem(t, &b, "keb", nil, k.Text)
			for _, p := range k.Priority {
				writeElem(t, &b, "ke_pri", nil, p)
			}
			b.WriteString("</k_ele>\n")
		}
		for _, r := range w.Readings {
			b.WriteString("<r_ele>\n")
			writeElem(t, &b, "reb", nil, r.Text)
			for _, p := range r.Priority {
				writeElem(t, &b, "re_pri", nil, p)
			}
			b.WriteString("</r_ele>\n")
		}
		for _, glosses := range w.Senses {
			b.WriteString("<sense>\n<pos>&adj-na;</pos>\n<pos>&n;</pos>\n")
			for _, g := range glosses {
				writeElem(t, &b, "gloss", []xml.Attr{attr("xml:lang", "eng")}, g)
			}
			b.WriteString("</sense>\n")
		}
		b.WriteString("</entry>\n")
	}
	b.WriteString("</JMdict>\n")

	return b.Bytes()
}
