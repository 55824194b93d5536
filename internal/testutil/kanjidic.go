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
	"fmt"
	"maps"
	"slices"
	"strconv"
	"testing"
)

// Kanji describes a KANJIDIC2 <character> element for tests. Zero values
// omit the corresponding element.
type Kanji struct {
	Literal string

	// JIS208 is the jis208 code point. Characters without one are outside the
	// repertoire.
	JIS208 string

	// Radical is the classical radical number.
	Radical int

	// NelsonRadical is an extra nelson_c radical that should be ignored.
	NelsonRadical int

	Grade int

	// StrokeCounts are the stroke_count elements. The first one is the
	// accepted count.
	StrokeCounts []int

	On       []string
	Kun      []string
	Meanings []string

	// ForeignMeanings are meanings tagged with an m_lang, keyed by language.
	ForeignMeanings map[string]string
}

// MakeKanjidic creates a test KANJIDIC2 document.
func MakeKanjidic(t *testing.T, chars []*Kanji) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE kanjidic2 [
<!ELEMENT kanjidic2 (header,character*)>
<!-- the full DTD is omitted from test data -->
]>
<kanjidic2>
<header><file_version>4</file_version><database_version>2025-001</database_version></header>
`)
	for _, c := range chars {
		b.WriteString("<character>\n")
		writeElem(t, &b, "literal", nil, c.Literal)

		b.WriteString("<codepoint>\n")
		for _, r := range c.Literal {
			writeElem(t, &b, "cp_value", []xml.Attr{attr("cp_type", "ucs")}, fmt.Sprintf("%x", r))
		}
		if c.JIS208 != "" {
			writeElem(t, &b, "cp_value", []xml.Attr{attr("cp_type", "jis208")}, c.JIS208)
		}
		b.WriteString("</codepoint>\n")

		b.WriteString("<radical>\n")
		if c.Radical != 0 {
			writeElem(t, &b, "rad_value", []xml.Attr{attr("rad_type", "classical")}, strconv.Itoa(c.Radical))
		}
		if c.NelsonRadical != 0 {
			writeElem(t, &b, "rad_value", []xml.Attr{attr("rad_type", "nelson_c")}, strconv.Itoa(c.NelsonRadical))
		}
		b.WriteString("</radical>\n")

		b.WriteString("<misc>\n")
		if c.Grade != 0 {
			writeElem(t, &b, "grade", nil, strconv.Itoa(c.Grade))
		}
		for _, sc := range c.StrokeCounts {
			writeElem(t, &b, "stroke_count", nil, strconv.Itoa(sc))
		}
		b.WriteString("</misc>\n")

		b.WriteString("<reading_meaning>\n<rmgroup>\n")
		writeElem(t, &b, "reading", []xml.Attr{attr("r_type", "pinyin")}, "yuan2")
		for _, r := range c.On {
			writeElem(t, &b, "reading", []xml.Attr{attr("r_type", "ja_on")}, r)
		}
		for _, r := range c.Kun {
			writeElem(t, &b, "reading", []xml.Attr{attr("r_type", "ja_kun")}, r)
		}
		for _, m := range c.Meanings {
			writeElem(t, &b, "meaning", nil, m)
		}
		for _, lang := range slices.Sorted(maps.Keys(c.ForeignMeanings)) {
			writeElem(t, &b, "meaning", []xml.Attr{attr("m_lang", lang)}, c.ForeignMeanings[lang])
		}
		b.WriteString("</rmgroup>\n</reading_meaning>\n")
		b.WriteString("</character>\n")
	}
	b.WriteString("</kanjidic2>\n")

	return b.Bytes()
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// writeElem writes a single element with escaped text content.
func writeElem(t *testing.T, b *bytes.Buffer, name string, attrs []xml.Attr, text string) {
	t.Helper()

	b.WriteString("<" + name)
	for _, a := range attrs {
		b.WriteString(" " + a.Name.Local + `="`)
		if err := xml.EscapeText(b, []byte(a.Value)); err != nil {
			t.Fatal(err)
		}
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if err := xml.EscapeText(b, []byte(text)); err != nil {
		t.Fatal(err)
	}
	b.WriteString("</" + name + ">\n")
}
