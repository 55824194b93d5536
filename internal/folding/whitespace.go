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

// Package folding normalizes dictionary text before it is written out.
package folding

import (
	"fmt"

	"golang.org/x/text/transform"
)

// Whitespace trims dictionary text. Leading and trailing ASCII whitespace
// (space, tab, CR and LF) is dropped. Everything in between, including
// internal runs of whitespace, non-breaking spaces and ideographic spaces, is
// kept as written.
type Whitespace struct {
	// seenText is set once the first non-space byte has been emitted.
	seenText bool

	// pending holds a whitespace run that follows text. It is written out
	// when more text shows up and dropped at the end of the input.
	pending []byte
}

// NewWhitespace returns a new whitespace trimming transformer.
func NewWhitespace() transform.Transformer {
	return &Whitespace{}
}

// isSpace reports whether b is ASCII whitespace. ASCII bytes never occur
// inside multi-byte UTF-8 sequences so the input can be scanned bytewise.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if isSpace(b) {
			if w.seenText {
				w.pending = append(w.pending, b)
			}
			nSrc++
			continue
		}

		if len(w.pending) > 0 {
			n := copy(dst[nDst:], w.pending)
			nDst += n
			w.pending = w.pending[n:]
			if len(w.pending) > 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
		w.seenText = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	w.seenText = false
	w.pending = nil
}

// String trims the whitespace around s.
func String(s string) (string, error) {
	folded, _, err := transform.String(NewWhitespace(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}

// Strings trims each of the given strings. A nil slice yields an empty,
// non-nil slice.
func Strings(ss []string) ([]string, error) {
	folded := make([]string, 0, len(ss))
	for _, s := range ss {
		f, err := String(s)
		if err != nil {
			return nil, err
		}
		folded = append(folded, f)
	}
	return folded, nil
}
