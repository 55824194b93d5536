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
	"fmt"
	"io"

	"github.com/sandlunds/jp-language-data/internal/xmlscan"
)

// Scanner scans a KANJIDIC2 document from start to end, one character at a
// time.
type Scanner struct {
	s *xmlscan.Scanner[Character]
}

// NewScanner returns a new scanner that scans the document from start to end.
// The Scanner assumes ownership of the reader and should be closed with the
// Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		s: xmlscan.New[Character](r, "character", nil),
	}
}

// Scan advances the scanner to the next character. It returns false if the
// scan stops either by reaching the end of the document or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Character returns the character read by the last call to Scan.
func (s *Scanner) Character() *Character {
	return s.s.Value()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("kanjidic2: %w", err)
	}
	return nil
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	//nolint:wrapcheck // error is already wrapped by xmlscan
	return s.s.Close()
}
