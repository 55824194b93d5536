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

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"

	"github.com/sandlunds/jp-language-data/internal/xmlscan"
)

// entityRegex matches general entity declarations in a DOCTYPE internal
// subset. Parameter entities (<!ENTITY % ...>) are not matched.
var entityRegex = regexp.MustCompile(`<!ENTITY\s+([^\s%"]+)\s+"([^"]*)"\s*>`)

// Scanner scans a JMdict document from start to end, one entry at a time.
type Scanner struct {
	s *xmlscan.Scanner[Entry]
}

// NewScanner returns a new scanner that scans the document from start to end.
// The Scanner assumes ownership of the reader and should be closed with the
// Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		s: xmlscan.New[Entry](r, "entry", &xmlscan.Options{
			Directive: registerEntities,
		}),
	}
}

// Scan advances the scanner to the next entry. It returns false if the scan
// stops either by reaching the end of the document or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Entry returns the entry read by the last call to Scan.
func (s *Scanner) Entry() *Entry {
	return s.s.Value()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("jmdict: %w", err)
	}
	return nil
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	//nolint:wrapcheck // error is already wrapped by xmlscan
	return s.s.Close()
}

// registerEntities adds the entities declared in a DOCTYPE directive to the
// decoder.
func registerEntities(d *xml.Decoder, dir xml.Directive) error {
	if !bytes.HasPrefix(dir, []byte("DOCTYPE")) {
		return nil
	}
	for name, value := range Entities(dir) {
		if d.Entity == nil {
			d.Entity = map[string]string{}
		}
		d.Entity[name] = value
	}
	return nil
}

// Entities returns the general entities declared in a DOCTYPE directive.
func Entities(dir xml.Directive) map[string]string {
	entities := map[string]string{}
	for _, m := range entityRegex.FindAllSubmatch(dir, -1) {
		entities[string(m[1])] = string(m[2])
	}
	return entities
}
