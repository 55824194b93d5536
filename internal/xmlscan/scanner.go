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

// Package xmlscan decodes repeated elements of a large XML document one at a
// time.
package xmlscan

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Options are options for a Scanner.
type Options struct {
	// Directive is called for every directive (e.g. <!DOCTYPE ...>) read
	// before or between the scanned elements. It may modify the decoder, for
	// example by registering entities.
	Directive func(*xml.Decoder, xml.Directive) error
}

// Scanner scans a document for elements with a given local name and decodes
// each of them into a new V. Elements with other names are walked through,
// so scanned elements may appear at any depth.
type Scanner[V any] struct {
	r         io.ReadCloser
	d         *xml.Decoder
	name      string
	directive func(*xml.Decoder, xml.Directive) error

	v   *V
	err error
}

// New returns a new Scanner that decodes elements named name from r. The
// Scanner assumes ownership of the reader and should be closed with the Close
// method.
func New[V any](r io.ReadCloser, name string, options *Options) *Scanner[V] {
	s := &Scanner[V]{
		r:    r,
		d:    xml.NewDecoder(r),
		name: name,
	}
	if options != nil {
		s.directive = options.Directive
	}
	return s
}

// Scan advances to the next matching element. It returns false if the scan
// stops either by reaching the end of the document or an error.
func (s *Scanner[V]) Scan() bool {
	if s.err != nil {
		return false
	}

	for {
		tok, err := s.d.Token()
		if errors.Is(err, io.EOF) {
			s.v = nil
			return false
		}
		if err != nil {
			s.v = nil
			s.err = fmt.Errorf("reading xml: %w", err)
			return false
		}

		switch t := tok.(type) {
		case xml.Directive:
			if s.directive == nil {
				continue
			}
			if err := s.directive(s.d, t); err != nil {
				s.v = nil
				s.err = fmt.Errorf("handling directive: %w", err)
				return false
			}
		case xml.StartElement:
			if t.Name.Local != s.name {
				continue
			}
			var v V
			if err := s.d.DecodeElement(&v, &t); err != nil {
				s.v = nil
				s.err = fmt.Errorf("decoding <%s>: %w", s.name, err)
				return false
			}
			s.v = &v
			return true
		}
	}
}

// Value returns the element decoded by the last call to Scan.
func (s *Scanner[V]) Value() *V {
	return s.v
}

// Err returns the first error encountered.
func (s *Scanner[V]) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner[V]) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing xml document: %w", err)
	}
	return nil
}
