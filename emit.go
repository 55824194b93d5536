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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// IndexFilename is the name of the radical index file.
	IndexFilename = "kanji-index.json"

	// CharacterDir is the name of the directory holding character files.
	CharacterDir = "kanji"

	characterExt = ".json"
)

// ErrInvalidFilename indicates a file name that is not a character file name.
var ErrInvalidFilename = errors.New("invalid character file name")

// CharacterFilename returns the file name of a character's record: the
// lower-case hex code point prefixed with '0'. e.g. "元" is "05143.json".
func CharacterFilename(literal string) string {
	r, _ := utf8.DecodeRuneInString(literal)
	return "0" + strconv.FormatInt(int64(r), 16) + characterExt
}

// ParseCharacterFilename returns the code point encoded in a character file
// name.
func ParseCharacterFilename(name string) (rune, error) {
	base := filepath.Base(name)
	hex, ok := strings.CutSuffix(base, characterExt)
	if !ok || !strings.HasPrefix(hex, "0") || hex != strings.ToLower(hex) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFilename, base)
	}
	cp, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidFilename, base, err)
	}
	return rune(cp), nil
}

// WriteIndex writes the radical index as a JSON array of RadicalCount arrays.
func WriteIndex(w io.Writer, idx *RadicalIndex) error {
	buckets := make([][]IndexEntry, RadicalCount)
	for i, b := range idx {
		// Empty buckets are written as [] rather than null.
		buckets[i] = b
		if buckets[i] == nil {
			buckets[i] = []IndexEntry{}
		}
	}
	return writeJSON(w, buckets)
}

// WriteCharacter writes a character record as JSON.
func WriteCharacter(w io.Writer, c *Character) error {
	return writeJSON(w, c)
}

// Emit writes the radical index and a file for each character in the store to
// dir. Directories are created as needed and existing files are overwritten.
// Emit returns the number of files written.
func Emit(dir string, idx *RadicalIndex, st *Store) (int, error) {
	charDir := filepath.Join(dir, CharacterDir)
	if err := os.MkdirAll(charDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeFile(filepath.Join(dir, IndexFilename), func(w io.Writer) error {
		return WriteIndex(w, idx)
	}); err != nil {
		return 0, err
	}
	n := 1

	for _, c := range st.Characters() {
		path := filepath.Join(charDir, CharacterFilename(c.Literal))
		if err := writeFile(path, func(w io.Writer) error {
			return WriteCharacter(w, c)
		}); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

// writeJSON writes v as UTF-8 JSON. HTML characters are written as is.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// writeFile creates or truncates the file at path and writes to it with write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
