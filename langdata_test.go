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

package langdata_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	langdata "github.com/sandlunds/jp-language-data"
	"github.com/sandlunds/jp-language-data/internal/testutil"
)

var sortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

var testKanji = []*testutil.Kanji{
	{
		Literal:      "元",
		JIS208:       "1-24-21",
		Radical:      10,
		Grade:        2,
		StrokeCounts: []int{4},
		On:           []string{"ゲン", "ガン"},
		Kun:          []string{"もと"},
		Meanings:     []string{"beginning", "former time", "origin"},
	},
	{
		Literal:      "気",
		JIS208:       "1-21-04",
		Radical:      84,
		Grade:        1,
		StrokeCounts: []int{6},
		On:           []string{"キ", "ケ"},
		Meanings:     []string{"spirit", "mind"},
	},
	{
		Literal:      "儿",
		JIS208:       "1-49-28",
		Radical:      10,
		StrokeCounts: []int{2},
		On:           []string{"ジン", "ニン"},
		Meanings:     []string{"legs radical (no. 10)"},
	},
	{
		Literal: "丂",
		Radical: 1,
	},
}

var testWords = []*testutil.Word{
	{
		Kanji:    []testutil.Form{{Text: "元気", Priority: []string{"ichi1", "news1"}}},
		Readings: []testutil.Form{{Text: "げんき", Priority: []string{"ichi1"}}},
		Senses:   [][]string{{"health"}},
	},
	{
		Kanji:    []testutil.Form{{Text: "元気づく"}},
		Readings: []testutil.Form{{Text: "げんきづく"}},
		Senses:   [][]string{{"to get encouraged"}},
	},
}

// writeSources writes the test documents to dir and returns their paths.
func writeSources(t *testing.T, dir, ext string, chars []*testutil.Kanji, words []*testutil.Word) (string, string) {
	t.Helper()

	kanjidic := testutil.WriteFile(t, dir, "kanjidic2.xml"+ext, testutil.MakeKanjidic(t, chars))
	jmdict := testutil.WriteFile(t, dir, "JMdict_e.xml"+ext, testutil.MakeJMdict(t, words))
	return kanjidic, jmdict
}

// readTree returns the contents of all files under dir keyed by relative path.
func readTree(t *testing.T, dir string) map[string]string {
	t.Helper()

	files := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(b)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return files
}

// TestGenerate tests Generate.
func TestGenerate(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{"", ".gz", ".dz"} {
		t.Run("ext"+ext, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			kanjidic, jmdict := writeSources(t, dir, ext, testKanji, testWords)
			out := filepath.Join(dir, "out")

			var logs bytes.Buffer
			result, err := langdata.Generate(&langdata.Options{
				KanjidicPath: kanjidic,
				JMdictPath:   jmdict,
				OutputDir:    out,
				Logger:       slog.New(slog.NewTextHandler(&logs, nil)),
			})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			if want, got := 3, result.Characters; want != got {
				t.Errorf("Characters: want %d, got %d", want, got)
			}
			if want, got := 1, result.Skipped; want != got {
				t.Errorf("Skipped: want %d, got %d", want, got)
			}
			if diff := cmp.Diff(langdata.LinkStats{Entries: 2, Common: 1, Linked: 2}, result.Link); diff != "" {
				t.Errorf("Link (-want, +got):\n%s", diff)
			}
			if want, got := 4, result.Files; want != got {
				t.Errorf("Files: want %d, got %d", want, got)
			}
			if !bytes.Contains(logs.Bytes(), []byte("generation completed")) {
				t.Errorf("logs: missing completion message:\n%s", logs.String())
			}

			files := readTree(t, out)
			var names []string
			for name := range files {
				names = append(names, name)
			}
			expectedNames := []string{
				"kanji-index.json",
				"kanji/05143.json",
				"kanji/0513f.json",
				"kanji/06c17.json",
			}
			if diff := cmp.Diff(expectedNames, names, sortStrings); diff != "" {
				t.Fatalf("files (-want, +got):\n%s", diff)
			}

			genki := `{"word":"元気","readings":["げんき"],"meanings":["health"]}`
			expectedMoto := `{"literal":"元","radical":10,"grade":2,"jouyou":true,"strokeCount":4,` +
				`"on":["ゲン","ガン"],"kun":["もと"],"meanings":["beginning","former time","origin"],` +
				`"compounds":[` + genki + `]}` + "\n"
			if diff := cmp.Diff(expectedMoto, files["kanji/05143.json"]); diff != "" {
				t.Errorf("kanji/05143.json (-want, +got):\n%s", diff)
			}
			expectedKi := `{"literal":"気","radical":84,"grade":1,"jouyou":true,"strokeCount":6,` +
				`"on":["キ","ケ"],"kun":[],"meanings":["spirit","mind"],` +
				`"compounds":[` + genki + `]}` + "\n"
			if diff := cmp.Diff(expectedKi, files["kanji/06c17.json"]); diff != "" {
				t.Errorf("kanji/06c17.json (-want, +got):\n%s", diff)
			}

			var index [][]langdata.IndexEntry
			if err := json.Unmarshal([]byte(files["kanji-index.json"]), &index); err != nil {
				t.Fatalf("index: %v", err)
			}
			if want, got := langdata.RadicalCount, len(index); want != got {
				t.Fatalf("index: want %d buckets, got %d", want, got)
			}
			expectedBucket := []langdata.IndexEntry{
				{Literal: "儿", Jouyou: false, StrokeCount: 2},
				{Literal: "元", Jouyou: true, StrokeCount: 4},
			}
			if diff := cmp.Diff(expectedBucket, index[9]); diff != "" {
				t.Errorf("index[9] (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestGenerate_filenames tests that every character file is named after the
// code point of the character it holds.
func TestGenerate_filenames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kanjidic, jmdict := writeSources(t, dir, "", testKanji, testWords)
	out := filepath.Join(dir, "out")

	if _, err := langdata.Generate(&langdata.Options{
		KanjidicPath: kanjidic,
		JMdictPath:   jmdict,
		OutputDir:    out,
	}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(out, langdata.CharacterDir))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		r, err := langdata.ParseCharacterFilename(e.Name())
		if err != nil {
			t.Errorf("ParseCharacterFilename: %v", err)
			continue
		}

		b, err := os.ReadFile(filepath.Join(out, langdata.CharacterDir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		var c langdata.Character
		if err := json.Unmarshal(b, &c); err != nil {
			t.Fatalf("%s: %v", e.Name(), err)
		}
		if got, _ := utf8.DecodeRuneInString(c.Literal); got != r {
			t.Errorf("%s: want %U, got %U", e.Name(), r, got)
		}
	}
}

// TestGenerate_idempotent tests that two runs over the same input produce
// identical output.
func TestGenerate_idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kanjidic, jmdict := writeSources(t, dir, ".gz", testKanji, testWords)

	var trees []map[string]string
	for _, name := range []string{"out1", "out2"} {
		out := filepath.Join(dir, name)
		if _, err := langdata.Generate(&langdata.Options{
			KanjidicPath: kanjidic,
			JMdictPath:   jmdict,
			OutputDir:    out,
		}); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		trees = append(trees, readTree(t, out))
	}

	if diff := cmp.Diff(trees[0], trees[1]); diff != "" {
		t.Fatalf("output differs (-first, +second):\n%s", diff)
	}
}

// TestGenerate_noOutput tests that nothing is written when an input is
// invalid.
func TestGenerate_noOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		chars    []*testutil.Kanji
		jmdict   string
		expected error
	}{
		{
			name: "missing stroke count",
			chars: append([]*testutil.Kanji{
				{Literal: "兄", JIS208: "1-23-27", Radical: 10},
			}, testKanji...),
			expected: langdata.ErrMissingStrokeCount,
		},
		{
			name:     "missing jmdict",
			chars:    testKanji,
			jmdict:   "missing.xml",
			expected: fs.ErrNotExist,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			kanjidic, jmdict := writeSources(t, dir, "", test.chars, testWords)
			if test.jmdict != "" {
				jmdict = filepath.Join(dir, test.jmdict)
			}
			out := filepath.Join(dir, "out")

			_, err := langdata.Generate(&langdata.Options{
				KanjidicPath: kanjidic,
				JMdictPath:   jmdict,
				OutputDir:    out,
			})
			if !errors.Is(err, test.expected) {
				t.Fatalf("Generate: want %v, got %v", test.expected, err)
			}
			if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("Stat(%q): want %v, got %v", out, fs.ErrNotExist, err)
			}
		})
	}
}

// TestGenerate_noOutputDir tests that an output directory is required.
func TestGenerate_noOutputDir(t *testing.T) {
	t.Parallel()

	for _, opts := range []*langdata.Options{nil, {}} {
		_, err := langdata.Generate(opts)
		if !errors.Is(err, langdata.ErrNoOutputDir) {
			t.Fatalf("Generate(%+v): want %v, got %v", opts, langdata.ErrNoOutputDir, err)
		}
	}
}
