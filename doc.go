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

// Package langdata builds static Japanese language data for web applications
// that have no backend or database.
//
// Data is generated in three steps:
//   1. Extract reads KANJIDIC2 and returns a radical index along with a Store
//      of kanji records. Only kanji with a JIS X 0208 code point are kept
//      since that is the character set supported by the target fonts.
//   2. Store.Link reads JMdict and attaches every common word to each kanji
//      it is written with.
//   3. Emit writes the radical index to kanji-index.json and each kanji
//      record to kanji/<code point>.json.
//
// Generate runs all three steps over files on disk.
package langdata
