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

// Package jmdict implements reading JMdict files.
//
// JMdict is a single XML document with one <entry> element per word. Each
// entry comes in three parts:
//   1. Kanji elements (k_ele): written forms of the word (keb), each
//      optionally tagged with priority codes (ke_pri).
//   2. Reading elements (r_ele): kana readings (reb), each optionally tagged
//      with priority codes (re_pri).
//   3. Senses: groups of English glosses along with part of speech and usage
//      information.
//
// A form carrying any priority code is considered a common word.
//
// Part of speech and other codes are written as entity references (e.g.
// &n;) that are declared in the document's DOCTYPE. The Scanner registers
// those declarations so that the document can be decoded.
//
// More info on the format can be found at this URL:
// http://www.edrdg.org/jmdict/jmdict_dtd_h.html
package jmdict
