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

// Package kanji implements reading KANJIDIC2 files.
//
// KANJIDIC2 is a single XML document with one <character> element per kanji.
// Each character carries:
//   1. The literal: the kanji itself.
//   2. Code points: the character's value in Unicode and the JIS character
//      sets (cp_value elements tagged with a cp_type).
//   3. Radicals: classical and Nelson radical numbers (rad_value elements
//      tagged with a rad_type).
//   4. Misc data: school grade, stroke counts, frequency and JLPT level.
//   5. Readings and meanings: reading elements tagged with an r_type and
//      meaning elements, which are English unless they carry an m_lang.
//
// More info on the format can be found at this URL:
// http://www.edrdg.org/wiki/index.php/KANJIDIC_Project
package kanji
