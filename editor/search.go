//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

// FindAll returns every non-overlapping occurrence of text in the buffer,
// ordered by line and then by column.
func FindAll(b *Buffer, text string) []Position {
	matches := make([]Position, 0)
	query := []rune(text)
	if len(query) == 0 {
		return matches
	}
	for line := 0; line < b.GetRowCount(); line++ {
		row := b.Row(line).Text
		for col := 0; col+len(query) <= len(row); {
			if equalRunes(row[col:col+len(query)], query) {
				matches = append(matches, Position{Line: line, Col: col})
				col += len(query)
			} else {
				col++
			}
		}
	}
	return matches
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Search looks for text and, when it is found, enters search mode with
// the cursor on the first match. It returns the number of matches.
func (w *Window) Search(text string) int {
	matches := FindAll(w.buffer, text)
	if len(matches) == 0 {
		return 0
	}
	w.query = text
	w.matches = matches
	w.mode = ModeSearch
	w.selectMatch(0)
	return len(matches)
}

func (w *Window) GetQuery() string {
	return w.query
}

func (w *Window) GetMatches() []Position {
	return w.matches
}

// GetMatchIndex returns the index of the selected match.
func (w *Window) GetMatchIndex() int {
	return w.match
}

func (w *Window) selectMatch(i int) {
	w.match = i
	w.cursor = w.matches[i]
	w.Reveal()
}

func (w *Window) NextMatch() {
	if len(w.matches) == 0 {
		return
	}
	w.selectMatch((w.match + 1) % len(w.matches))
}

func (w *Window) PreviousMatch() {
	if len(w.matches) == 0 {
		return
	}
	if w.match < 1 {
		w.selectMatch(len(w.matches) - 1)
	} else {
		w.selectMatch(w.match - 1)
	}
}

func (w *Window) FirstMatch() {
	if len(w.matches) > 0 {
		w.selectMatch(0)
	}
}

func (w *Window) LastMatch() {
	if len(w.matches) > 0 {
		w.selectMatch(len(w.matches) - 1)
	}
}

// Replace substitutes text for the selected match and searches again.
// When nothing matches any more the window returns to normal mode.
// It returns the number of remaining matches.
func (w *Window) Replace(text string) int {
	if w.mode != ModeSearch || len(w.matches) == 0 {
		return 0
	}
	m := w.matches[w.match]
	w.buffer.Row(m.Line).Replace(m.Col, m.Col+len([]rune(w.query)), []rune(text))
	w.matches = FindAll(w.buffer, w.query)
	if len(w.matches) == 0 {
		w.cursor = m
		w.KeepCursorInBuffer()
		w.ExitSearch()
		return 0
	}
	if w.match >= len(w.matches) {
		w.match = len(w.matches) - 1
	}
	w.selectMatch(w.match)
	return len(w.matches)
}

func (w *Window) ExitSearch() {
	w.mode = ModeNormal
	w.matches = nil
	w.match = 0
}
