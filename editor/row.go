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

// A row of text in a buffer. Rows never contain line separators.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) InsertChar(col int, c rune) {
	r.InsertRunes(col, []rune{c})
}

func (r *Row) InsertRunes(col int, text []rune) {
	if col > len(r.Text) {
		col = len(r.Text)
	}
	if col < 0 {
		col = 0
	}
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	c := r.Text[col]
	r.Text = append(r.Text[0:col:col], r.Text[col+1:]...)
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col >= len(r.Text) {
		return NewRow("")
	}
	if col < 0 {
		col = 0
	}
	after := string(r.Text[col:])
	r.Text = r.Text[0:col:col]
	return NewRow(after)
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.Text = append(r.Text[0:len(r.Text):len(r.Text)], other.Text...)
}

// Replace swaps the runes in [start, end) for text.
func (r *Row) Replace(start, end int, text []rune) {
	if start < 0 {
		start = 0
	}
	if end > len(r.Text) {
		end = len(r.Text)
	}
	if start > end {
		return
	}
	line := make([]rune, 0, len(r.Text)-(end-start)+len(text))
	line = append(line, r.Text[0:start]...)
	line = append(line, text...)
	line = append(line, r.Text[end:]...)
	r.Text = line
}
