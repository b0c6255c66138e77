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

// RowsFor returns the number of visual rows taken by a line of length n
// when lines wrap at width.
func RowsFor(n, width int) int {
	if width <= 0 || n <= width {
		return 1
	}
	return (n + width - 1) / width
}

// rowsBetween counts the visual rows of lines [from, to).
// Both the draw plan and cursor placement go through here.
func rowsBetween(b *Buffer, from, to, width int) int {
	rows := 0
	for i := from; i < to && i < b.GetRowCount(); i++ {
		rows += RowsFor(b.GetRowLength(i), width)
	}
	return rows
}

// visualRow is the screen row, relative to the top of the text area, of
// logical position p when the view starts at line scroll.
func visualRow(b *Buffer, scroll int, p Position, width int) int {
	row := rowsBetween(b, scroll, p.Line, width)
	if width > 0 {
		// A cursor at the end of a line that exactly fills its rows lands
		// at column 0 of the row after the line's last segment, which
		// agrees with Window.CursorCol. Change both or neither.
		row += p.Col / width
	}
	return row
}

// A Segment is one visual row of the draw plan.
type Segment struct {
	Line  int // logical line
	Start int // column of the first rune in the segment
	Row   int // visual row relative to the top of the text area
	Text  []rune
}

// Layout returns the segments visible in a text area of the given size
// when the view starts at line scroll.
func Layout(b *Buffer, scroll, width, height int) []Segment {
	segments := make([]Segment, 0, height)
	for line := scroll; line < b.GetRowCount(); line++ {
		top := visualRow(b, scroll, Position{Line: line}, width)
		if top >= height {
			break
		}
		text := b.Row(line).Text
		for n := 0; n < RowsFor(len(text), width); n++ {
			row := visualRow(b, scroll, Position{Line: line, Col: n * width}, width)
			if row >= height {
				break
			}
			begin := n * width
			end := begin + width
			if width <= 0 || end > len(text) {
				end = len(text)
			}
			segments = append(segments, Segment{Line: line, Start: begin, Row: row, Text: text[begin:end]})
		}
	}
	return segments
}
