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

import (
	"strings"

	"github.com/timburks/tged/types"
)

// Window modes
const (
	ModeNormal = 0
	ModeSearch = 1
)

// PageStep is the number of lines PageUp and PageDown move.
const PageStep = 25

// scrollMargin is how close the cursor may get to the top or bottom of
// the text area before the view scrolls.
const scrollMargin = 4

// A Window presents one buffer as a soft-wrapped, scrollable text area.
// It holds the cursor and scroll offset; the buffer is swapped in when
// the store switches buffers.
type Window struct {
	buffer  *Buffer
	cursor  Position
	scroll  int // first logical line shown
	size    types.Size
	mode    int
	matches []Position
	match   int    // index of the selected match
	query   string // text being searched for
}

func NewWindow(b *Buffer) *Window {
	return &Window{buffer: b, size: types.Size{Rows: 1, Cols: 1}}
}

func (w *Window) GetBuffer() *Buffer {
	return w.buffer
}

// SetBuffer attaches a buffer and restores its view state.
func (w *Window) SetBuffer(b *Buffer, state ViewState) {
	w.buffer = b
	w.cursor = state.Cursor
	w.scroll = state.Scroll
	w.mode = ModeNormal
	w.matches = nil
	w.KeepCursorInBuffer()
	w.Reveal()
}

func (w *Window) ViewState() ViewState {
	return ViewState{Cursor: w.cursor, Scroll: w.scroll}
}

// SetSize sets the text area; Cols is the wrap width.
func (w *Window) SetSize(s types.Size) {
	if s.Rows < 1 {
		s.Rows = 1
	}
	if s.Cols < 1 {
		s.Cols = 1
	}
	w.size = s
}

func (w *Window) GetSize() types.Size {
	return w.size
}

func (w *Window) GetCursor() Position {
	return w.cursor
}

func (w *Window) SetCursor(p Position) {
	w.cursor = p
	w.KeepCursorInBuffer()
}

func (w *Window) GetScroll() int {
	return w.scroll
}

func (w *Window) GetMode() int {
	return w.mode
}

// CursorRow is the visual row of the cursor relative to the top of the text area.
func (w *Window) CursorRow() int {
	return visualRow(w.buffer, w.scroll, w.cursor, w.size.Cols)
}

// CursorCol is the visual column of the cursor.
func (w *Window) CursorCol() int {
	return w.cursor.Col % w.size.Cols
}

// Layout returns the draw plan for the current view.
func (w *Window) Layout() []Segment {
	return Layout(w.buffer, w.scroll, w.size.Cols, w.size.Rows)
}

func (w *Window) lineInc() {
	if w.CursorRow()+scrollMargin > w.size.Rows {
		w.scroll++
	}
	w.cursor.Line++
}

func (w *Window) lineDec() {
	if w.scroll != 0 && w.CursorRow() < scrollMargin {
		w.scroll--
	}
	w.cursor.Line--
}

// Reveal moves the view so the cursor is inside the text area.
func (w *Window) Reveal() {
	if w.cursor.Line < w.scroll {
		w.scroll = w.cursor.Line
	}
	for w.scroll < w.cursor.Line && w.CursorRow() >= w.size.Rows {
		w.scroll++
	}
}

// KeepCursorInBuffer clamps the cursor to existing text.
func (w *Window) KeepCursorInBuffer() {
	rows := w.buffer.GetRowCount()
	if w.cursor.Line >= rows {
		w.cursor.Line = rows - 1
	}
	if w.cursor.Line < 0 {
		w.cursor.Line = 0
	}
	if n := w.buffer.GetRowLength(w.cursor.Line); w.cursor.Col > n {
		w.cursor.Col = n
	}
	if w.cursor.Col < 0 {
		w.cursor.Col = 0
	}
	if w.scroll > w.cursor.Line {
		w.scroll = w.cursor.Line
	}
}

func (w *Window) currentRow() *Row {
	if w.buffer.GetRowCount() == 0 {
		w.buffer.insertRow(0, NewRow(""))
	}
	return w.buffer.Row(w.cursor.Line)
}

func (w *Window) InsertChar(c rune) {
	w.currentRow().InsertChar(w.cursor.Col, c)
	w.cursor.Col++
}

// InsertString inserts text at the cursor. Tabs become four spaces.
func (w *Window) InsertString(text string) {
	runes := []rune(strings.ReplaceAll(text, "\t", "    "))
	w.currentRow().InsertRunes(w.cursor.Col, runes)
	w.cursor.Col += len(runes)
}

// SplitLine breaks the current line at the cursor.
func (w *Window) SplitLine() {
	rest := w.currentRow().Split(w.cursor.Col)
	w.buffer.insertRow(w.cursor.Line+1, rest)
	w.cursor.Col = 0
	w.lineInc()
}

// Backspace deletes the character before the cursor, joining the line
// with the previous one at the start of a line.
func (w *Window) Backspace() {
	if w.cursor.Col > 0 {
		w.currentRow().DeleteChar(w.cursor.Col - 1)
		w.cursor.Col--
		return
	}
	if w.cursor.Line == 0 {
		return
	}
	previous := w.buffer.Row(w.cursor.Line - 1)
	w.cursor.Col = previous.Length()
	previous.Join(w.buffer.Row(w.cursor.Line))
	w.buffer.deleteRow(w.cursor.Line)
	w.lineDec()
}

// Delete removes the character under the cursor, pulling the next line up
// at the end of a line.
func (w *Window) Delete() {
	if w.cursor.Col < w.buffer.GetRowLength(w.cursor.Line) {
		w.currentRow().DeleteChar(w.cursor.Col)
		return
	}
	if w.cursor.Line >= w.buffer.GetRowCount()-1 {
		return
	}
	w.currentRow().Join(w.buffer.Row(w.cursor.Line + 1))
	w.buffer.deleteRow(w.cursor.Line + 1)
}

func (w *Window) MoveUp() {
	if w.cursor.Line > 0 {
		if n := w.buffer.GetRowLength(w.cursor.Line - 1); w.cursor.Col > n {
			w.cursor.Col = n
		}
		w.lineDec()
	}
}

func (w *Window) MoveDown() {
	if w.cursor.Line < w.buffer.GetRowCount()-1 {
		if n := w.buffer.GetRowLength(w.cursor.Line + 1); w.cursor.Col > n {
			w.cursor.Col = n
		}
		w.lineInc()
	}
}

func (w *Window) MoveLeft() {
	if w.cursor.Col > 0 {
		w.cursor.Col--
	}
}

func (w *Window) MoveRight() {
	if w.cursor.Col < w.buffer.GetRowLength(w.cursor.Line) {
		w.cursor.Col++
	}
}

func (w *Window) MoveToBeginningOfLine() {
	w.cursor.Col = 0
}

func (w *Window) MoveToEndOfLine() {
	w.cursor.Col = w.buffer.GetRowLength(w.cursor.Line)
}

func (w *Window) PageUp() {
	for i := 0; i < PageStep; i++ {
		w.MoveUp()
	}
}

func (w *Window) PageDown() {
	for i := 0; i < PageStep; i++ {
		w.MoveDown()
	}
}
