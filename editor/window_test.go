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
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/timburks/tged/types"
)

func bufferWithLines(lines ...string) *Buffer {
	b := newBuffer(1)
	b.LoadBytes([]byte(strings.Join(lines, "\n")))
	b.MarkSynced()
	return b
}

func checkLines(t *testing.T, b *Buffer, expected ...string) {
	t.Helper()
	lines := b.Lines()
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i := range lines {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestTypingIntoScratch(t *testing.T) {
	s := NewStore(".")
	id := s.NewScratch()
	w := NewWindow(s.Get(id))
	w.SetSize(types.Size{Rows: 10, Cols: 40})
	for _, c := range "abc" {
		w.InsertChar(c)
	}
	w.SplitLine()
	w.InsertChar('d')
	checkLines(t, s.Get(id), "abc", "d")
	if !s.Get(id).Dirty() {
		t.Errorf("edited scratch buffer should be dirty")
	}
	if w.GetCursor() != (Position{Line: 1, Col: 1}) {
		t.Errorf("unexpected cursor %+v", w.GetCursor())
	}
}

func TestInsertTab(t *testing.T) {
	b := bufferWithLines("x")
	w := NewWindow(b)
	w.InsertString("\t")
	checkLines(t, b, "    x")
	if w.GetCursor().Col != 4 {
		t.Errorf("cursor should follow the expanded tab, got %d", w.GetCursor().Col)
	}
}

func TestWrappedCursor(t *testing.T) {
	b := bufferWithLines("abcdefghijklmno")
	w := NewWindow(b)
	w.SetSize(types.Size{Rows: 5, Cols: 10})
	segments := w.Layout()
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if string(segments[0].Text) != "abcdefghij" || string(segments[1].Text) != "klmno" {
		t.Errorf("unexpected segments %q %q", string(segments[0].Text), string(segments[1].Text))
	}
	w.SetCursor(Position{Line: 0, Col: 12})
	if w.CursorRow() != 1 || w.CursorCol() != 2 {
		t.Errorf("expected cursor at row 1 col 2, got row %d col %d", w.CursorRow(), w.CursorCol())
	}
}

func TestLayoutAgreesWithCursor(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 500; trial++ {
		n := 1 + r.Intn(12)
		lines := make([]string, n)
		for i := range lines {
			lines[i] = strings.Repeat("x", r.Intn(60))
		}
		b := bufferWithLines(lines...)
		width := 1 + r.Intn(20)
		w := NewWindow(b)
		w.SetSize(types.Size{Rows: 1000, Cols: width})
		line := r.Intn(n)
		col := r.Intn(len(lines[line]) + 1)
		w.SetCursor(Position{Line: line, Col: col})

		found := false
		for _, segment := range w.Layout() {
			if segment.Line == line && segment.Start == (col/width)*width {
				found = true
				if segment.Row != w.CursorRow() {
					t.Fatalf("trial %d: segment row %d, cursor row %d (width %d, line %d, col %d)",
						trial, segment.Row, w.CursorRow(), width, line, col)
				}
			}
		}
		// a cursor just past a full final row sits on the row after it
		if !found && col != len(lines[line]) {
			t.Fatalf("trial %d: no segment holds the cursor", trial)
		}
	}
}

func TestRowsFor(t *testing.T) {
	cases := []struct{ n, width, rows int }{
		{0, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 10, 2},
		{21, 10, 3},
		{5, 0, 1},
	}
	for _, c := range cases {
		if got := RowsFor(c.n, c.width); got != c.rows {
			t.Errorf("RowsFor(%d, %d) = %d, expected %d", c.n, c.width, got, c.rows)
		}
	}
}

func TestLayoutStopsAtHeight(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	b := bufferWithLines(lines...)
	segments := Layout(b, 5, 80, 4)
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}
	if segments[0].Line != 5 || segments[3].Line != 8 || segments[3].Row != 3 {
		t.Errorf("unexpected plan %+v", segments)
	}
}

func TestScrollHysteresis(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d", i)
	}
	w := NewWindow(bufferWithLines(lines...))
	w.SetSize(types.Size{Rows: 10, Cols: 80})
	for i := 0; i < 7; i++ {
		w.MoveDown()
	}
	if w.GetScroll() != 0 {
		t.Errorf("scrolled too early, scroll %d", w.GetScroll())
	}
	for i := 7; i < 20; i++ {
		w.MoveDown()
		if w.CursorRow() >= 10 {
			t.Fatalf("cursor left the text area at line %d", w.GetCursor().Line)
		}
	}
	if w.GetCursor().Line != 20 || w.GetScroll() != 13 {
		t.Errorf("expected line 20 scroll 13, got line %d scroll %d", w.GetCursor().Line, w.GetScroll())
	}
	for i := 0; i < 4; i++ {
		w.MoveUp()
	}
	if w.GetScroll() != 13 {
		t.Errorf("scrolled back too early, scroll %d", w.GetScroll())
	}
	w.MoveUp()
	if w.GetScroll() != 12 {
		t.Errorf("expected scroll 12, got %d", w.GetScroll())
	}
	for i := 0; i < 30; i++ {
		w.MoveUp()
	}
	if w.GetScroll() != 0 || w.GetCursor().Line != 0 {
		t.Errorf("expected top of buffer, got line %d scroll %d", w.GetCursor().Line, w.GetScroll())
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	b := bufferWithLines("abc", "def")
	w := NewWindow(b)
	w.SetCursor(Position{Line: 1, Col: 0})
	w.Backspace()
	checkLines(t, b, "abcdef")
	if w.GetCursor() != (Position{Line: 0, Col: 3}) {
		t.Errorf("unexpected cursor %+v", w.GetCursor())
	}
	w.SetCursor(Position{Line: 0, Col: 0})
	w.Backspace()
	checkLines(t, b, "abcdef")
}

func TestDeleteForward(t *testing.T) {
	b := bufferWithLines("abc", "def")
	w := NewWindow(b)
	w.SetCursor(Position{Line: 0, Col: 1})
	w.Delete()
	checkLines(t, b, "ac", "def")
	w.MoveToEndOfLine()
	w.Delete()
	checkLines(t, b, "acdef")
	w.MoveToEndOfLine()
	w.Delete()
	checkLines(t, b, "acdef")
	if w.GetCursor() != (Position{Line: 0, Col: 5}) {
		t.Errorf("unexpected cursor %+v", w.GetCursor())
	}
}

func TestVerticalMovesClampColumn(t *testing.T) {
	w := NewWindow(bufferWithLines("long line", "ab", "longer line"))
	w.SetSize(types.Size{Rows: 10, Cols: 80})
	w.SetCursor(Position{Line: 0, Col: 8})
	w.MoveDown()
	if w.GetCursor() != (Position{Line: 1, Col: 2}) {
		t.Errorf("unexpected cursor %+v", w.GetCursor())
	}
	w.MoveDown()
	w.MoveDown()
	if w.GetCursor() != (Position{Line: 2, Col: 2}) {
		t.Errorf("moved past the last line: %+v", w.GetCursor())
	}
	w.MoveToEndOfLine()
	w.MoveRight()
	if w.GetCursor().Col != 11 {
		t.Errorf("moved past end of line: %+v", w.GetCursor())
	}
	w.MoveToBeginningOfLine()
	w.MoveLeft()
	if w.GetCursor().Col != 0 {
		t.Errorf("moved before start of line: %+v", w.GetCursor())
	}
}

func TestPaging(t *testing.T) {
	lines := make([]string, 60)
	w := NewWindow(bufferWithLines(lines...))
	w.SetSize(types.Size{Rows: 20, Cols: 80})
	w.PageDown()
	if w.GetCursor().Line != PageStep {
		t.Errorf("expected line %d, got %d", PageStep, w.GetCursor().Line)
	}
	if w.CursorRow() >= 20 {
		t.Errorf("cursor off screen after page down")
	}
	w.PageDown()
	w.PageDown()
	if w.GetCursor().Line != 59 {
		t.Errorf("expected last line, got %d", w.GetCursor().Line)
	}
	w.PageUp()
	w.PageUp()
	w.PageUp()
	if w.GetCursor().Line != 0 || w.GetScroll() != 0 {
		t.Errorf("expected top, got line %d scroll %d", w.GetCursor().Line, w.GetScroll())
	}
}

func TestSetBufferClampsState(t *testing.T) {
	w := NewWindow(bufferWithLines("one"))
	w.SetSize(types.Size{Rows: 5, Cols: 80})
	w.SetBuffer(bufferWithLines("a", "bc"), ViewState{Cursor: Position{Line: 9, Col: 9}, Scroll: 9})
	if w.GetCursor() != (Position{Line: 1, Col: 2}) {
		t.Errorf("unexpected cursor %+v", w.GetCursor())
	}
	if w.GetScroll() > w.GetCursor().Line {
		t.Errorf("scroll %d past cursor", w.GetScroll())
	}
}

func TestCursorAfterFullRow(t *testing.T) {
	w := NewWindow(bufferWithLines("abcd", "xy"))
	w.SetSize(types.Size{Rows: 10, Cols: 4})
	w.SetCursor(Position{Line: 0, Col: 4})
	if w.CursorRow() != 1 || w.CursorCol() != 0 {
		t.Errorf("expected row 1 col 0, got row %d col %d", w.CursorRow(), w.CursorCol())
	}
	if rows := RowsFor(4, 4); rows != 1 {
		t.Errorf("a full row should not add a segment, got %d rows", rows)
	}
}
