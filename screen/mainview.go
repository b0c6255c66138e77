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
package screen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/timburks/tged/editor"
	"github.com/timburks/tged/logging"
	"github.com/timburks/tged/types"
)

// The MainView is the text area showing the current buffer.
type MainView struct {
	View
	window *editor.Window
}

func NewMainView() *MainView {
	return &MainView{View: newView(ViewConfig{
		Name:  "MainView",
		Start: [2]int{26, 3},
		End:   [2]int{-1, -2},
	})}
}

func (v *MainView) Init(m *Module) {
	if m.Store.Len() == 0 {
		m.Store.NewScratch()
	}
	v.window = editor.NewWindow(m.Store.Current())
	v.layout(m)
}

func (v *MainView) Window() *editor.Window {
	return v.window
}

func (v *MainView) layout(m *Module) {
	size := v.Size(m.Term)
	v.window.SetSize(types.Size{Rows: size.Rows, Cols: m.textWidth(size.Cols)})
}

// Switch shows buffer id, keeping the view state of the buffer it replaces.
func (v *MainView) Switch(m *Module, id int) error {
	if id == m.Store.CurrentID() && v.window.GetBuffer() == m.Store.Current() {
		return nil
	}
	view, err := m.Store.SwitchTo(id, v.window.ViewState())
	if err != nil {
		return err
	}
	v.window.SetBuffer(m.Store.Current(), view)
	return nil
}

func (v *MainView) Update(m *Module) {
	if msg, ok := m.RecvMsg(v.name); ok {
		if id, err := strconv.Atoi(msg); err == nil {
			if err := v.Switch(m, id); err != nil {
				logging.Error(err)
			} else {
				m.SendMsg("Menu", fmt.Sprintf("Change to File No.%d", id))
			}
		}
	}
	v.layout(m)
	v.window.KeepCursorInBuffer()
	v.window.Reveal()
}

func (v *MainView) HandleKey(m *Module, ev types.Event) {
	w := v.window
	if ev.Alt {
		switch ev.Key {
		case types.KeyArrowLeft:
			v.grow(m, -1)
		case types.KeyArrowRight:
			v.grow(m, 1)
		}
		return
	}
	switch ev.Key {
	case types.KeyCtrlS:
		v.save(m)
		return
	case types.KeyCtrlF:
		v.find(m)
		return
	case types.KeyF6:
		view := m.Store.Next(w.ViewState())
		w.SetBuffer(m.Store.Current(), view)
		m.SendMsg("Menu", fmt.Sprintf("Change to File No.%d", m.Store.CurrentID()))
		return
	case types.KeyF7:
		view := m.Store.Previous(w.ViewState())
		w.SetBuffer(m.Store.Current(), view)
		m.SendMsg("Menu", fmt.Sprintf("Change to File No.%d", m.Store.CurrentID()))
		return
	case types.KeyF8:
		id, err := AskInt(m, "Change to File No.")
		if err != nil {
			return
		}
		if err := v.Switch(m, id); err != nil {
			m.SendError("Menu", err)
			return
		}
		m.SendMsg("Menu", fmt.Sprintf("Change to File No.%d", id))
		return
	}
	if w.GetMode() == editor.ModeSearch {
		v.handleSearchKey(m, ev)
		return
	}
	switch ev.Key {
	case types.KeyChar:
		w.InsertChar(ev.Ch)
	case types.KeyTab:
		w.InsertString("\t")
	case types.KeyEnter:
		w.SplitLine()
	case types.KeyBackspace:
		w.Backspace()
	case types.KeyDelete:
		w.Delete()
	case types.KeyArrowUp:
		w.MoveUp()
	case types.KeyArrowDown:
		w.MoveDown()
	case types.KeyArrowLeft:
		w.MoveLeft()
	case types.KeyArrowRight:
		w.MoveRight()
	case types.KeyHome:
		w.MoveToBeginningOfLine()
	case types.KeyEnd:
		w.MoveToEndOfLine()
	case types.KeyPgup:
		w.PageUp()
	case types.KeyPgdn:
		w.PageDown()
	}
}

func (v *MainView) handleSearchKey(m *Module, ev types.Event) {
	w := v.window
	switch ev.Key {
	case types.KeyArrowUp, types.KeyArrowLeft, types.KeyPgup:
		w.PreviousMatch()
	case types.KeyArrowDown, types.KeyArrowRight, types.KeyPgdn:
		w.NextMatch()
	case types.KeyHome:
		w.FirstMatch()
	case types.KeyEnd:
		w.LastMatch()
	case types.KeyEnter:
		w.ExitSearch()
		m.SendMsg("Menu", "Return to Normal Mode")
		return
	default:
		return
	}
	m.SendMsg("Menu", fmt.Sprintf("Search for String %q at Index %d", w.GetQuery(), w.GetMatchIndex()))
}

// grow moves the left edge of the text area, taking the columns from the
// file tree and the tab bar.
func (v *MainView) grow(m *Module, delta int) {
	if v.Resize(delta, 0, 0, 0, m.Term) {
		m.Resize("FileTree", 0, 0, delta, 0)
		m.Resize("TopBar", delta, 0, 0, 0)
	}
}

func (v *MainView) save(m *Module) {
	s := m.Store
	b := s.Current()
	err := s.Save(b.ID())
	if errors.Is(err, editor.ErrNoName) {
		name := AskString(m, "Save As")
		if name == "" {
			return
		}
		err = s.SaveAs(b.ID(), name)
	}
	if err != nil {
		m.SendError("Menu", err)
		return
	}
	m.SendMsg("Menu", fmt.Sprintf("File %q Saved", b.Name()))
}

// find starts a search, or replaces the selected match when a search is
// already under way.
func (v *MainView) find(m *Module) {
	w := v.window
	if w.GetMode() == editor.ModeSearch {
		text := AskString(m, fmt.Sprintf("Replace %q with", w.GetQuery()))
		if text == "" {
			w.ExitSearch()
			m.SendMsg("Menu", "Return to Normal Mode")
			return
		}
		query := w.GetQuery()
		n := w.Replace(text)
		m.SendMsg("Menu", fmt.Sprintf("Replace %q with %q, %d Left", query, text, n))
		return
	}
	query := AskString(m, "Search for")
	if query == "" {
		return
	}
	if w.Search(query) == 0 {
		m.SendMsg("Menu", "Can't Find String")
		return
	}
	m.SendMsg("Menu", fmt.Sprintf("Search for String %q at Index %d", query, w.GetMatchIndex()))
}

func (v *MainView) Draw(m *Module) {
	v.Fill(m)
	w := v.window
	size := v.Size(m.Term)
	gutter := m.gutter(size.Cols)
	cursor := w.GetCursor()
	var selected *editor.Position
	if w.GetMode() == editor.ModeSearch && len(w.GetMatches()) > 0 {
		p := w.GetMatches()[w.GetMatchIndex()]
		selected = &p
	}
	queryLength := len([]rune(w.GetQuery()))
	for _, segment := range w.Layout() {
		bg := v.bg
		if segment.Line == cursor.Line {
			bg = ColorLine
		}
		if gutter > 0 {
			number := ""
			if segment.Start == 0 {
				number = strconv.Itoa(segment.Line + 1)
			}
			label := fmt.Sprintf("%*s│", gutter-1, number)
			v.Print(m, 0, segment.Row, label, ColorGutter, bg)
		}
		for i, c := range segment.Text {
			col := segment.Start + i
			cellBG := bg
			if selected != nil && segment.Line == selected.Line && col >= selected.Col && col < selected.Col+queryLength {
				cellBG = ColorMatch
			}
			if c == '\r' {
				c = '↵'
			}
			v.Print(m, gutter+i, segment.Row, string(c), ColorText, cellBG)
		}
		for i := len(segment.Text); gutter+i < size.Cols && segment.Line == cursor.Line; i++ {
			v.Print(m, gutter+i, segment.Row, " ", ColorText, bg)
		}
	}
}

func (v *MainView) SetCursor(m *Module) {
	w := v.window
	size := v.Size(m.Term)
	row := w.CursorRow()
	if row < 0 || row >= size.Rows {
		m.Display.HideCursor()
		return
	}
	origin := v.Start(m.Term)
	m.Display.SetCursor(types.Point{Row: origin.Row + row, Col: origin.Col + m.gutter(size.Cols) + w.CursorCol()})
}
