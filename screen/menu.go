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

	"github.com/mattn/go-runewidth"

	"github.com/timburks/tged/commander"
	"github.com/timburks/tged/editor"
	"github.com/timburks/tged/types"
)

const menuHint = "Press <F1> for help"

const menuPrompt = ": "

// The Menu is the command bar on the top row. It also shows the status
// messages other panels send it.
type Menu struct {
	View
	main      *MainView
	commander *commander.Commander
	input     []rune
	cursor    int
	message   string
	failed    bool
}

func NewMenu(main *MainView) *Menu {
	return &Menu{main: main, View: newView(ViewConfig{
		Name:  "Menu",
		Start: [2]int{1, 1},
		End:   [2]int{-1, 2},
		BG:    ColorBar,
	})}
}

// menuEditor is what the commander acts on.
type menuEditor struct {
	m    *Module
	main *MainView
}

func (e *menuEditor) Store() *editor.Store {
	return e.m.Store
}

func (e *menuEditor) Window() *editor.Window {
	return e.main.Window()
}

func (e *menuEditor) Switch(id int) error {
	return e.main.Switch(e.m, id)
}

func (e *menuEditor) Quit() {
	e.m.Quit()
}

func (v *Menu) Init(m *Module) {
	v.commander = commander.NewCommander(&menuEditor{m: m, main: v.main})
}

func (v *Menu) Update(m *Module) {
	v.message, v.failed = "", false
	if msg, ok := m.recv(v.name); ok {
		v.message, v.failed = msg.text, msg.failed
	}
}

func (v *Menu) HandleKey(m *Module, ev types.Event) {
	switch ev.Key {
	case types.KeyChar:
		v.input = append(v.input[:v.cursor], append([]rune{ev.Ch}, v.input[v.cursor:]...)...)
		v.cursor++
	case types.KeyBackspace:
		if v.cursor > 0 {
			v.input = append(v.input[:v.cursor-1], v.input[v.cursor:]...)
			v.cursor--
		}
	case types.KeyDelete:
		if v.cursor < len(v.input) {
			v.input = append(v.input[:v.cursor], v.input[v.cursor+1:]...)
		}
	case types.KeyArrowLeft:
		if v.cursor > 0 {
			v.cursor--
		}
	case types.KeyArrowRight:
		if v.cursor < len(v.input) {
			v.cursor++
		}
	case types.KeyHome:
		v.cursor = 0
	case types.KeyEnd:
		v.cursor = len(v.input)
	case types.KeyEnter:
		text := string(v.input)
		v.input = v.input[:0]
		v.cursor = 0
		v.perform(m, text)
	}
}

func (v *Menu) perform(m *Module, text string) {
	message, err := v.commander.Perform(text)
	if errors.Is(err, editor.ErrNoName) {
		name := AskString(m, "Save As")
		if name == "" {
			return
		}
		message, err = v.commander.Perform("save as:" + name)
	}
	if err != nil {
		m.SendError(v.name, err)
		return
	}
	if message != "" {
		m.SendMsg(v.name, message)
	}
}

func (v *Menu) Draw(m *Module) {
	v.Fill(m)
	focused := m.Focus == v.name
	switch {
	case focused && (len(v.input) > 0 || v.message == ""):
		col := v.Print(m, 0, 0, menuPrompt, ColorHint, v.bg)
		v.Print(m, col, 0, string(v.input[v.firstVisible(m):]), ColorBarText, v.bg)
	case v.message != "" && v.failed:
		v.Print(m, 0, 0, v.message, ColorError, v.bg)
	case v.message != "":
		v.Print(m, 0, 0, v.message, ColorBarText, v.bg)
	default:
		v.Print(m, 0, 0, menuHint, ColorHint, v.bg)
	}
}

func (v *Menu) firstVisible(m *Module) int {
	width := v.Size(m.Term).Cols - runewidth.StringWidth(menuPrompt)
	first := 0
	for first < v.cursor && runewidth.StringWidth(string(v.input[first:v.cursor])) >= width {
		first++
	}
	return first
}

func (v *Menu) SetCursor(m *Module) {
	origin := v.Start(m.Term)
	col := runewidth.StringWidth(menuPrompt) + runewidth.StringWidth(string(v.input[v.firstVisible(m):v.cursor]))
	m.Display.SetCursor(types.Point{Row: origin.Row, Col: origin.Col + col})
}
