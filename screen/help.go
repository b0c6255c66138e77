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

import "github.com/timburks/tged/types"

var helpText = []string{
	"Esc          quit, offering to save changed files",
	"F1           show or hide this help",
	"F2           edit text",
	"F3           file tree",
	"F4           command bar",
	"F5           next panel",
	"F6 / F7      next / previous file",
	"F8           change to file by number",
	"Ctrl+S       save",
	"Ctrl+F       search, or replace the selected match",
	"Alt+Left     widen the text area",
	"Alt+Right    narrow the text area",
	"",
	"In search mode the arrows and PgUp/PgDn move between",
	"matches, Home/End go to the first and last match,",
	"Enter or an empty replacement stops.",
	"",
	"Commands:  quit  save  save as:NAME  save all:y|n",
	"           open:PATH  buffer:NAME  fmt  NUMBER  (lisp)",
}

// Help is shown only while it has focus.
type Help struct {
	View
}

func NewHelp() *Help {
	return &Help{View: newView(ViewConfig{
		Name:   "Help",
		Start:  [2]int{8, 4},
		End:    [2]int{-8, -4},
		Hidden: true,
		Lock:   true,
		BG:     ColorDialog,
	})}
}

func (v *Help) Init(m *Module) {}

func (v *Help) Update(m *Module) {
	v.show = m.Focus == v.name
}

func (v *Help) HandleKey(m *Module, ev types.Event) {}

func (v *Help) Draw(m *Module) {
	v.Fill(m)
	origin := v.Start(m.Term)
	size := v.Size(m.Term)
	box(m.Display, origin, size, "Help", ColorBarText, v.bg)
	for i, line := range helpText {
		if i+1 >= size.Rows-1 {
			break
		}
		if size.Cols > 4 {
			printText(m.Display, origin.Col+2, origin.Row+1+i, size.Cols-4, line, ColorBarText, v.bg)
		}
	}
}

func (v *Help) SetCursor(m *Module) {
	m.Display.HideCursor()
}
