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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/timburks/tged/types"
)

const noName = "[No Name]"

// The TopBar shows one tab per buffer.
type TopBar struct {
	View
}

func NewTopBar() *TopBar {
	return &TopBar{View: newView(ViewConfig{
		Name:   "TopBar",
		Start:  [2]int{26, 2},
		End:    [2]int{-1, 3},
		Silent: true,
		BG:     ColorBar,
	})}
}

func (v *TopBar) Init(m *Module) {}

func (v *TopBar) Update(m *Module) {}

func (v *TopBar) HandleKey(m *Module, ev types.Event) {}

// Tab is the label of a buffer in the tab bar.
func Tab(id int, name string, dirty bool) string {
	if name == "" {
		name = noName
	}
	marker := " "
	if dirty {
		marker = "*"
	}
	return fmt.Sprintf("  %d. %s  %s ", id, name, marker)
}

func (v *TopBar) Draw(m *Module) {
	v.Fill(m)
	width := v.Size(m.Term).Cols
	col := 0
	for _, id := range m.Store.IDs() {
		if col >= width {
			break
		}
		b := m.Store.Get(id)
		bg := ColorTab
		if id == m.Store.CurrentID() {
			bg = ColorCurrent
		}
		label := runewidth.Truncate(Tab(id, b.Name(), b.Dirty()), width-col, "…")
		col += v.Print(m, col, 0, label, ColorBarText, bg)
		col++
	}
}

func (v *TopBar) SetCursor(m *Module) {
	m.Display.HideCursor()
}

// The BottomBar shows the focused panel and the current file.
type BottomBar struct {
	View
	main *MainView
}

func NewBottomBar(main *MainView) *BottomBar {
	return &BottomBar{main: main, View: newView(ViewConfig{
		Name:   "BottomBar",
		Start:  [2]int{1, -2},
		End:    [2]int{-1, -1},
		Silent: true,
		BG:     ColorBar,
	})}
}

func (v *BottomBar) Init(m *Module) {}

func (v *BottomBar) Update(m *Module) {}

func (v *BottomBar) HandleKey(m *Module, ev types.Event) {}

// Status returns the left and right halves of the bottom bar.
func (v *BottomBar) Status(m *Module) (string, string) {
	b := m.Store.Current()
	name := b.Name()
	if name == "" {
		name = "[New File]"
	}
	left := fmt.Sprintf(" %s | %s", m.Focus, name)
	if b.Dirty() {
		left += " [+]"
	}
	cursor := v.main.Window().GetCursor()
	right := fmt.Sprintf("%d:%d ", cursor.Line+1, cursor.Col+1)
	if disk := b.Disk(); disk.Exists {
		right = humanize.Bytes(uint64(disk.Size)) + "  " + right
	} else if b.Backed() {
		right = "[New File]  " + right
	}
	return left, right
}

func (v *BottomBar) Draw(m *Module) {
	v.Fill(m)
	width := v.Size(m.Term).Cols
	left, right := v.Status(m)
	rightWidth := runewidth.StringWidth(right)
	if rightWidth > width {
		right = ""
		rightWidth = 0
	}
	left = runewidth.Truncate(left, width-rightWidth, "…")
	v.Print(m, 0, 0, runewidth.FillRight(left, width-rightWidth)+right, ColorBarText, v.bg)
}

func (v *BottomBar) SetCursor(m *Module) {
	m.Display.HideCursor()
}
