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
	"github.com/mattn/go-runewidth"

	"github.com/timburks/tged/types"
)

// A Panel is one named region of the screen.
type Panel interface {
	Base() *View
	Init(m *Module)
	// Update reacts to the state of the module; it runs every cycle.
	Update(m *Module)
	HandleKey(m *Module, ev types.Event)
	Draw(m *Module)
	SetCursor(m *Module)
}

// ViewConfig describes a panel. Corners use the signed shorthand of types.At:
// {1, 1} is the top left cell and {-1, -1} the bottom right edge.
type ViewConfig struct {
	Name   string
	Start  [2]int // x, y
	End    [2]int // x, y, exclusive
	Silent bool   // never focused by cycling
	Hidden bool   // not drawn until shown
	Lock   bool   // keeps focus while focused
	FG, BG types.Color
}

// A View holds what every panel has in common.
type View struct {
	id     int
	name   string
	start  [2]types.Pos
	end    [2]types.Pos
	show   bool
	silent bool
	lock   bool
	fg, bg types.Color
}

func newView(c ViewConfig) View {
	return View{
		name:   c.Name,
		start:  [2]types.Pos{types.At(c.Start[0]), types.At(c.Start[1])},
		end:    [2]types.Pos{types.At(c.End[0]), types.At(c.End[1])},
		show:   !c.Hidden,
		silent: c.Silent,
		lock:   c.Lock,
		fg:     c.FG,
		bg:     c.BG,
	}
}

func (v *View) Base() *View {
	return v
}

func (v *View) ID() int {
	return v.id
}

func (v *View) Name() string {
	return v.name
}

func (v *View) Shown() bool {
	return v.show
}

func (v *View) SetShown(show bool) {
	v.show = show
}

func (v *View) Silent() bool {
	return v.silent
}

func (v *View) Locked() bool {
	return v.lock
}

// Start is the top left cell for the current terminal.
func (v *View) Start(t types.Term) types.Point {
	return types.Point{Col: v.start[0].Resolve(t.Width), Row: v.start[1].Resolve(t.Height)}
}

// End is the cell just past the bottom right corner.
func (v *View) End(t types.Term) types.Point {
	return types.Point{Col: v.end[0].Resolve(t.Width), Row: v.end[1].Resolve(t.Height)}
}

func (v *View) Size(t types.Term) types.Size {
	s, e := v.Start(t), v.End(t)
	size := types.Size{Rows: e.Row - s.Row, Cols: e.Col - s.Col}
	if size.Rows < 0 {
		size.Rows = 0
	}
	if size.Cols < 0 {
		size.Cols = 0
	}
	return size
}

// Resize moves the corners in screen direction. An axis that would end up
// empty or inverted is left as it was. It reports whether anything moved.
func (v *View) Resize(dxs, dys, dxe, dye int, t types.Term) bool {
	extent := [2]int{t.Width, t.Height}
	deltas := [2][2]int{{dxs, dxe}, {dys, dye}}
	moved := false
	for axis := 0; axis < 2; axis++ {
		start := v.start[axis].Add(deltas[axis][0])
		end := v.end[axis].Add(deltas[axis][1])
		if start.Resolve(extent[axis]) >= end.Resolve(extent[axis]) {
			continue
		}
		if start != v.start[axis] || end != v.end[axis] {
			moved = true
		}
		v.start[axis], v.end[axis] = start, end
	}
	return moved
}

// Fill paints the whole region with the background color.
func (v *View) Fill(m *Module) {
	fill(m.Display, v.Start(m.Term), v.Size(m.Term), v.bg)
}

// Print writes text at a cell relative to the view, clipped to the view.
// It returns the number of columns used.
func (v *View) Print(m *Module, col, row int, text string, fg, bg types.Color) int {
	size := v.Size(m.Term)
	if row < 0 || row >= size.Rows || col >= size.Cols {
		return 0
	}
	origin := v.Start(m.Term)
	return printText(m.Display, origin.Col+col, origin.Row+row, size.Cols-col, text, fg, bg)
}

func fill(d types.Display, origin types.Point, size types.Size, bg types.Color) {
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			d.SetCell(origin.Col+col, origin.Row+row, ' ', ColorText, bg)
		}
	}
}

// printText writes at most width columns of text. Wide characters that would
// straddle the limit are dropped.
func printText(d types.Display, col, row, width int, text string, fg, bg types.Color) int {
	used := 0
	for _, c := range text {
		w := runewidth.RuneWidth(c)
		if w == 0 {
			continue
		}
		if used+w > width {
			break
		}
		d.SetCell(col+used, row, c, fg, bg)
		used += w
	}
	return used
}

// box draws a border around a region with the title centred in the top edge.
func box(d types.Display, origin types.Point, size types.Size, title string, fg, bg types.Color) {
	if size.Rows < 2 || size.Cols < 2 {
		return
	}
	right := origin.Col + size.Cols - 1
	bottom := origin.Row + size.Rows - 1
	for col := origin.Col + 1; col < right; col++ {
		d.SetCell(col, origin.Row, '─', fg, bg)
		d.SetCell(col, bottom, '─', fg, bg)
	}
	for row := origin.Row + 1; row < bottom; row++ {
		d.SetCell(origin.Col, row, '│', fg, bg)
		d.SetCell(right, row, '│', fg, bg)
	}
	d.SetCell(origin.Col, origin.Row, '┌', fg, bg)
	d.SetCell(right, origin.Row, '┐', fg, bg)
	d.SetCell(origin.Col, bottom, '└', fg, bg)
	d.SetCell(right, bottom, '┘', fg, bg)
	if title == "" {
		return
	}
	title = runewidth.Truncate(" "+title+" ", size.Cols-2, "…")
	col := origin.Col + (size.Cols-runewidth.StringWidth(title))/2
	printText(d, col, origin.Row, size.Cols-2, title, fg, bg)
}
