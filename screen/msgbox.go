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
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/tged/logging"
	"github.com/timburks/tged/types"
)

const msgBoxMinWidth = 40

// A MsgBox is a modal one-line prompt. While it is open it reads keys
// straight from the module, so nothing else runs until it closes.
type MsgBox struct {
	title  string
	input  []rune
	cursor int
}

func newMsgBox(title string) *MsgBox {
	return &MsgBox{title: title}
}

func (b *MsgBox) geometry(t types.Term) (types.Point, types.Size) {
	size := types.Size{Rows: 3, Cols: runewidth.StringWidth(b.title) + 6}
	if size.Cols < msgBoxMinWidth {
		size.Cols = msgBoxMinWidth
	}
	if size.Cols > t.Width-2 {
		size.Cols = t.Width - 2
	}
	if size.Cols < 4 {
		size.Cols = 4
	}
	origin := types.Point{Col: (t.Width - size.Cols) / 2, Row: (t.Height - size.Rows) / 2}
	return origin, size
}

func (b *MsgBox) Draw(m *Module) {
	origin, size := b.geometry(m.Term)
	fill(m.Display, origin, size, ColorDialog)
	box(m.Display, origin, size, b.title, ColorBarText, ColorDialog)
	width := size.Cols - 2
	first := b.firstVisible(width)
	printText(m.Display, origin.Col+1, origin.Row+1, width, string(b.input[first:]), ColorText, ColorDialog)
}

func (b *MsgBox) SetCursor(m *Module) {
	origin, size := b.geometry(m.Term)
	first := b.firstVisible(size.Cols - 2)
	col := runewidth.StringWidth(string(b.input[first:b.cursor]))
	m.Display.SetCursor(types.Point{Row: origin.Row + 1, Col: origin.Col + 1 + col})
}

// firstVisible keeps the cursor inside the input line.
func (b *MsgBox) firstVisible(width int) int {
	first := 0
	for first < b.cursor && runewidth.StringWidth(string(b.input[first:b.cursor])) >= width {
		first++
	}
	return first
}

// HandleKey edits the input. It returns true when the prompt is finished.
func (b *MsgBox) HandleKey(ev types.Event) bool {
	switch ev.Key {
	case types.KeyEnter:
		return true
	case types.KeyEsc:
		b.input = b.input[:0]
		b.cursor = 0
		return true
	case types.KeyChar:
		b.input = append(b.input[:b.cursor], append([]rune{ev.Ch}, b.input[b.cursor:]...)...)
		b.cursor++
	case types.KeyTab:
		b.input = append(b.input[:b.cursor], append([]rune{'\t'}, b.input[b.cursor:]...)...)
		b.cursor++
	case types.KeyBackspace:
		if b.cursor > 0 {
			b.input = append(b.input[:b.cursor-1], b.input[b.cursor:]...)
			b.cursor--
		}
	case types.KeyDelete:
		if b.cursor < len(b.input) {
			b.input = append(b.input[:b.cursor], b.input[b.cursor+1:]...)
		}
	case types.KeyArrowLeft:
		if b.cursor > 0 {
			b.cursor--
		}
	case types.KeyArrowRight:
		if b.cursor < len(b.input) {
			b.cursor++
		}
	case types.KeyHome:
		b.cursor = 0
	case types.KeyEnd:
		b.cursor = len(b.input)
	}
	return false
}

// wait shows the prompt until Enter or Esc and returns the text typed.
// Esc and a closed key channel give an empty answer.
func (b *MsgBox) wait(m *Module) string {
	for {
		b.Draw(m)
		b.SetCursor(m)
		if err := m.Display.Flush(); err != nil {
			logging.Error(err)
		}
		ev, ok := <-m.Keys
		if !ok {
			return ""
		}
		if b.HandleKey(ev) {
			return string(b.input)
		}
	}
}

// Ask prompts with title and converts the answer with parse.
// On a parse failure the zero value is returned along with the error.
func Ask[T any](m *Module, title string, parse func(string) (T, error)) (T, error) {
	text := newMsgBox(title).wait(m)
	value, err := parse(text)
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func AskString(m *Module, title string) string {
	text, _ := Ask(m, title, func(s string) (string, error) { return s, nil })
	return text
}

func AskInt(m *Module, title string) (int, error) {
	return Ask(m, title, func(s string) (int, error) { return strconv.Atoi(strings.TrimSpace(s)) })
}
