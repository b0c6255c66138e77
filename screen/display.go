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

	"github.com/nsf/termbox-go"

	"github.com/timburks/tged/types"
)

// A Terminal draws through termbox.
type Terminal struct{}

// OpenTerminal takes over the terminal.
func OpenTerminal() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("unable to open terminal: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	return &Terminal{}, nil
}

func (t *Terminal) Close() {
	termbox.Close()
}

func (t *Terminal) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *Terminal) SetCell(col, row int, c rune, fg, bg types.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (t *Terminal) SetCursor(p types.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (t *Terminal) HideCursor() {
	termbox.HideCursor()
}

func (t *Terminal) Flush() error {
	return termbox.Flush()
}

func (t *Terminal) Size() types.Term {
	w, h := termbox.Size()
	return types.Term{Width: w, Height: h}
}
