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
	"github.com/timburks/tged/editor"
	"github.com/timburks/tged/logging"
	"github.com/timburks/tged/types"
)

// Settings are the user preferences panels read while drawing.
type Settings struct {
	LineNumbers bool
}

// GutterWidth is the number of columns taken by line numbers and their separator.
const GutterWidth = 5

// Deferred operation kinds
const (
	OpShift = iota
	OpResize
	OpQuit
)

// An Op is a layout or focus change requested during a cycle and applied
// after input handling.
type Op struct {
	Kind  int
	Name  string
	Delta [4]int // start x, start y, end x, end y
}

// The Module is the context shared by the compositor and every panel.
type Module struct {
	Term     types.Term
	Store    *editor.Store
	Settings Settings
	Keys     <-chan types.Event
	Display  types.Display
	Focus    string // name of the focused panel

	mailboxes map[string][]message
	delivered map[string]bool
	ops       []Op
}

func NewModule(store *editor.Store, display types.Display, keys <-chan types.Event, settings Settings) *Module {
	return &Module{
		Term:      display.Size(),
		Store:     store,
		Settings:  settings,
		Keys:      keys,
		Display:   display,
		mailboxes: make(map[string][]message),
		delivered: make(map[string]bool),
	}
}

type message struct {
	text   string
	failed bool
}

// SendMsg queues a message for the panel called to.
func (m *Module) SendMsg(to, msg string) {
	logging.Trace("message", map[string]string{"to": to, "msg": msg})
	m.mailboxes[to] = append(m.mailboxes[to], message{text: msg})
}

// SendError logs err and queues it for the panel called to.
func (m *Module) SendError(to string, err error) {
	logging.Error(err)
	m.mailboxes[to] = append(m.mailboxes[to], message{text: err.Error(), failed: true})
}

// RecvMsg takes the oldest message for name. Each mailbox gives out at
// most one message per cycle.
func (m *Module) RecvMsg(name string) (string, bool) {
	msg, ok := m.recv(name)
	return msg.text, ok
}

func (m *Module) recv(name string) (message, bool) {
	queue := m.mailboxes[name]
	if m.delivered[name] || len(queue) == 0 {
		return message{}, false
	}
	m.delivered[name] = true
	m.mailboxes[name] = queue[1:]
	return queue[0], true
}

func (m *Module) Shift(name string) {
	m.ops = append(m.ops, Op{Kind: OpShift, Name: name})
}

func (m *Module) Resize(name string, dxs, dys, dxe, dye int) {
	m.ops = append(m.ops, Op{Kind: OpResize, Name: name, Delta: [4]int{dxs, dys, dxe, dye}})
}

func (m *Module) Quit() {
	m.ops = append(m.ops, Op{Kind: OpQuit})
}

func (m *Module) beginCycle() {
	for name := range m.delivered {
		delete(m.delivered, name)
	}
}

func (m *Module) takeOps() []Op {
	ops := m.ops
	m.ops = nil
	return ops
}

// textWidth is the wrap width of a text area cols wide.
func (m *Module) textWidth(cols int) int {
	if m.Settings.LineNumbers && cols > GutterWidth {
		return cols - GutterWidth
	}
	return cols
}

func (m *Module) gutter(cols int) int {
	return cols - m.textWidth(cols)
}
