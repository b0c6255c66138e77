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
	"strings"

	"github.com/timburks/tged/logging"
	"github.com/timburks/tged/types"
)

// The Screen owns the panels and runs one cycle per key.
type Screen struct {
	panels  []Panel // panel ids start at 1
	focus   int     // id of the focused panel
	back    int     // focus to restore when help closes
	main    *MainView
	running bool
	err     error
}

func NewScreen() *Screen {
	return &Screen{running: true}
}

// Build registers the editor's panels and focuses the main view.
func Build(m *Module) *Screen {
	s := NewScreen()
	main := NewMainView()
	s.main = main
	s.Register(m, NewMenu(main))
	s.Register(m, NewTopBar())
	s.Register(m, NewFileTree())
	s.Register(m, main)
	s.Register(m, NewBottomBar(main))
	s.Register(m, NewHelp())
	s.focusOn(m, main.ID())
	return s
}

// Register adds a panel and returns its id.
func (s *Screen) Register(m *Module, p Panel) int {
	v := p.Base()
	v.id = len(s.panels) + 1
	s.panels = append(s.panels, p)
	p.Init(m)
	if s.focus == 0 {
		s.focusOn(m, v.id)
	}
	return v.id
}

// Panel returns the panel called name, or nil.
func (s *Screen) Panel(name string) Panel {
	for _, p := range s.panels {
		if p.Base().name == name {
			return p
		}
	}
	return nil
}

func (s *Screen) Focused() Panel {
	if s.focus < 1 || s.focus > len(s.panels) {
		return nil
	}
	return s.panels[s.focus-1]
}

func (s *Screen) Running() bool {
	return s.running
}

// Err is the error that ended the session, if any.
func (s *Screen) Err() error {
	return s.err
}

func (s *Screen) focusOn(m *Module, id int) {
	if id < 1 || id > len(s.panels) {
		return
	}
	s.focus = id
	v := s.panels[id-1].Base()
	v.SetShown(true)
	m.Focus = v.Name()
}

func (s *Screen) locked() bool {
	p := s.Focused()
	return p != nil && p.Base().Locked()
}

// shift returns the id of the next panel that can take focus. Silent and
// hidden panels are skipped; if there is none the focus stays put.
func (s *Screen) shift() int {
	n := len(s.panels)
	next := s.focus
	for i := 0; i < n; i++ {
		next = next%n + 1
		v := s.panels[next-1].Base()
		if !v.Silent() && v.Shown() {
			return next
		}
	}
	return s.focus
}

func (s *Screen) toggleHelp(m *Module) {
	help := s.Panel("Help")
	if help == nil {
		return
	}
	v := help.Base()
	if s.focus == v.ID() {
		v.SetShown(false)
		s.focusOn(m, s.back)
		return
	}
	s.back = s.focus
	s.focusOn(m, v.ID())
}

// Interact runs one full cycle for a key.
func (s *Screen) Interact(m *Module, ev types.Event) {
	m.beginCycle()
	logging.Trace("key", ev)
	switch {
	case ev.Key == types.KeyEsc && !ev.Alt:
		s.confirmQuit(m)
		if !s.running {
			return
		}
	case ev.Key == types.KeyF1:
		s.toggleHelp(m)
	case ev.Key == types.KeyF2:
		m.Shift("MainView")
	case ev.Key == types.KeyF3:
		m.Shift("FileTree")
	case ev.Key == types.KeyF4:
		m.Shift("Menu")
	case ev.Key == types.KeyF5:
		if !s.locked() {
			s.focusOn(m, s.shift())
		}
	case ev.Key == types.KeyF6 || ev.Key == types.KeyF7 || ev.Key == types.KeyF8:
		if s.main != nil {
			s.main.HandleKey(m, ev)
		}
	default:
		if p := s.Focused(); p != nil {
			p.HandleKey(m, ev)
		}
	}
	for _, id := range m.Store.Sync() {
		m.SendMsg("Menu", fmt.Sprintf("File No.%d Reloaded", id))
	}
	s.drain(m)
	if s.running {
		s.Redraw(m)
	}
}

// Resized replaces the terminal dimensions and redraws.
func (s *Screen) Resized(m *Module, t types.Term) {
	m.beginCycle()
	m.Term = t
	s.Redraw(m)
}

func (s *Screen) drain(m *Module) {
	for _, op := range m.takeOps() {
		switch op.Kind {
		case OpShift:
			if p := s.Panel(op.Name); p != nil && !s.locked() {
				s.focusOn(m, p.Base().id)
			}
		case OpResize:
			if p := s.Panel(op.Name); p != nil {
				p.Base().Resize(op.Delta[0], op.Delta[1], op.Delta[2], op.Delta[3], m.Term)
			}
		case OpQuit:
			s.running = false
		}
	}
}

// confirmQuit asks before ending the session, offering to save changes.
func (s *Screen) confirmQuit(m *Module) {
	if m.Store.AnyDirty() {
		answer := AskString(m, "Save all? (y/n)")
		if !isNo(answer) {
			s.err = m.Store.SaveAll()
		}
		s.running = false
		return
	}
	if isNo(AskString(m, "Quit? (y/n)")) {
		return
	}
	s.running = false
}

func isNo(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "n")
}

// Redraw updates every panel, draws the shown ones and leaves the
// terminal cursor in the focused panel.
func (s *Screen) Redraw(m *Module) {
	focused := s.Focused()
	if focused == nil {
		return
	}
	m.Display.Clear()
	focused.Update(m)
	for _, p := range s.panels {
		if p == focused {
			continue
		}
		p.Update(m)
		if p.Base().show {
			p.Draw(m)
		}
	}
	focused.Draw(m)
	focused.SetCursor(m)
	if err := m.Display.Flush(); err != nil {
		logging.Error(err)
	}
}

// Run draws the screen and handles events until the session ends.
func (s *Screen) Run(m *Module, resizes <-chan types.Term) error {
	s.Redraw(m)
	for s.running {
		select {
		case ev, ok := <-m.Keys:
			if !ok {
				return s.err
			}
			s.Interact(m, ev)
		case t := <-resizes:
			s.Resized(m, t)
		}
	}
	return s.err
}
