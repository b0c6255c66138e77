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
package commander

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/timburks/tged/editor"
	"github.com/timburks/tged/types"
)

type testEditor struct {
	store  *editor.Store
	window *editor.Window
	quit   bool
}

func newTestEditor(dir string) *testEditor {
	s := editor.NewStore(dir)
	s.NewScratch()
	w := editor.NewWindow(s.Current())
	w.SetSize(types.Size{Rows: 10, Cols: 80})
	return &testEditor{store: s, window: w}
}

func (e *testEditor) Store() *editor.Store {
	return e.store
}

func (e *testEditor) Window() *editor.Window {
	return e.window
}

func (e *testEditor) Switch(id int) error {
	view, err := e.store.SwitchTo(id, e.window.ViewState())
	if err != nil {
		return err
	}
	e.window.SetBuffer(e.store.Current(), view)
	return nil
}

func (e *testEditor) Quit() {
	e.quit = true
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		kind  int
		arg   string
	}{
		{"", Empty, ""},
		{"quit", Quit, ""},
		{"  save ", Save, ""},
		{"save as:notes.txt", SaveAs, "notes.txt"},
		{"save  as: notes.txt", SaveAs, "notes.txt"},
		{"save as:", Unknown, "save as:"},
		{"save all:y", SaveAll, "y"},
		{"save all:n", SaveAll, "n"},
		{"save all", SaveAll, "y"},
		{"open:main.go", Open, "main.go"},
		{"buffer:main", Buffer, "main"},
		{"fmt", Format, ""},
		{"(+ 1 2)", Lisp, "(+ 1 2)"},
		{"12", Goto, ""},
		{"frobnicate", Unknown, "frobnicate"},
		{"quit:now", Unknown, "quit:now"},
	}
	for _, c := range cases {
		command := Parse(c.input)
		if command.Kind != c.kind || command.Arg != c.arg {
			t.Errorf("Parse(%q) = %+v, expected kind %d arg %q", c.input, command, c.kind, c.arg)
		}
	}
	if Parse("12").Line != 12 {
		t.Errorf("expected line 12")
	}
}

func TestUnknownCommand(t *testing.T) {
	c := NewCommander(newTestEditor(t.TempDir()))
	if _, err := c.Perform("frobnicate"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestQuit(t *testing.T) {
	e := newTestEditor(t.TempDir())
	NewCommander(e).Perform("quit")
	if !e.quit {
		t.Errorf("quit was not requested")
	}
}

func TestSaveCommands(t *testing.T) {
	dir := t.TempDir()
	e := newTestEditor(dir)
	c := NewCommander(e)
	e.window.InsertString("hello")
	if _, err := c.Perform("save"); !errors.Is(err, editor.ErrNoName) {
		t.Errorf("expected ErrNoName, got %v", err)
	}
	path := filepath.Join(dir, "hello.txt")
	message, err := c.Perform("save as:" + path)
	if err != nil {
		t.Fatal(err)
	}
	if message != `File "hello.txt" Saved` {
		t.Errorf("unexpected message %q", message)
	}
	e.window.InsertString(" again")
	if message, _ := c.Perform("save all:n"); message != "" || !e.store.AnyDirty() {
		t.Errorf("save all:n should do nothing")
	}
	if _, err := c.Perform("save all:y"); err != nil {
		t.Fatal(err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "hello again" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestOpenAndBuffer(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"main.go", "notes.txt"} {
		os.WriteFile(filepath.Join(dir, name), []byte(name), 0644)
	}
	e := newTestEditor(dir)
	c := NewCommander(e)
	if _, err := c.Perform("open:" + filepath.Join(dir, "main.go")); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Perform("open:" + filepath.Join(dir, "notes.txt")); err != nil {
		t.Fatal(err)
	}
	if e.store.Len() != 3 || e.window.GetBuffer().Name() != "notes.txt" {
		t.Fatalf("expected notes.txt shown among 3 buffers")
	}
	message, err := c.Perform("buffer:mai")
	if err != nil {
		t.Fatal(err)
	}
	if e.window.GetBuffer().Name() != "main.go" || message != "Change to File No.2" {
		t.Errorf("fuzzy switch failed: %q %q", e.window.GetBuffer().Name(), message)
	}
	if _, err := c.Perform("buffer:3"); err != nil || e.store.CurrentID() != 3 {
		t.Errorf("numeric switch failed: %v", err)
	}
	if _, err := c.Perform("buffer:zzz"); err == nil {
		t.Errorf("expected no match")
	}
	if _, err := c.Perform("open:" + dir); err == nil {
		t.Errorf("expected an error opening a directory")
	}
}

func TestBestBufferPrefersCloserName(t *testing.T) {
	dir := t.TempDir()
	s := editor.NewStore(dir)
	for _, name := range []string{"screen_test.go", "screen.go"} {
		path := filepath.Join(dir, name)
		os.WriteFile(path, nil, 0644)
		if _, err := s.Open(path); err != nil {
			t.Fatal(err)
		}
	}
	id, ok := BestBuffer("screen.go", s)
	if !ok || s.Get(id).Name() != "screen.go" {
		t.Errorf("expected screen.go, got %d", id)
	}
}

func TestGoto(t *testing.T) {
	e := newTestEditor(t.TempDir())
	for i := 0; i < 5; i++ {
		e.window.SplitLine()
	}
	NewCommander(e).Perform("3")
	if e.window.GetCursor().Line != 2 {
		t.Errorf("expected line index 2, got %d", e.window.GetCursor().Line)
	}
	NewCommander(e).Perform("99")
	if e.window.GetCursor().Line != 5 {
		t.Errorf("expected clamp to the last line, got %d", e.window.GetCursor().Line)
	}
}

func TestFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.go")
	os.WriteFile(path, []byte("package x\nfunc  f( ) {  }\n"), 0644)
	e := newTestEditor(dir)
	c := NewCommander(e)
	if _, err := c.Perform("fmt"); err == nil {
		t.Errorf("formatting an unnamed buffer should fail")
	}
	c.Perform("open:" + path)
	if _, err := c.Perform("fmt"); err != nil {
		t.Fatal(err)
	}
	lines := e.window.GetBuffer().Lines()
	if len(lines) < 3 || lines[2] != "func f() {}" {
		t.Errorf("unexpected formatting %q", lines)
	}
	if !e.window.GetBuffer().Dirty() {
		t.Errorf("formatted buffer should be dirty")
	}
}

func TestLisp(t *testing.T) {
	e := newTestEditor(t.TempDir())
	e.store.NewScratch()
	message, err := NewCommander(e).Perform("(buffer-count)")
	if err != nil {
		t.Fatal(err)
	}
	if message != "2" {
		t.Errorf("expected 2, got %q", message)
	}
}
