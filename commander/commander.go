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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/timburks/tged/editor"
	"github.com/timburks/tged/logging"
)

// Command kinds
const (
	Unknown = iota
	Empty
	Quit
	Save
	SaveAs
	SaveAll
	Open
	Buffer
	Goto
	Format
	Lisp
)

// A Command is one parsed line of the command bar.
type Command struct {
	Kind int
	Arg  string
	Line int // for Goto, 1-based
}

// ErrUnknownCommand is returned for text the command bar does not understand.
var ErrUnknownCommand = errors.New("Unknown Command")

// Parse reads a command bar line. Arguments follow a colon:
// "save as:notes.txt", "save all:y", "open:main.go", "buffer:main".
func Parse(input string) Command {
	text := strings.TrimSpace(input)
	if text == "" {
		return Command{Kind: Empty}
	}
	if strings.HasPrefix(text, "(") {
		return Command{Kind: Lisp, Arg: text}
	}
	if n, err := strconv.Atoi(text); err == nil {
		return Command{Kind: Goto, Line: n}
	}
	name, arg, hasArg := strings.Cut(text, ":")
	name = strings.Join(strings.Fields(name), " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "quit", "q":
		if !hasArg {
			return Command{Kind: Quit}
		}
	case "save", "w":
		if !hasArg {
			return Command{Kind: Save}
		}
	case "save as":
		if arg != "" {
			return Command{Kind: SaveAs, Arg: arg}
		}
	case "save all":
		if arg == "" {
			arg = "y"
		}
		return Command{Kind: SaveAll, Arg: arg}
	case "open":
		if arg != "" {
			return Command{Kind: Open, Arg: arg}
		}
	case "buffer":
		if arg != "" {
			return Command{Kind: Buffer, Arg: arg}
		}
	case "fmt":
		if !hasArg {
			return Command{Kind: Format}
		}
	}
	return Command{Kind: Unknown, Arg: text}
}

// The Editor is what commands act on.
type Editor interface {
	Store() *editor.Store
	Window() *editor.Window
	// Switch shows buffer id in the main view.
	Switch(id int) error
	Quit()
}

// The Commander executes command bar lines against an Editor.
type Commander struct {
	editor Editor
}

func NewCommander(e Editor) *Commander {
	return &Commander{editor: e}
}

// Perform executes one line and returns the status message to show.
// A save of an unnamed buffer returns editor.ErrNoName so the caller can
// ask for a name.
func (c *Commander) Perform(input string) (string, error) {
	command := Parse(input)
	logging.Trace("command", command)
	e := c.editor
	s := e.Store()
	switch command.Kind {
	case Empty:
		return "", nil
	case Quit:
		e.Quit()
		return "", nil
	case Save:
		b := s.Current()
		if err := s.Save(b.ID()); err != nil {
			return "", err
		}
		return fmt.Sprintf("File %q Saved", b.Name()), nil
	case SaveAs:
		b := s.Current()
		if err := s.SaveAs(b.ID(), command.Arg); err != nil {
			return "", err
		}
		return fmt.Sprintf("File %q Saved", b.Name()), nil
	case SaveAll:
		if !strings.EqualFold(command.Arg, "y") {
			return "", nil
		}
		if err := s.SaveAll(); err != nil {
			return "", err
		}
		return "All Files Saved", nil
	case Open:
		id, err := s.Open(command.Arg)
		if err != nil {
			return "", err
		}
		if err := e.Switch(id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Change to File No.%d", id), nil
	case Buffer:
		id, ok := BestBuffer(command.Arg, s)
		if !ok {
			return "", fmt.Errorf("no buffer matches %q", command.Arg)
		}
		if err := e.Switch(id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Change to File No.%d", id), nil
	case Goto:
		w := e.Window()
		w.SetCursor(editor.Position{Line: command.Line - 1})
		w.Reveal()
		return "", nil
	case Format:
		return c.format()
	case Lisp:
		return ParseEval(e, command.Arg)
	}
	return "", ErrUnknownCommand
}

// BestBuffer picks the buffer whose name or id best matches query.
func BestBuffer(query string, s *editor.Store) (int, bool) {
	query = strings.TrimSpace(query)
	ids := s.IDs()
	if n, err := strconv.Atoi(query); err == nil {
		for _, id := range ids {
			if id == n {
				return id, true
			}
		}
		return 0, false
	}
	ranks := fuzzy.RankFindNormalizedFold(query, s.Names())
	if len(ranks) == 0 {
		return 0, false
	}
	sort.Stable(ranks)
	return ids[ranks[0].OriginalIndex], true
}

func (c *Commander) format() (string, error) {
	b := c.editor.Store().Current()
	if !strings.HasSuffix(b.Name(), ".go") {
		return "", fmt.Errorf("fmt only formats Go files")
	}
	out, err := Gofmt(b.Name(), b.Bytes())
	if err != nil {
		return "", err
	}
	w := c.editor.Window()
	cursor := w.GetCursor()
	b.LoadBytes(out)
	w.SetCursor(cursor)
	w.Reveal()
	return fmt.Sprintf("File %q Formatted", b.Name()), nil
}
