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
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/tged/logging"
	"github.com/timburks/tged/types"
)

// An entry is one file or directory in the tree.
type entry struct {
	path     string
	name     string
	depth    int
	dir      bool
	expanded bool
	loaded   bool
	children []*entry
}

// The FileTree lists the working directory down the left side.
type FileTree struct {
	View
	root     string
	modTime  time.Time
	entries  []*entry // top level
	visible  []*entry // flattened, in display order
	selected int
	scroll   int
}

func NewFileTree() *FileTree {
	return &FileTree{View: newView(ViewConfig{
		Name:  "FileTree",
		Start: [2]int{1, 2},
		End:   [2]int{26, -2},
		BG:    ColorBar,
	})}
}

func (v *FileTree) Init(m *Module) {
	v.root = m.Store.Dir()
	v.reload()
}

// readEntries lists a directory, directories first, each group by name.
func readEntries(dir string, depth int) []*entry {
	items, err := os.ReadDir(dir)
	if err != nil {
		logging.Printf("file tree: %v", err)
		return nil
	}
	entries := make([]*entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, &entry{
			path:  filepath.Join(dir, item.Name()),
			name:  item.Name(),
			depth: depth,
			dir:   item.IsDir(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].dir != entries[j].dir {
			return entries[i].dir
		}
		return entries[i].name < entries[j].name
	})
	return entries
}

// reload reads the root again, keeping expanded directories open.
func (v *FileTree) reload() {
	expanded := make(map[string]bool)
	var walk func([]*entry)
	walk = func(entries []*entry) {
		for _, e := range entries {
			if e.expanded {
				expanded[e.path] = true
				walk(e.children)
			}
		}
	}
	walk(v.entries)
	if info, err := os.Stat(v.root); err == nil {
		v.modTime = info.ModTime()
	}
	v.entries = readEntries(v.root, 0)
	var reopen func([]*entry)
	reopen = func(entries []*entry) {
		for _, e := range entries {
			if e.dir && expanded[e.path] {
				e.toggle()
				reopen(e.children)
			}
		}
	}
	reopen(v.entries)
	v.flatten()
}

func (e *entry) toggle() {
	if !e.loaded {
		e.children = readEntries(e.path, e.depth+1)
		e.loaded = true
	}
	e.expanded = !e.expanded
}

func (v *FileTree) flatten() {
	v.visible = v.visible[:0]
	var add func([]*entry)
	add = func(entries []*entry) {
		for _, e := range entries {
			v.visible = append(v.visible, e)
			if e.expanded {
				add(e.children)
			}
		}
	}
	add(v.entries)
	if v.selected >= len(v.visible) {
		v.selected = len(v.visible) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

func (v *FileTree) Update(m *Module) {
	if info, err := os.Stat(v.root); err == nil && !info.ModTime().Equal(v.modTime) {
		v.reload()
	}
	rows := v.Size(m.Term).Rows
	if v.scroll > v.selected {
		v.scroll = v.selected
	}
	for rows > 0 && v.selected-v.scroll >= rows {
		v.scroll++
	}
}

func (v *FileTree) HandleKey(m *Module, ev types.Event) {
	rows := v.Size(m.Term).Rows
	switch ev.Key {
	case types.KeyArrowUp:
		if v.selected > 0 {
			if v.scroll != 0 && v.selected-v.scroll < scrollMargin {
				v.scroll--
			}
			v.selected--
		}
	case types.KeyArrowDown:
		if v.selected < len(v.visible)-1 {
			if v.selected-v.scroll+scrollMargin > rows {
				v.scroll++
			}
			v.selected++
		}
	case types.KeyHome:
		v.selected = 0
	case types.KeyEnd:
		v.selected = len(v.visible) - 1
	case types.KeyEnter:
		v.activate(m)
	}
}

const scrollMargin = 4

func (v *FileTree) Selected() string {
	if v.selected < len(v.visible) {
		return v.visible[v.selected].path
	}
	return ""
}

// activate toggles a directory or opens a file in the main view.
func (v *FileTree) activate(m *Module) {
	if v.selected >= len(v.visible) {
		return
	}
	e := v.visible[v.selected]
	if e.dir {
		e.toggle()
		v.flatten()
		return
	}
	id, err := m.Store.Open(e.path)
	if err != nil {
		m.SendError("Menu", err)
		return
	}
	m.SendMsg("MainView", strconv.Itoa(id))
	m.Shift("MainView")
}

func (v *FileTree) Draw(m *Module) {
	v.Fill(m)
	size := v.Size(m.Term)
	focused := m.Focus == v.name
	for row := 0; row < size.Rows && v.scroll+row < len(v.visible); row++ {
		i := v.scroll + row
		e := v.visible[i]
		fg, bg := ColorBarText, v.bg
		label := strings.Repeat("  ", e.depth)
		if e.dir {
			fg = ColorDirectory
			if e.expanded {
				label += "▾ " + e.name + "/"
			} else {
				label += "▸ " + e.name + "/"
			}
		} else {
			label += "  " + e.name
		}
		if i == v.selected {
			bg = ColorSelection
			if focused {
				bg = ColorCurrent
			}
		}
		v.Print(m, 0, row, runewidth.FillRight(runewidth.Truncate(label, size.Cols, "…"), size.Cols), fg, bg)
	}
}

func (v *FileTree) SetCursor(m *Module) {
	m.Display.HideCursor()
}
