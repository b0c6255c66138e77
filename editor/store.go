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
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoName is returned when saving a buffer that has never been named.
var ErrNoName = errors.New("buffer has no file name")

// ErrAlreadyOpen is returned when saving a buffer under the file of
// another open buffer.
var ErrAlreadyOpen = errors.New("file is open in another buffer")

// The Store owns every open buffer.
// There is typically only one store in a tged instance.
type Store struct {
	buffers map[int]*Buffer
	lastID  int    // ids start at 1 and are never reused
	current int    // 0 only while the store is empty
	dir     string // working directory for the file tree
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Store{buffers: make(map[int]*Buffer), dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) register(b *Buffer) {
	s.buffers[b.id] = b
	if s.current == 0 {
		s.current = b.id
	}
}

// NewScratch creates an unbacked, empty buffer.
func (s *Store) NewScratch() int {
	s.lastID++
	b := newBuffer(s.lastID)
	s.register(b)
	return b.id
}

// Open returns the buffer for path, reading the file if it is not already
// open. A file that does not exist yet gives an empty buffer with that name.
func (s *Store) Open(path string) (int, error) {
	canonical, err := canonicalPath(path)
	if err != nil {
		return 0, err
	}
	for _, id := range s.IDs() {
		if s.buffers[id].path == canonical {
			return id, nil
		}
	}
	content, disk, err := readFile(canonical)
	if err != nil {
		return 0, err
	}
	s.lastID++
	b := newBuffer(s.lastID)
	b.path = canonical
	b.LoadBytes(content)
	b.MarkSynced()
	b.disk = disk
	s.register(b)
	return b.id, nil
}

// Save writes a buffer to its file.
func (s *Store) Save(id int) error {
	b, ok := s.buffers[id]
	if !ok {
		return fmt.Errorf("no buffer exists for identifier %d", id)
	}
	if !b.Backed() {
		return ErrNoName
	}
	mode := fs.FileMode(0644)
	if info, err := os.Stat(b.path); err == nil {
		mode = info.Mode().Perm()
	}
	// WriteFile truncates to the new length
	if err := os.WriteFile(b.path, b.Bytes(), mode); err != nil {
		return fmt.Errorf("save %s: %w", b.path, err)
	}
	disk, err := stat(b.path)
	if err != nil {
		return err
	}
	b.disk = disk
	b.MarkSynced()
	return nil
}

// SaveAs names a buffer and writes it.
func (s *Store) SaveAs(id int, path string) error {
	b, ok := s.buffers[id]
	if !ok {
		return fmt.Errorf("no buffer exists for identifier %d", id)
	}
	canonical, err := canonicalPath(path)
	if err != nil {
		return err
	}
	for other, o := range s.buffers {
		if other != id && o.path == canonical {
			return fmt.Errorf("%s: %w (No.%d)", canonical, ErrAlreadyOpen, other)
		}
	}
	previous := b.path
	b.path = canonical
	if err := s.Save(id); err != nil {
		b.path = previous
		return err
	}
	return nil
}

// SaveAll saves every dirty buffer. It keeps going after a failure and
// returns the first error it saw.
func (s *Store) SaveAll() error {
	var first error
	for _, id := range s.IDs() {
		if !s.buffers[id].Dirty() {
			continue
		}
		if err := s.Save(id); err != nil {
			log.Printf("save all: buffer %d: %v", id, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Sync reloads every backed buffer whose file changed on disk and returns
// the ids that were reloaded. Unsaved edits in those buffers are lost.
func (s *Store) Sync() []int {
	reloaded := make([]int, 0)
	for _, id := range s.IDs() {
		b := s.buffers[id]
		if !b.Backed() {
			continue
		}
		disk, err := stat(b.path)
		if err != nil {
			continue
		}
		if disk.Exists == b.disk.Exists && disk.Size == b.disk.Size && disk.ModTime.Equal(b.disk.ModTime) {
			continue
		}
		if !disk.Exists {
			// removed from under us; keep the content so it can be saved again
			b.disk = disk
			continue
		}
		content, disk, err := readFile(b.path)
		if err != nil {
			log.Printf("sync %s: %v", b.path, err)
			continue
		}
		b.LoadBytes(content)
		b.MarkSynced()
		b.disk = disk
		reloaded = append(reloaded, id)
	}
	return reloaded
}

// SwitchTo saves state into the current buffer, makes id current and
// returns the view state saved with it.
func (s *Store) SwitchTo(id int, state ViewState) (ViewState, error) {
	b, ok := s.buffers[id]
	if !ok {
		return state, fmt.Errorf("no buffer exists for identifier %d", id)
	}
	if cur, ok := s.buffers[s.current]; ok {
		cur.view = state
	}
	s.current = id
	return b.view, nil
}

func (s *Store) Next(state ViewState) ViewState {
	return s.step(1, state)
}

func (s *Store) Previous(state ViewState) ViewState {
	return s.step(-1, state)
}

func (s *Store) step(delta int, state ViewState) ViewState {
	ids := s.IDs()
	if len(ids) == 0 {
		return state
	}
	i := sort.SearchInts(ids, s.current)
	next := ids[(i+delta+len(ids))%len(ids)]
	view, _ := s.SwitchTo(next, state)
	return view
}

func (s *Store) Current() *Buffer {
	return s.buffers[s.current]
}

func (s *Store) CurrentID() int {
	return s.current
}

func (s *Store) Get(id int) *Buffer {
	return s.buffers[id]
}

func (s *Store) Len() int {
	return len(s.buffers)
}

// IDs returns the buffer identifiers in ascending order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.buffers))
	for id := range s.buffers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Names returns the display names of all buffers in id order.
func (s *Store) Names() []string {
	ids := s.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = s.buffers[id].Name()
	}
	return names
}

func (s *Store) AnyDirty() bool {
	for _, b := range s.buffers {
		if b.Dirty() {
			return true
		}
	}
	return false
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return abs, nil
}

func stat(path string) (DiskInfo, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DiskInfo{}, nil
	}
	if err != nil {
		return DiskInfo{}, err
	}
	return DiskInfo{Exists: true, Size: info.Size(), ModTime: info.ModTime()}, nil
}

func readFile(path string) ([]byte, DiskInfo, error) {
	disk, err := stat(path)
	if err != nil {
		return nil, disk, err
	}
	if !disk.Exists {
		return nil, disk, nil
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, disk, fmt.Errorf("%s is a directory", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, disk, fmt.Errorf("read %s: %w", path, err)
	}
	return content, disk, nil
}
