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
	"hash/fnv"
	"path/filepath"
	"strings"
	"time"
)

// A Position is a logical location in a buffer.
type Position struct {
	Line int
	Col  int
}

// ViewState is the part of a window that is saved with each buffer so
// that switching back to it restores the view exactly.
type ViewState struct {
	Cursor Position
	Scroll int
}

// DiskInfo is what we last saw of a buffer's file.
type DiskInfo struct {
	Exists  bool
	Size    int64
	ModTime time.Time
}

// A Buffer represents a file being edited
type Buffer struct {
	id     int
	path   string // canonical path, empty for unbacked buffers
	rows   []*Row
	synced uint64 // fingerprint of the content last read or written
	disk   DiskInfo
	view   ViewState
}

func newBuffer(id int) *Buffer {
	b := &Buffer{id: id}
	b.LoadBytes(nil)
	b.MarkSynced()
	return b
}

func (b *Buffer) ID() int {
	return b.id
}

func (b *Buffer) Path() string {
	return b.path
}

// Name is the short name shown in tabs and status bars.
func (b *Buffer) Name() string {
	if b.path == "" {
		return ""
	}
	return filepath.Base(b.path)
}

func (b *Buffer) Backed() bool {
	return b.path != ""
}

func (b *Buffer) Disk() DiskInfo {
	return b.disk
}

// LoadBytes replaces the content. Lines are split on line feeds; a
// trailing line feed produces a final empty row.
func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// Bytes joins the rows with line feeds. No trailing separator is added.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row.Text))
	}
	return []byte(sb.String())
}

// Lines returns a copy of the content, one string per row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) Fingerprint() uint64 {
	return fingerprint(b.Bytes())
}

// MarkSynced records the current content as matching the disk.
func (b *Buffer) MarkSynced() {
	b.synced = b.Fingerprint()
}

// Dirty reports whether the content differs from what was last read or written.
func (b *Buffer) Dirty() bool {
	return b.Fingerprint() != b.synced
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) Row(i int) *Row {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i]
	}
	return nil
}

func (b *Buffer) insertRow(i int, row *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = row
}

func (b *Buffer) deleteRow(i int) {
	if i >= 0 && i < len(b.rows) {
		b.rows = append(b.rows[0:i], b.rows[i+1:]...)
	}
}

func fingerprint(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
