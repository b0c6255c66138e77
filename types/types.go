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
package types

// A Point is a zero-based screen cell.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Term holds the current terminal dimensions.
type Term struct {
	Width  int
	Height int
}

// Anchors for panel coordinates
const (
	Fixed    = 0 // offset from the top or left edge
	Opposite = 1 // offset from the bottom or right edge
)

// A Pos is one coordinate of a panel corner. It is resolved against the
// live terminal extent every time it is used.
type Pos struct {
	Anchor int
	Offset int
}

// At converts the signed shorthand used in panel layouts into a Pos.
// Positive values count from the near edge starting at 1, negative
// values count from the far edge starting at -1 (the edge itself).
func At(v int) Pos {
	if v > 0 {
		return Pos{Anchor: Fixed, Offset: v - 1}
	}
	if v < 0 {
		return Pos{Anchor: Opposite, Offset: -v - 1}
	}
	return Pos{Anchor: Fixed}
}

// Resolve returns the zero-based coordinate for a terminal extent.
func (p Pos) Resolve(extent int) int {
	if p.Anchor == Opposite {
		return extent - p.Offset
	}
	return p.Offset
}

// Add shifts the coordinate by delta. Shifts that would make the offset
// negative leave the position unchanged.
func (p Pos) Add(delta int) Pos {
	if p.Anchor == Opposite {
		delta = -delta
	}
	if p.Offset+delta < 0 {
		return p
	}
	p.Offset += delta
	return p
}

// Color is a 256-color palette index; 0 selects the terminal default.
type Color uint16

const (
	ColorDefault Color = 0
)

// A Display receives the cells drawn by panels.
type Display interface {
	Clear()
	SetCell(col, row int, c rune, fg, bg Color)
	SetCursor(p Point)
	HideCursor()
	Flush() error
	Size() Term
}
