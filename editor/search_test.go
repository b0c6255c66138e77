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
	"testing"

	"github.com/timburks/tged/types"
)

func TestSearchCycles(t *testing.T) {
	w := NewWindow(bufferWithLines("hello", "lobby"))
	w.SetSize(types.Size{Rows: 10, Cols: 80})
	if n := w.Search("lo"); n != 2 {
		t.Fatalf("expected 2 matches, got %d", n)
	}
	matches := w.GetMatches()
	if matches[0] != (Position{0, 3}) || matches[1] != (Position{1, 0}) {
		t.Errorf("unexpected matches %+v", matches)
	}
	if w.GetMode() != ModeSearch || w.GetCursor() != (Position{0, 3}) {
		t.Errorf("search did not select the first match")
	}
	w.NextMatch()
	if w.GetCursor() != (Position{1, 0}) {
		t.Errorf("expected (1,0), got %+v", w.GetCursor())
	}
	w.NextMatch()
	if w.GetCursor() != (Position{0, 3}) {
		t.Errorf("expected wrap to (0,3), got %+v", w.GetCursor())
	}
	w.PreviousMatch()
	if w.GetMatchIndex() != 1 {
		t.Errorf("expected previous to wrap to the last match, got %d", w.GetMatchIndex())
	}
	w.FirstMatch()
	if w.GetMatchIndex() != 0 {
		t.Errorf("expected first match")
	}
	w.LastMatch()
	if w.GetMatchIndex() != 1 {
		t.Errorf("expected last match")
	}
}

func TestSearchMisses(t *testing.T) {
	w := NewWindow(bufferWithLines("hello"))
	if n := w.Search("xyz"); n != 0 {
		t.Errorf("expected no matches, got %d", n)
	}
	if w.GetMode() != ModeNormal {
		t.Errorf("failed search changed mode")
	}
	if n := w.Search(""); n != 0 {
		t.Errorf("empty query matched %d times", n)
	}
}

func TestFindAllDoesNotOverlap(t *testing.T) {
	b := bufferWithLines("aaaa")
	matches := FindAll(b, "aa")
	if len(matches) != 2 || matches[1].Col != 2 {
		t.Errorf("unexpected matches %+v", matches)
	}
}

func TestReplaceRescans(t *testing.T) {
	b := bufferWithLines("foo bar foo", "xx foo")
	w := NewWindow(b)
	w.SetSize(types.Size{Rows: 10, Cols: 80})
	k := w.Search("foo")
	if k != 3 {
		t.Fatalf("expected 3 matches, got %d", k)
	}
	w.NextMatch()
	before := len(b.Bytes())
	remaining := w.Replace("quux")
	if remaining != k-1 {
		t.Errorf("expected %d remaining matches, got %d", k-1, remaining)
	}
	if delta := len(b.Bytes()) - before; delta != len("quux")-len("foo") {
		t.Errorf("unexpected length change %d", delta)
	}
	checkLines(t, b, "foo bar quux", "xx foo")
	if w.GetCursor() != (Position{1, 3}) {
		t.Errorf("cursor should sit on the next match, got %+v", w.GetCursor())
	}
	w.Replace("f")
	w.Replace("f")
	if w.GetMode() != ModeNormal {
		t.Errorf("search mode should end when nothing matches")
	}
	checkLines(t, b, "f bar quux", "xx f")
	if w.Replace("again") != 0 {
		t.Errorf("replace outside search mode changed something")
	}
}
