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

import "testing"

func TestAtResolve(t *testing.T) {
	cases := []struct {
		v      int
		extent int
		want   int
	}{
		{1, 80, 0},
		{26, 80, 25},
		{-1, 80, 80},
		{-2, 24, 23},
		{-8, 24, 17},
	}
	for _, c := range cases {
		if got := At(c.v).Resolve(c.extent); got != c.want {
			t.Errorf("At(%d).Resolve(%d) = %d, want %d", c.v, c.extent, got, c.want)
		}
	}
}

func TestPosAdd(t *testing.T) {
	p := At(26).Add(-1)
	if got := p.Resolve(80); got != 24 {
		t.Errorf("fixed shift left: got %d", got)
	}
	q := At(-2).Add(-1)
	if got := q.Resolve(24); got != 22 {
		t.Errorf("opposite shift up: got %d", got)
	}
	// an opposite anchor cannot move past the far edge
	r := At(-1).Add(1)
	if r != At(-1) {
		t.Errorf("expected unchanged position, got %+v", r)
	}
	s := At(1).Add(-1)
	if s != At(1) {
		t.Errorf("expected unchanged position, got %+v", s)
	}
}

func TestEvents(t *testing.T) {
	events := Events("ab")
	if len(events) != 2 || events[0] != Char('a') || events[1].Ch != 'b' {
		t.Errorf("unexpected events %+v", events)
	}
}
