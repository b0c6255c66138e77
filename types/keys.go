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

type Key int

// Keys that are not printable characters
const (
	KeyUnsupported Key = iota
	KeyChar            // printable character, see Event.Ch
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyCtrlF
	KeyCtrlS
)

// An Event is one decoded keystroke.
type Event struct {
	Key Key
	Ch  rune
	Alt bool
}

// Char returns the event for a printable character.
func Char(c rune) Event {
	return Event{Key: KeyChar, Ch: c}
}

// Press returns the event for a non-printable key.
func Press(k Key) Event {
	return Event{Key: k}
}

// Events returns one event per character of text.
func Events(text string) []Event {
	events := make([]Event, 0, len(text))
	for _, c := range text {
		events = append(events, Char(c))
	}
	return events
}
