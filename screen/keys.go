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
	"github.com/nsf/termbox-go"

	"github.com/timburks/tged/types"
)

func translate(event termbox.Event) types.Event {
	alt := event.Mod&termbox.ModAlt != 0
	if event.Ch != 0 {
		return types.Event{Key: types.KeyChar, Ch: event.Ch, Alt: alt}
	}
	if event.Key == termbox.KeySpace {
		return types.Event{Key: types.KeyChar, Ch: ' ', Alt: alt}
	}
	return types.Event{Key: key(event.Key), Alt: alt}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return types.KeyBackspace
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyCtrlF:
		return types.KeyCtrlF
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeyTab:
		return types.KeyTab
	case termbox.KeyF1:
		return types.KeyF1
	case termbox.KeyF2:
		return types.KeyF2
	case termbox.KeyF3:
		return types.KeyF3
	case termbox.KeyF4:
		return types.KeyF4
	case termbox.KeyF5:
		return types.KeyF5
	case termbox.KeyF6:
		return types.KeyF6
	case termbox.KeyF7:
		return types.KeyF7
	case termbox.KeyF8:
		return types.KeyF8
	default:
		return types.KeyUnsupported
	}
}
