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

	"github.com/timburks/tged/logging"
	"github.com/timburks/tged/types"
)

// EventBuffer is the capacity of the key and resize channels.
const EventBuffer = 500

// Events are the two input sources the main loop selects on.
type Events struct {
	Keys    chan types.Event
	Resizes chan types.Term
}

// PollEvents starts the goroutine that reads termbox events and returns
// the channels it feeds. It runs until StopEvents is called.
func PollEvents() *Events {
	e := &Events{
		Keys:    make(chan types.Event, EventBuffer),
		Resizes: make(chan types.Term, EventBuffer),
	}
	go e.pump()
	return e
}

func (e *Events) pump() {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			e.Keys <- translate(event)
		case termbox.EventResize:
			termbox.Flush()
			e.Resizes <- types.Term{Width: event.Width, Height: event.Height}
		case termbox.EventError:
			logging.Printf("terminal event error: %v", event.Err)
		case termbox.EventInterrupt:
			return
		}
	}
}

// StopEvents ends the polling goroutine.
func StopEvents() {
	termbox.Interrupt()
}
