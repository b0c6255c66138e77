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

import "github.com/timburks/tged/types"

// palette returns the color for an index of the 256-color table.
func palette(i int) types.Color {
	return types.Color(i + 1)
}

var (
	ColorText      = types.ColorDefault
	ColorBar       = palette(236)
	ColorBarText   = palette(250)
	ColorTab       = palette(239)
	ColorCurrent   = palette(24)
	ColorGutter    = palette(243)
	ColorLine      = palette(235)
	ColorMatch     = palette(136)
	ColorSelection = palette(238)
	ColorDirectory = palette(75)
	ColorDialog    = palette(237)
	ColorHint      = palette(245)
	ColorError     = palette(167)
)
