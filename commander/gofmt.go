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
package commander

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/timburks/tged/logging"
)

// Gofmt formats Go source. On syntax errors the input is left alone and
// the errors are logged under filename.
func Gofmt(filename string, input []byte) ([]byte, error) {
	output, err := format.Source(input)
	if err != nil {
		logging.Printf("Syntax errors in %s:\n%s", filename, strings.TrimSpace(err.Error()))
		return input, fmt.Errorf("%s: %w", filename, err)
	}
	return output, nil
}
