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
	"errors"
	"fmt"

	"github.com/steelseries/golisp"

	"github.com/timburks/tged/logging"
)

// target is the editor the primitives act on while an expression is evaluated.
var target Editor

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("PAGE-STEP"), golisp.FloatWithValue(float32(25)))
	golisp.MakePrimitiveFunction("buffer-count", "0", BufferCountImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("cursor-line", "0", CursorLineImpl)
	golisp.MakePrimitiveFunction("goto-line", "1", GotoLineImpl)
}

var errNoEditor = errors.New("no editor is attached")

func BufferCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if target == nil {
		return nil, errNoEditor
	}
	return golisp.FloatWithValue(float32(target.Store().Len())), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if target == nil {
		return nil, errNoEditor
	}
	return golisp.FloatWithValue(float32(target.Window().GetBuffer().GetRowCount())), nil
}

// cursor lines are 1-based for people
func CursorLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if target == nil {
		return nil, errNoEditor
	}
	return golisp.FloatWithValue(float32(target.Window().GetCursor().Line + 1)), nil
}

func GotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if target == nil {
		return nil, errNoEditor
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) && !golisp.FloatP(val) {
		return nil, errors.New("goto-line requires a number")
	}
	w := target.Window()
	cursor := w.GetCursor()
	cursor.Line = int(golisp.FloatValue(val)) - 1
	cursor.Col = 0
	w.SetCursor(cursor)
	w.Reveal()
	return val, nil
}

// ParseEval evaluates a Lisp expression with e as the target of the
// editor primitives and returns the printed value.
func ParseEval(e Editor, command string) (string, error) {
	target = e
	defer func() { target = nil }()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		logging.Printf("ERR %+v", err)
		return "", fmt.Errorf("lisp: %w", err)
	}
	logging.Printf("SEXPR %+v", value)
	if golisp.FloatP(value) {
		v := golisp.FloatValue(value)
		if v == float32(int64(v)) {
			return fmt.Sprintf("%d", int64(v)), nil
		}
		return fmt.Sprintf("%g", v), nil
	}
	return golisp.String(value), nil
}
