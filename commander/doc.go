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


// Package commander turns command bar input into calls on the editor.
// Commands are one word or phrase, optionally followed by a colon and an
// argument ("save as:notes.txt"). Text in parentheses is evaluated as
// Lisp, with a few primitives that read and move the editor state.
package commander
