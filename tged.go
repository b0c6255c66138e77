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
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/timburks/tged/config"
	"github.com/timburks/tged/editor"
	"github.com/timburks/tged/logging"
	"github.com/timburks/tged/screen"
)

func main() {
	cfg := config.MustLoad()

	if err := logging.Configure(cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "tged: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()
	logging.SetTraceEnabled(cfg.Trace)
	logging.Trace("start", map[string]interface{}{"argv": cfg.Args, "config": cfg})

	// The editor owns the terminal; refuse to run without one.
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tged: not attached to a terminal")
		os.Exit(1)
	}
	if _, _, err := term.GetSize(int(os.Stdout.Fd())); err != nil {
		fmt.Fprintf(os.Stderr, "tged: unable to read terminal size: %v\n", err)
		os.Exit(1)
	}

	// The store manages all open files.
	store := editor.NewStore(cfg.Dir)
	if len(cfg.Files) == 0 {
		store.NewScratch()
	}
	for _, filename := range cfg.Files {
		if _, err := store.Open(filename); err != nil {
			logging.Error(err)
			fmt.Fprintf(os.Stderr, "tged: %v\n", err)
			os.Exit(2)
		}
	}

	if err := run(store, cfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "tged: %v\n", err)
		os.Exit(1)
	}
}

func run(store *editor.Store, cfg config.Config) error {
	t, err := screen.OpenTerminal()
	if err != nil {
		return err
	}
	defer t.Close()

	events := screen.PollEvents()
	defer screen.StopEvents()

	m := screen.NewModule(store, t, events.Keys, screen.Settings{LineNumbers: cfg.LineNumbers})
	s := screen.Build(m)
	return s.Run(m, events.Resizes)
}
