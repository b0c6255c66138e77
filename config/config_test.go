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
package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadArgs(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		environ []string
		files   []string
		dir     string
		logFile string
		trace   bool
		numbers bool
	}{
		{"defaults", nil, nil, []string{}, ".", "", false, true},
		{"files and flags", []string{"a.txt", "-d", "src", "b.txt", "--trace"}, nil, []string{"a.txt", "b.txt"}, "src", "", true, true},
		{"equals form", []string{"--dir=src", "--log-file=/tmp/x.log"}, nil, []string{}, "src", "/tmp/x.log", false, true},
		{"environment", nil, []string{"TGED_DIR=/work", "TGED_TRACE=1", "TGED_NUMBERS=false", "TGED_LOG_FILE=/tmp/t.log"}, []string{}, "/work", "/tmp/t.log", true, false},
		{"flags beat environment", []string{"--dir", "here", "--no-numbers"}, []string{"TGED_DIR=/work", "TGED_NUMBERS=true"}, []string{}, "here", "", false, false},
		{"bad environment ignored", nil, []string{"TGED_TRACE=maybe", "BROKEN"}, []string{}, ".", "", false, true},
		{"double dash", []string{"--", "--trace"}, nil, []string{"--trace"}, ".", "", false, true},
	}
	for _, c := range cases {
		cfg, err := LoadArgs(c.args, c.environ)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if !reflect.DeepEqual(cfg.Files, c.files) || cfg.Dir != c.dir || cfg.LogFile != c.logFile ||
			cfg.Trace != c.trace || cfg.LineNumbers != c.numbers {
			t.Errorf("%s: unexpected config %+v", c.name, cfg)
		}
	}
}

func TestLoadArgsErrors(t *testing.T) {
	for _, args := range [][]string{{"--dir"}, {"--bogus"}, {"-h"}} {
		if _, err := LoadArgs(args, nil); !errors.Is(err, ErrUsage) {
			t.Errorf("%v: expected usage error, got %v", args, err)
		}
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Validate(Config{Dir: dir, Files: []string{file, filepath.Join(dir, "new.txt")}}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := Validate(Config{Dir: dir, Files: []string{dir}}); err == nil {
		t.Errorf("expected an error for a directory argument")
	}
	if err := Validate(Config{Dir: file}); err == nil {
		t.Errorf("expected an error for a file as --dir")
	}
}
