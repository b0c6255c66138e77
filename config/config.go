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
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration for the editor.
type Config struct {
	Files       []string // files to open, in order
	Dir         string   // root of the file tree
	LogFile     string   // empty selects the default log file
	Trace       bool
	LineNumbers bool
	Args        []string
}

const (
	envDir     = "TGED_DIR"
	envLogFile = "TGED_LOG_FILE"
	envTrace   = "TGED_TRACE"
	envNumbers = "TGED_NUMBERS"
)

// ErrUsage is returned for malformed command lines.
var ErrUsage = errors.New("usage: tged [FILE...] [-d|--dir DIR] [--log-file PATH] [--trace] [--no-numbers]")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
// Flags may appear anywhere among the file names.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Config{
		Files:       make([]string, 0),
		Dir:         envOrDefault(env, envDir, "."),
		LogFile:     envOrDefault(env, envLogFile, ""),
		Trace:       envOrBool(env, envTrace, false),
		LineNumbers: envOrBool(env, envNumbers, true),
		Args:        append([]string(nil), args...),
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "-d", "--dir", "--log-file":
			if !hasValue {
				i++
				if i >= len(args) {
					return Config{}, fmt.Errorf("%s requires a value: %w", name, ErrUsage)
				}
				value = args[i]
			}
			if name == "--log-file" {
				cfg.LogFile = value
			} else {
				cfg.Dir = value
			}
		case "--trace":
			cfg.Trace = true
		case "--no-numbers":
			cfg.LineNumbers = false
		case "-h", "--help":
			return Config{}, ErrUsage
		case "--":
			cfg.Files = append(cfg.Files, args[i+1:]...)
			return cfg, nil
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return Config{}, fmt.Errorf("unknown option %s: %w", arg, ErrUsage)
			}
			cfg.Files = append(cfg.Files, arg)
		}
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns a validated configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err == nil {
		err = Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tged: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects directories among the files and a --dir that is not a directory.
func Validate(cfg Config) error {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", cfg.Dir)
	}
	for _, file := range cfg.Files {
		if info, err := os.Stat(file); err == nil && info.IsDir() {
			return fmt.Errorf("%s is a directory", file)
		}
	}
	return nil
}
