/*
 * chessgo - a UCI-capable chess engine core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 chessgo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds the engine's global, TOML-loadable settings:
// log levels, search feature flags, transposition-table size and
// evaluator weights. Settings is a single package-level struct, set to
// sane defaults at init() time and optionally overridden by Setup
// decoding a config file, in the teacher's config.go idiom.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// EvalConfig gates which evaluator terms are active, mirroring the
// teacher's evalconfig.go.
type EvalConfig struct {
	UseMaterialEval   bool `toml:"use_material_eval"`
	UsePositionalEval bool `toml:"use_positional_eval"`
	Tempo             int  `toml:"tempo"`
}

// SearchConfig gates search-side behavior.
type SearchConfig struct {
	UseTranspositionTable bool `toml:"use_transposition_table"`
	TTSizeMB              int  `toml:"tt_size_mb"`
	MaxDepth              int  `toml:"max_depth"`
	MaxTimeMs             int  `toml:"max_time_ms"`
}

// LogConfig controls the level of each of the engine's named loggers.
type LogConfig struct {
	StandardLevel string `toml:"standard_level"`
	SearchLevel   string `toml:"search_level"`
	TestLevel     string `toml:"test_level"`
}

// settingsRoot is the top-level shape decoded from a TOML file; Settings
// below is always populated, with or without a file present.
type settingsRoot struct {
	Eval   EvalConfig   `toml:"eval"`
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

// Settings is the process-wide configuration, read by evaluator,
// engine and logging. It is safe to read
// concurrently once Setup has returned; Setup itself should be called
// once, early, before any search starts.
var Settings settingsRoot

func init() {
	Settings = settingsRoot{
		Eval: EvalConfig{
			UseMaterialEval:   true,
			UsePositionalEval: true,
			Tempo:             0,
		},
		Search: SearchConfig{
			UseTranspositionTable: true,
			TTSizeMB:              64,
			MaxDepth:              64,
			MaxTimeMs:             5000,
		},
		Log: LogConfig{
			StandardLevel: "INFO",
			SearchLevel:   "INFO",
			TestLevel:     "DEBUG",
		},
	}
}

// Setup decodes path (a TOML file) over the current defaults. A
// missing or empty path is not an error -- the engine simply runs
// with defaults, matching the teacher's "config file is optional"
// behavior.
func Setup(path string) error {
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		return fmt.Errorf("config: decoding %q: %w", path, err)
	}
	return nil
}
