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

// Package logging preconfigures three named go-logging loggers
// (standard, search, test) with a shared formatter, so every other
// package logs through a consistent, leveled interface instead of the
// standard library's bare log package.
package logging

import (
	"os"

	"github.com/corvidae/chessgo/config"
	logging "github.com/op/go-logging"
)

var (
	standardLog = logging.MustGetLogger("chessgo")
	searchLog   = logging.MustGetLogger("chessgo.search")
	testLog     = logging.MustGetLogger("chessgo.test")

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:-8s} %{module}: %{message}`,
	)
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted)
	applyLevels()
}

// applyLevels reapplies config.Settings.Log to the three loggers; call
// it again after config.Setup if the config file overrides the
// compiled-in defaults.
func applyLevels() {
	setLevel("chessgo", config.Settings.Log.StandardLevel)
	setLevel("chessgo.search", config.Settings.Log.SearchLevel)
	setLevel("chessgo.test", config.Settings.Log.TestLevel)
}

func setLevel(module, name string) {
	lvl, err := logging.LogLevel(name)
	if err != nil {
		lvl = logging.INFO
	}
	logging.SetLevel(lvl, module)
}

// Reload re-applies the current config.Settings.Log levels; callers
// invoke it after config.Setup loads a file, since init() only sees
// the compiled-in defaults.
func Reload() {
	applyLevels()
}

// Log returns the standard, general-purpose logger.
func Log() *logging.Logger { return standardLog }

// SearchLog returns the logger dedicated to search/iterative-deepening
// progress, kept separate so it can be silenced independently of
// general engine logging.
func SearchLog() *logging.Logger { return searchLog }

// TestLog returns the logger used by the test suite.
func TestLog() *logging.Logger { return testLog }
