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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidae/chessgo/config"
	"github.com/corvidae/chessgo/engine"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/openingbook"
	"github.com/corvidae/chessgo/position"
	"github.com/corvidae/chessgo/types"
	"github.com/corvidae/chessgo/util"
	"github.com/pkg/profile"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "", "path to a TOML configuration file")
	fen := flag.String("fen", position.StartFen, "FEN of the position to use for -perft/-eval/-search")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	evalOnly := flag.Bool("eval", false, "print the static evaluation of -fen and exit")
	depth := flag.Int("depth", 0, "max search depth (0 = the configured max_depth, default 64)")
	movetime := flag.Int("movetime", 5000, "search time budget in milliseconds")
	bookFile := flag.String("book", "", "path to a Simple-format opening book text file")
	cpuProfile := flag.Bool("profile", false, "enable CPU profiling for this run")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *versionInfo {
		printVersionInfo()
		return
	}

	if err := config.Setup(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Reload()

	e := engine.NewEngine()
	if err := e.SetPositionFEN(*fen); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *bookFile != "" {
		f, err := os.Open(*bookFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		book, err := openingbook.Load(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		e.SetOpeningBook(book)
	}

	switch {
	case *perftDepth > 0:
		for d := 1; d <= *perftDepth; d++ {
			start := time.Now()
			nodes := e.Perft(d)
			elapsed := time.Since(start)
			out.Printf("perft(%d) = %s (%s nps)\n", d, util.FormatCount(nodes), util.FormatCount(util.Nps(nodes, elapsed)))
		}
	case *evalOnly:
		out.Printf("eval = %d centipawns\n", e.Eval())
	default:
		e.SetProgressSink(func(d int, score int, best types.Move) {
			logging.SearchLog().Infof("info depth %d score cp %d pv %s", d, score, best.StringUCI())
		})
		best := e.SearchBestMove(*movetime, *depth)
		out.Printf("bestmove %s\n", best.StringUCI())
	}
}

func printVersionInfo() {
	out.Println("chessgo development build")
	out.Println("Environment:")
	out.Printf("  Using Go version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
