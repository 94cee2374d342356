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

// Package engine is the Controller from spec.md §4.H: it owns a
// single mutable position.Board and a transposition table, drives
// iterative deepening, validates and applies caller-proposed moves,
// and exposes the programmatic API of spec.md §6 as Go methods
// instead of a wire protocol.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/corvidae/chessgo/config"
	"github.com/corvidae/chessgo/evaluator"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/movegen"
	"github.com/corvidae/chessgo/openingbook"
	"github.com/corvidae/chessgo/position"
	"github.com/corvidae/chessgo/search"
	"github.com/corvidae/chessgo/transpositiontable"
	. "github.com/corvidae/chessgo/types"
	"github.com/corvidae/chessgo/util"
	"golang.org/x/sync/semaphore"
)

// ProgressSink is invoked at the end of each completed iterative-
// deepening iteration, per spec.md §4.H.
type ProgressSink func(depth int, scoreCentipawns int, best Move)

// Engine is the single entry point embedding applications use to talk
// to the core. It is not safe for concurrent use except for the
// explicit Stop() call, which may be called from any goroutine while a
// SearchBestMoveAsync search is running.
type Engine struct {
	board *position.Board
	tt    *transpositiontable.Table
	book  *openingbook.Book

	maxTimeMs int
	maxDepth  int

	cancel atomic.Bool
	sem    *semaphore.Weighted
	mu     sync.Mutex // guards board + the "one search at a time" invariant

	progress ProgressSink
}

// NewEngine returns an Engine set up at the standard starting
// position with a TT sized per config.Settings.Search.TTSizeMB.
func NewEngine() *Engine {
	e := &Engine{
		board:     position.NewBoard(),
		tt:        transpositiontable.New(config.Settings.Search.TTSizeMB),
		maxTimeMs: config.Settings.Search.MaxTimeMs,
		maxDepth:  config.Settings.Search.MaxDepth,
		sem:       semaphore.NewWeighted(1),
	}
	return e
}

// SetPositionFEN replaces the current position, wrapping
// ErrInvalidFEN/ErrIllegalPosition on failure (the board is left
// untouched on error).
func (e *Engine) SetPositionFEN(fen string) error {
	b, err := position.NewBoardFen(fen)
	if err != nil {
		logging.Log().Warningf("SetPositionFEN: %v", err)
		return err
	}
	e.mu.Lock()
	e.board = b
	e.mu.Unlock()
	return nil
}

// CurrentFEN renders the current position as a FEN string.
func (e *Engine) CurrentFEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.ToFEN()
}

// LegalMoves returns every legal move in the current position.
func (e *Engine) LegalMoves() []Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return movegen.LegalMoves(e.board)
}

// AttemptMove validates that (from, to, promotion) names a legal
// move; if so, it is played (appended to history) and accepted is
// true. Otherwise the board is left untouched and accepted is false.
// terminal classifies the resulting position (or, when rejected, the
// position as it stood before the attempt).
func (e *Engine) AttemptMove(from, to Square, promotion PieceType) (accepted bool, terminal State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, m := range movegen.LegalMoves(e.board) {
		if m.From() == from && m.To() == to && m.Promotion() == promotion {
			e.board.DoMove(m)
			return true, classify(e.board)
		}
	}
	logging.Log().Debugf("AttemptMove rejected: %s-%s promo=%s", from, to, promotion)
	return false, classify(e.board)
}

// Undo reverses the most recent move. It returns false (a no-op) if
// no move has been played.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.board.Ply() == 0 {
		return false
	}
	e.board.UndoMove()
	return true
}

// Perft counts leaf positions reachable after depth plies of legal
// moves from the current position, for move-generator correctness
// testing.
func (e *Engine) Perft(depth int) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return movegen.Perft(e.board, depth)
}

// Eval returns the static evaluation of the current position, in
// centipawns, from the side-to-move's perspective.
func (e *Engine) Eval() Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	return evaluator.Evaluate(e.board)
}

// SetMaxSearchTime sets the default time budget (in milliseconds)
// future SearchBestMove/SearchBestMoveAsync calls use when not given
// an explicit override.
func (e *Engine) SetMaxSearchTime(ms int) {
	e.mu.Lock()
	e.maxTimeMs = ms
	e.mu.Unlock()
}

// SetOpeningBook installs book as the "try book move" hook consulted
// by SearchBestMove before running a search.
func (e *Engine) SetOpeningBook(book *openingbook.Book) {
	e.mu.Lock()
	e.book = book
	e.mu.Unlock()
}

// SetProgressSink installs fn to be called at the end of every
// completed iterative-deepening iteration.
func (e *Engine) SetProgressSink(fn ProgressSink) {
	e.mu.Lock()
	e.progress = fn
	e.mu.Unlock()
}

// NewGame resets the transposition table and starts a fresh game from
// the standard position, per FrankyGo's Engine.NewGame idiom.
func (e *Engine) NewGame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tt.Clear()
	e.board = position.NewBoard()
}

// Stop requests cancellation of any in-flight SearchBestMoveAsync
// search. It is safe to call from any goroutine, at any time,
// including when no search is running.
func (e *Engine) Stop() {
	e.cancel.Store(true)
}

// SearchBestMove runs iterative deepening on the calling goroutine up
// to maxDepth plies or maxTimeMs milliseconds, whichever comes first,
// and returns the best move found. If the opening book has an entry
// for the current position, the book move is returned immediately and
// no search is run.
func (e *Engine) SearchBestMove(maxTimeMs, maxDepth int) Move {
	if !e.sem.TryAcquire(1) {
		logging.Log().Warning("SearchBestMove called while a search is already running")
		return MoveNone
	}
	defer e.sem.Release(1)

	e.cancel.Store(false)

	e.mu.Lock()
	b := e.board
	book := e.book
	e.mu.Unlock()

	if book != nil {
		if m, ok := book.Lookup(b.ToFEN()); ok {
			logging.SearchLog().Infof("book move %s", m.StringUCI())
			return m
		}
	}

	if maxTimeMs <= 0 {
		maxTimeMs = e.maxTimeMs
	}
	if maxDepth <= 0 {
		maxDepth = e.maxDepth
	}

	searcher := search.New(e.tt, &e.cancel)
	deadline := time.Now().Add(time.Duration(maxTimeMs) * time.Millisecond)

	var best Move
	var bestScore Value
	start := time.Now()

	for depth := 1; depth <= maxDepth; depth++ {
		if time.Now().After(deadline) {
			logging.SearchLog().Debugf("time exhausted before depth %d", depth)
			break
		}

		m, score, ok := searcher.SearchDepth(b, depth)
		if !ok {
			logging.SearchLog().Debugf("depth %d cancelled or produced no move, keeping depth %d result", depth, depth-1)
			break
		}
		best, bestScore = m, score

		if e.progress != nil {
			e.progress(depth, int(bestScore), best)
		}

		if bestScore.IsMateScore() {
			break
		}
		if e.cancel.Load() {
			break
		}
	}

	elapsed := time.Since(start)
	nodes := searcher.Stats().Nodes
	logging.SearchLog().Infof("search_best_move done in %s: %s (%d cp), %s nodes, %s nps, heap %.1f MB",
		elapsed, best.StringUCI(), bestScore, util.FormatCount(nodes), util.FormatCount(util.Nps(nodes, elapsed)), util.MemStatsMB())
	return best
}

// SearchBestMoveAsync runs SearchBestMove on a background goroutine
// and delivers the result on the returned channel. Stop() cancels the
// in-flight search cooperatively; the channel still receives the last
// completed iteration's best move. Only one async (or synchronous)
// search may run at a time -- a call made while another search is
// running does not wait: its channel receives MoveNone, matching the
// single-TT, single-searcher concurrency model of spec.md §5.
func (e *Engine) SearchBestMoveAsync(maxTimeMs, maxDepth int) <-chan Move {
	result := make(chan Move, 1)
	go func() {
		result <- e.SearchBestMove(maxTimeMs, maxDepth)
		close(result)
	}()
	return result
}
