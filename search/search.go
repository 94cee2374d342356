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

// Package search implements negamax with alpha-beta pruning, a
// transposition table and MVV-LVA move ordering over a single mutable
// position.Board. It deliberately does not implement PVS, null-move
// or late-move reductions -- the design (one recursive function, one
// board, one TT) does not preclude adding them later.
package search

import (
	"sort"
	"sync/atomic"

	"github.com/corvidae/chessgo/evaluator"
	"github.com/corvidae/chessgo/logging"
	"github.com/corvidae/chessgo/movegen"
	"github.com/corvidae/chessgo/position"
	"github.com/corvidae/chessgo/transpositiontable"
	. "github.com/corvidae/chessgo/types"
)

// Searcher runs negamax searches over a shared transposition table.
// A Searcher is not safe for concurrent use by two goroutines at
// once; the engine package serializes access with a semaphore.
type Searcher struct {
	tt     *transpositiontable.Table
	cancel *atomic.Bool

	stats Statistics

	rootBestMove  Move
	rootBestScore Value
}

// New returns a Searcher backed by tt. cancel, if non-nil, is checked
// at the top of every recursive call; when set to true mid-search the
// in-flight call returns immediately with an undefined value that the
// caller (the iterative-deepening loop) discards.
func New(tt *transpositiontable.Table, cancel *atomic.Bool) *Searcher {
	return &Searcher{tt: tt, cancel: cancel}
}

// Stats returns a copy of the statistics accumulated by the most
// recent SearchDepth call.
func (s *Searcher) Stats() Statistics {
	return s.stats
}

func (s *Searcher) cancelled() bool {
	return s.cancel != nil && s.cancel.Load()
}

// SearchDepth runs one fixed-depth negamax search from the root and
// returns the best move found together with its score. ok is false if
// the search was cancelled at any point during this call, or if no root
// move was recorded (in which case the result must be discarded by the caller, per
// spec.md §4.H's "a partially completed iteration must not overwrite
// the previous iteration's best move").
func (s *Searcher) SearchDepth(b *position.Board, depth int) (move Move, score Value, ok bool) {
	s.stats.reset()
	s.rootBestMove = MoveNone
	s.rootBestScore = 0

	result := s.negamax(b, depth, 0, -ValueInf, ValueInf)
	if s.cancelled() || s.rootBestMove == MoveNone {
		return MoveNone, 0, false
	}
	logging.SearchLog().Debugf("depth=%d nodes=%d best=%s score=%d", depth, s.stats.Nodes, s.rootBestMove.StringUCI(), result)
	return s.rootBestMove, result, true
}

// negamax implements spec.md §4.G's search(board, depth, ply, alpha,
// beta) -> score exactly, additionally latching the root best move as
// soon as it improves (ply == 0 branches).
func (s *Searcher) negamax(b *position.Board, depth, ply int, alpha, beta Value) Value {
	if s.cancelled() {
		return 0
	}

	if depth <= 0 {
		s.stats.Nodes++
		return evaluator.Evaluate(b)
	}

	if a := -Mate + Value(ply); alpha < a {
		alpha = a
	}
	if bnd := Mate - Value(ply); beta > bnd {
		beta = bnd
	}
	if alpha >= beta {
		return alpha
	}

	hash := b.Hash()
	ttScore, ttMove, kind := s.tt.Probe(hash, depth, alpha, beta)
	if kind != transpositiontable.Miss {
		s.stats.TTHits++
		s.stats.TTCutoffs++
		if ply == 0 && ttMove != MoveNone {
			s.rootBestMove = ttMove
			s.rootBestScore = ttScore
		}
		return ttScore
	}

	moves := movegen.LegalMoves(b)
	if len(moves) == 0 {
		s.stats.Nodes++
		if movegen.IsInCheck(b, b.SideToMove()) {
			return -Mate + Value(ply)
		}
		return ValueZero
	}

	orderMoves(b, moves, ttMove)

	bound := transpositiontable.UpperBound
	bestMove := MoveNone
	best := alpha

	for _, m := range moves {
		b.DoMove(m)
		childScore := -s.negamax(b, depth-1, ply+1, -beta, -best)
		b.UndoMove()

		if s.cancelled() {
			return best
		}

		if childScore >= beta {
			s.tt.Store(hash, depth, beta, transpositiontable.LowerBound, m)
			s.stats.BetaCutoffs++
			if ply == 0 {
				s.rootBestMove = m
				s.rootBestScore = beta
			}
			return beta
		}
		if childScore > best {
			best = childScore
			bestMove = m
			bound = transpositiontable.Exact
			if ply == 0 {
				s.rootBestMove = m
				s.rootBestScore = best
			}
		}
	}

	s.tt.Store(hash, depth, best, bound, bestMove)
	return best
}

// orderMoves sorts moves descending by a per-move ordering score:
// the TT-suggested move first, then MVV-LVA captures (and en-passant,
// scored as a pawn capturing a pawn), then promotions add the value
// of the promoted piece. Ties are broken by generation order (stable
// sort), per spec.md §4.G.
func orderMoves(b *position.Board, moves []Move, ttMove Move) {
	const ttBonus = 1_000_000

	score := func(m Move) int {
		v := 0
		if ttMove != MoveNone && m.MoveOf() == ttMove.MoveOf() {
			v += ttBonus
		}
		mover := b.PieceAt(m.From())
		if m.IsEnPassant() {
			v += 10*Pawn.Value() - Pawn.Value()
		} else if captured := b.PieceAt(m.To()); !captured.IsEmpty() {
			v += 10*captured.TypeOf().Value() - mover.TypeOf().Value()
		}
		if m.IsPromotion() {
			v += m.Promotion().Value()
		}
		return v
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return score(moves[i]) > score(moves[j])
	})
}
