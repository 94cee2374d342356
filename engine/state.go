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

package engine

import (
	"github.com/corvidae/chessgo/movegen"
	"github.com/corvidae/chessgo/position"
	. "github.com/corvidae/chessgo/types"
)

// State classifies the position after a completed move, per spec.md's
// 4-state machine. It is always derived, never stored.
type State int

const (
	Normal State = iota
	Check
	Checkmate
	Stalemate
	Draw50
	DrawRepetition
	DrawInsufficientMaterial
)

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw50:
		return "Draw50"
	case DrawRepetition:
		return "DrawRepetition"
	case DrawInsufficientMaterial:
		return "DrawInsufficientMaterial"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether s ends the game.
func (s State) IsTerminal() bool {
	return s != Normal && s != Check
}

// classify derives the State of b for the side now to move.
func classify(b *position.Board) State {
	if b.HalfmoveClock() >= 100 {
		return Draw50
	}
	if b.RepetitionCount() >= 3 {
		return DrawRepetition
	}
	if hasInsufficientMaterial(b) {
		return DrawInsufficientMaterial
	}

	inCheck := movegen.IsInCheck(b, b.SideToMove())
	if !movegen.HasLegalMove(b) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return Normal
}

// hasInsufficientMaterial implements the canonical draw set from
// spec.md's 4-state-machine section: KvK, KvKN, KvKB, and KvK with
// both sides' remaining bishops on the same color square.
func hasInsufficientMaterial(b *position.Board) bool {
	minor := func(c Color) (knights, bishops int, bishopSquares []Square) {
		knights = len(b.PieceSquares(MakePiece(c, Knight)))
		bsq := b.PieceSquares(MakePiece(c, Bishop))
		return knights, len(bsq), bsq
	}

	for pt := Queen; pt <= Rook; pt++ {
		if len(b.PieceSquares(MakePiece(White, pt))) > 0 || len(b.PieceSquares(MakePiece(Black, pt))) > 0 {
			return false
		}
	}
	if len(b.PieceSquares(WhitePawn)) > 0 || len(b.PieceSquares(BlackPawn)) > 0 {
		return false
	}

	wn, wb, wbSquares := minor(White)
	bn, bb, bbSquares := minor(Black)
	totalMinors := wn + wb + bn + bb

	if totalMinors == 0 {
		return true // K v K
	}
	if totalMinors == 1 {
		return true // K v K+N or K v K+B
	}
	if totalMinors == 2 && wb == 1 && bb == 1 && wn == 0 && bn == 0 {
		return squareColor(wbSquares[0]) == squareColor(bbSquares[0])
	}
	return false
}

// squareColor reports the color (0=dark, 1=light) of sq's square.
func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}
