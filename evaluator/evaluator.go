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

// Package evaluator computes a static, side-to-move-relative score for
// a position.Board: material plus piece-square tables. It is a pure
// function of the board -- no state is kept between calls.
package evaluator

import (
	"github.com/corvidae/chessgo/config"
	"github.com/corvidae/chessgo/position"
	. "github.com/corvidae/chessgo/types"
)

// Evaluate returns the score, in centipawns, of b from the perspective
// of the side to move: score_white - score_black if white is to move,
// else its negation, plus the configured tempo bonus for the side to
// move.
func Evaluate(b *position.Board) Value {
	white := materialAndPst(b, White)
	black := materialAndPst(b, Black)
	score := white - black

	if b.SideToMove() == Black {
		score = -score
	}

	if config.Settings.Eval.Tempo != 0 {
		score += Value(config.Settings.Eval.Tempo)
	}
	return score
}

// materialAndPst sums material value and piece-square bonus for every
// piece of color c still on the board.
func materialAndPst(b *position.Board, c Color) Value {
	var score Value

	if k := b.KingSquare(c); k.IsValid() {
		if config.Settings.Eval.UsePositionalEval {
			score += Value(pstValue(kingTable, k, c))
		}
	}

	for pt := Queen; pt < PtLength; pt++ {
		piece := MakePiece(c, pt)
		squares := b.PieceSquares(piece)
		if config.Settings.Eval.UseMaterialEval {
			score += Value(len(squares) * pt.Value())
		}
		if config.Settings.Eval.UsePositionalEval {
			table := pieceSquareTable(pt)
			for _, sq := range squares {
				score += Value(pstValue(table, sq, c))
			}
		}
	}

	return score
}

// pstValue looks up a piece-square table entry for sq, mirroring
// vertically (index 63-i) for black so every table is authored from
// white's perspective, per spec.md §4.E.
func pstValue(table *[64]int, sq Square, c Color) int {
	idx := int(sq)
	if c == Black {
		idx = 63 - idx
	}
	return table[idx]
}

// pieceSquareTable selects the table for a non-king piece type.
func pieceSquareTable(pt PieceType) *[64]int {
	switch pt {
	case Pawn:
		return &pawnTable
	case Knight:
		return &knightTable
	case Bishop:
		return &bishopTable
	case Rook:
		return &rookTable
	case Queen:
		return &queenTable
	default:
		return &zeroTable
	}
}

var zeroTable [64]int
