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

package movegen

import "github.com/corvidae/chessgo/position"

// Perft counts the number of leaf positions reachable from b after
// exactly depth plies of legal moves, a standard move-generator
// correctness benchmark: the counts for the standard starting position
// are well known for depths 1-6 and catch most generator bugs
// (castling rights, en-passant edge cases, promotion, pin detection).
func Perft(b *position.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range LegalMoves(b) {
		b.DoMove(m)
		nodes += Perft(b, depth-1)
		b.UndoMove()
	}
	return nodes
}

// PerftDivide runs Perft one ply at a time and reports the per-move
// subtree counts, used to diagnose which root move disagrees with a
// reference perft count.
func PerftDivide(b *position.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	for _, m := range LegalMoves(b) {
		b.DoMove(m)
		result[m.StringUCI()] = Perft(b, depth-1)
		b.UndoMove()
	}
	return result
}
