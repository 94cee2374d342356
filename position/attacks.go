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

package position

import (
	. "github.com/corvidae/chessgo/types"
)

// KnightOffsets are the (df, dr) deltas of the 8 knight jumps.
var KnightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// KingOffsets are the (df, dr) deltas of the 8 king/queen-adjacent steps.
var KingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// BishopDirections are the 4 diagonal ray directions.
var BishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// RookDirections are the 4 orthogonal ray directions.
var RookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// step moves sq by (df, dr); ok is false if the result leaves the board.
func step(sq Square, df, dr int) (Square, bool) {
	f := sq.File() + df
	r := sq.Rank() + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SquareNone, false
	}
	return NewSquare(f, r), true
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// color by. If ignore is a valid square, any piece standing there is
// treated as absent, so a piece about to be captured does not block an
// attack ray through its own square. Every caller in this module passes
// SquareNone; king safety is decided by make/unmake in movegen.
func (b *Board) IsSquareAttacked(sq Square, by Color, ignore Square) bool {
	occupied := func(s Square) Piece {
		if s == ignore {
			return NoPiece
		}
		return b.squares[s]
	}

	// pawns: attacked squares are the two squares a by-color pawn would
	// capture onto, i.e. one rank behind sq from by's direction of travel.
	pawnRankDelta := -1
	if by == White {
		pawnRankDelta = 1
	}
	for _, df := range [2]int{-1, 1} {
		if s, ok := step(sq, df, -pawnRankDelta); ok {
			if p := occupied(s); p == MakePiece(by, Pawn) {
				return true
			}
		}
	}

	// knights
	knight := MakePiece(by, Knight)
	for _, o := range KnightOffsets {
		if s, ok := step(sq, o[0], o[1]); ok {
			if occupied(s) == knight {
				return true
			}
		}
	}

	// king
	king := MakePiece(by, King)
	for _, o := range KingOffsets {
		if s, ok := step(sq, o[0], o[1]); ok {
			if occupied(s) == king {
				return true
			}
		}
	}

	// sliding: bishops/queens on diagonals, rooks/queens on files/ranks
	bishop := MakePiece(by, Bishop)
	rook := MakePiece(by, Rook)
	queen := MakePiece(by, Queen)
	for _, d := range BishopDirections {
		s := sq
		for {
			next, ok := step(s, d[0], d[1])
			if !ok {
				break
			}
			s = next
			p := occupied(s)
			if p == NoPiece {
				continue
			}
			if p == bishop || p == queen {
				return true
			}
			break
		}
	}
	for _, d := range RookDirections {
		s := sq
		for {
			next, ok := step(s, d[0], d[1])
			if !ok {
				break
			}
			s = next
			p := occupied(s)
			if p == NoPiece {
				continue
			}
			if p == rook || p == queen {
				return true
			}
			break
		}
	}

	return false
}

// IsInCheck reports whether color c's king is currently attacked.
func (b *Board) IsInCheck(c Color) bool {
	return b.IsSquareAttacked(b.kingSquare[c], c.Flip(), SquareNone)
}
