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

package types

import "fmt"

// Square is a board square index 0..63. Square (file f, rank r), both
// 0..7, maps to index = (7-r)*8 + f -- index 0 is a8, index 63 is h1.
type Square int8

// SquareNone is the "no square" sentinel used for an absent en-passant
// target or an ignored-square parameter.
const SquareNone Square = -1

// SqLength is one past the highest valid square index.
const SqLength = 64

// Named squares for every file/rank combination, indexed per the same
// (7-r)*8+f scheme as NewSquare. Used throughout castling logic, pawn
// double-push/en-passant logic and tests so callers never hand-compute
// an index.
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
)

// NewSquare builds a Square from a zero-based file (0=a..7=h) and a
// zero-based rank (0=rank1..7=rank8).
func NewSquare(file, rank int) Square {
	return Square((7-rank)*8 + file)
}

// IsValid reports whether sq is a square on the board (0..63).
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SqLength
}

// File returns the zero-based file (0=a..7=h) of sq.
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the zero-based rank (0=rank1..7=rank8) of sq.
func (sq Square) Rank() int {
	return 7 - int(sq)/8
}

const fileLabels = "abcdefgh"
const rankLabels = "12345678"

// String renders sq in algebraic notation, e.g. "e4", or "-" for
// SquareNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", fileLabels[sq.File()], rankLabels[sq.Rank()])
}

// SquareFromString parses algebraic notation ("e4") or "-" into a
// Square. Returns SquareNone and false if s is not a valid square.
func SquareFromString(s string) (Square, bool) {
	if s == "-" {
		return SquareNone, true
	}
	if len(s) != 2 {
		return SquareNone, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone, false
	}
	return NewSquare(file, rank), true
}
