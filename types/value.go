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

// Value is a centipawn evaluation or search score.
type Value int32

const (
	// ValueZero is a dead draw score.
	ValueZero Value = 0

	// Mate is the base mate score. A returned score of Mate-ply means
	// "mate in ply plies" from the side to move's perspective. Chosen
	// well above any plausible material/positional sum so mate scores
	// never collide with ordinary evaluations, and well below
	// MaxInt32/2 so that negating a mate score at any reachable ply
	// never overflows.
	Mate Value = 32000

	// MaxPly bounds the ply argument passed into search; mate scores
	// within Mate-MaxPly..Mate are recognized as "forced mate" scores.
	MaxPly = 128

	// ValueInf is used as a sentinel "wider than any real score" bound.
	ValueInf Value = Mate + 1

	// ValueNone marks "no evaluation available".
	ValueNone Value = -ValueInf - 1
)

// IsMateScore reports whether v encodes a forced mate at some ply
// within MaxPly, for either side.
func (v Value) IsMateScore() bool {
	return v >= Mate-MaxPly || v <= -(Mate-MaxPly)
}

// MateDistance returns the number of plies until mate encoded in v.
// Positive for the side delivering mate, negative for the side being
// mated. Only meaningful when IsMateScore(v) is true.
func (v Value) MateDistance() int {
	if v >= 0 {
		return int(Mate) - int(v)
	}
	return -(int(Mate) + int(v))
}
