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

import (
	"fmt"
	"strings"
)

// MoveFlags marks the special-case handling a move needs beyond a
// plain from/to transfer.
type MoveFlags uint8

const (
	FlagNone        MoveFlags = 0
	FlagCastle      MoveFlags = 1 << 0
	FlagEnPassant   MoveFlags = 1 << 1
	FlagDoublePush  MoveFlags = 1 << 2
)

// Move is a packed 32-bit move encoding:
//   bits  0- 5: to square     (0..63)
//   bits  6-11: from square   (0..63)
//   bits 12-14: promotion piece type (PtNone..Pawn, only Q/R/B/N are valid)
//   bits 15-17: flags (FlagCastle, FlagEnPassant, FlagDoublePush)
//   bits 18-31: move-ordering sort value, biased by -sortValueBias
// A zero Move is MoveNone, which is never a legal move.
type Move uint32

// MoveNone is the empty/invalid move.
const MoveNone Move = 0

const (
	toShift    uint = 0
	fromShift  uint = 6
	promShift  uint = 12
	flagsShift uint = 15
	sortShift  uint = 18

	squareMask Move = 0x3F
	promMask   Move = 0x7
	flagsMask  Move = 0x7
	sortMask   Move = 0x3FFF

	// sortValueBias lets the sort-value field (14 bits, 0..16383)
	// represent signed move-ordering scores in a useful range.
	sortValueBias = 8192
)

// NewMove builds a Move from its components. promotion is PtNone for
// a non-promoting move.
func NewMove(from, to Square, flags MoveFlags, promotion PieceType) Move {
	return Move(to)<<toShift |
		Move(from)<<fromShift |
		Move(promotion)<<promShift |
		Move(flags)<<flagsShift
}

// From returns the origin square of m.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// To returns the destination square of m.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// Promotion returns the promotion piece type, or PtNone if m does not
// promote.
func (m Move) Promotion() PieceType {
	return PieceType((m >> promShift) & promMask)
}

func (m Move) flags() MoveFlags {
	return MoveFlags((m >> flagsShift) & flagsMask)
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	return m.flags()&FlagCastle != 0
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.flags()&FlagEnPassant != 0
}

// IsDoublePush reports whether m is a two-square pawn push.
func (m Move) IsDoublePush() bool {
	return m.flags()&FlagDoublePush != 0
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PtNone
}

// MoveOf strips any sort value, returning just the move identity bits.
// Two moves with the same From/To/Promotion/flags but different sort
// values compare equal after MoveOf.
func (m Move) MoveOf() Move {
	return m &^ (sortMask << sortShift)
}

// SortValue returns the move-ordering value encoded into m.
func (m Move) SortValue() int {
	return int((m>>sortShift)&sortMask) - sortValueBias
}

// WithSortValue returns m with its sort-value field set to v (clamped
// to the representable range).
func (m Move) WithSortValue(v int) Move {
	biased := v + sortValueBias
	if biased < 0 {
		biased = 0
	}
	if Move(biased) > sortMask {
		biased = int(sortMask)
	}
	return m.MoveOf() | Move(biased)<<sortShift
}

// IsValid reports whether m has in-range squares and is not MoveNone.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// StringUCI renders m in UCI long algebraic form, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) StringUCI() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(m.Promotion().Char())
	}
	return s
}

func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return fmt.Sprintf("Move{%s value:%d}", m.StringUCI(), m.SortValue())
}
