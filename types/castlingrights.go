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

// CastlingRights is a 4-bit mask {WK, WQ, BK, BQ} recording which
// castling rights a side still retains. This is the single uniform
// representation used everywhere (no parallel pair-of-booleans view).
type CastlingRights uint8

const (
	CastleWK CastlingRights = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
)

// CastleNone is the empty set of castling rights.
const CastleNone CastlingRights = 0

// CastleAll is the full set of castling rights (the FEN "KQkq").
const CastleAll = CastleWK | CastleWQ | CastleBK | CastleBQ

// Has reports whether all bits of mask are set in cr.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// Clear returns cr with the bits of mask removed.
func (cr CastlingRights) Clear(mask CastlingRights) CastlingRights {
	return cr &^ mask
}

// KingSide returns the king-side castling bit for color c.
func KingSide(c Color) CastlingRights {
	if c == White {
		return CastleWK
	}
	return CastleBK
}

// QueenSide returns the queen-side castling bit for color c.
func QueenSide(c Color) CastlingRights {
	if c == White {
		return CastleWQ
	}
	return CastleBQ
}

// Both returns both castling bits for color c.
func Both(c Color) CastlingRights {
	return KingSide(c) | QueenSide(c)
}

// String renders cr in FEN order "KQkq", using "-" for no rights.
func (cr CastlingRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	s := ""
	if cr.Has(CastleWK) {
		s += "K"
	}
	if cr.Has(CastleWQ) {
		s += "Q"
	}
	if cr.Has(CastleBK) {
		s += "k"
	}
	if cr.Has(CastleBQ) {
		s += "q"
	}
	return s
}

// CastlingRightsFromString parses a FEN castling-availability field
// ("KQkq", "Kk", "-", ...). Unknown characters are ignored.
func CastlingRightsFromString(s string) CastlingRights {
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= CastleWK
		case 'Q':
			cr |= CastleWQ
		case 'k':
			cr |= CastleBK
		case 'q':
			cr |= CastleBQ
		}
	}
	return cr
}
