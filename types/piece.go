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


// Piece is a single code in 0..=12. 0 is the empty square. 1..=6 are the
// black pieces {king, queen, rook, bishop, knight, pawn} and 7..=12 are
// the same six white pieces, in the same order. A piece is white iff its
// code is >= 7 and black iff it is in 1..=6.
type Piece int8

const (
	NoPiece Piece = 0

	BlackKing Piece = iota
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
)

const (
	WhiteKing Piece = iota + 7
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
)

// PieceLength is one past the highest valid piece code.
const PieceLength = 13

// pieceTypeOf maps a piece code (1..12) to its PieceType; index 0 is unused.
var pieceTypeOf = [PieceLength]PieceType{
	PtNone,
	King, Queen, Rook, Bishop, Knight, Pawn,
	King, Queen, Rook, Bishop, Knight, Pawn,
}

// MakePiece builds the piece code for the given color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if c == White {
		return Piece(int(pt) + 6)
	}
	return Piece(pt)
}

// IsEmpty reports whether p is the empty-square code.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// IsWhite reports whether p is one of the white piece codes (7..12).
func (p Piece) IsWhite() bool {
	return p >= WhiteKing
}

// IsBlack reports whether p is one of the black piece codes (1..6).
func (p Piece) IsBlack() bool {
	return p >= BlackKing && p <= BlackPawn
}

// ColorOf returns the color of p. Calling this on NoPiece is undefined.
func (p Piece) ColorOf() Color {
	if p.IsWhite() {
		return White
	}
	return Black
}

// TypeOf returns the piece type of p, or PtNone for the empty code.
func (p Piece) TypeOf() PieceType {
	return pieceTypeOf[p]
}

// Value returns the material value of p in centipawns.
func (p Piece) Value() int {
	return p.TypeOf().Value()
}

var pieceToChar = []string{
	".",
	"k", "q", "r", "b", "n", "p",
	"K", "Q", "R", "B", "N", "P",
}

// Char returns the FEN character for p: upper case for white, lower
// case for black, "." for the empty square.
func (p Piece) Char() string {
	return pieceToChar[p]
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.ColorOf().String() + p.TypeOf().String()
}

// PieceFromChar returns the piece for a single FEN character, or
// NoPiece if s does not denote exactly one recognized piece letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return NoPiece
	}
	for i, c := range pieceToChar {
		if c == s {
			return Piece(i)
		}
	}
	return NoPiece
}
